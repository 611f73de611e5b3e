package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"Windsign/internal/calc/post"
)

func newPostCmd(g *globalOptions) *cobra.Command {
	var (
		in                  post.Input
		diameter, embedment float64
	)
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Wind load, post and foundation check for a post-mounted sign",
		Long: `Calculate the wind load on a free-standing sign on a single post and check
the post section at ground level and the foundation embedment.

Example:
  windcalc post -W 3 -H 2 -d 0.3 --base-height 2.5 --v-map 22.5 \
    --post-diameter 150 --post-thickness 8 --embedment 1.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadInput(g.file, &in, cmd.Flags()); err != nil {
				return err
			}
			if cmd.Flags().Changed("post-diameter") {
				in.PostDiameter = &diameter
			}
			if cmd.Flags().Changed("embedment") {
				in.EmbedmentDepth = &embedment
			}
			return runPost(cmd.OutOrStdout(), g, in)
		},
	}
	f := cmd.Flags()
	f.Float64VarP(&in.SignWidth, "width", "W", 0, "Sign width (m)")
	f.Float64VarP(&in.SignHeight, "height", "H", 0, "Sign height (m)")
	f.Float64VarP(&in.SignDepth, "depth", "d", 0, "Sign depth (m)")
	f.Float64Var(&in.SignBaseHeight, "base-height", 2.0, "Ground to the bottom of the sign (m)")
	f.Float64Var(&in.PostHeight, "post-height", 0, "Post height (m); 0 means up to the sign top")
	f.Float64Var(&in.SiteAltitude, "altitude", 0, "Site altitude above sea level (m)")
	f.Float64Var(&in.VMap, "v-map", 0, "Fundamental wind speed (m/s); 0 looks up --postcode")
	f.StringVar(&in.Postcode, "postcode", "", "UK postcode for the wind speed lookup")
	f.Var(distanceValue{&in.DistanceToShore}, "distance-to-shore", "Distance to the shore (km, default 100)")
	f.StringVar(&in.TerrainType, "terrain", "country", "Terrain: sea, country or town")
	f.Float64Var(&in.DistanceIntoTown, "distance-into-town", 0, "Distance inside town terrain (km)")
	f.Float64Var(&diameter, "post-diameter", 0, "Post diameter or width (mm); omit to skip the post check")
	f.Float64Var(&in.PostThickness, "post-thickness", 0, "Post wall thickness (mm)")
	f.StringVar(&in.PostSection, "post-section", post.Circular, "Post section: circular or square")
	f.StringVar(&in.PostMaterial, "post-material", post.Steel, "Post material: steel, aluminium or timber")
	f.Float64Var(&in.PostFy, "post-fy", 275, "Post strength (N/mm²)")
	f.StringVar(&in.FoundationType, "foundation", post.Concrete, "Foundation type: concrete or steel_base")
	f.Float64Var(&embedment, "embedment", 0, "Embedment depth (m); omit to skip the foundation check")
	return cmd
}

func runPost(w io.Writer, g *globalOptions, in post.Input) error {
	if err := in.Validate(); err != nil {
		return err
	}
	res, err := post.Calculate(in)
	if err != nil {
		return err
	}
	if g.json {
		return printJSON(w, res)
	}

	heading(w, "POST-MOUNTED SIGN - "+res.Methodology)
	tw := table(w)
	fmt.Fprintf(tw, "  Peak velocity pressure q_p:\t%.1f Pa\t(z = %.2f m)\n", res.QP, res.ZCentroid)
	fmt.Fprintf(tw, "  Force coefficient c_f:\t%.3f\t%s\n", res.CF, res.CFRef)
	fmt.Fprintf(tw, "  Wind force on sign:\t%.3f kN\n", res.FSign)
	fmt.Fprintf(tw, "  Wind force on post:\t%.3f kN\n", res.FPost)
	fmt.Fprintf(tw, "  Base moment:\t%.2f kNm\n", res.MTotal)
	tw.Flush()
	printStages(w, res.Stages)

	if pc := res.PostCheck; pc != nil {
		heading(w, "POST CHECK:")
		tw = table(w)
		fmt.Fprintf(tw, "  Bending\t%.1f / %.1f N/mm²\tη = %.3f\t%s\n", pc.SigmaEd, pc.SigmaRd, pc.EtaBending, pc.BendingStatus)
		fmt.Fprintf(tw, "  Shear\t%.2f / %.1f N/mm²\tη = %.3f\t%s\n", pc.TauEd, pc.TauRd, pc.EtaShear, pc.ShearStatus)
		tw.Flush()
	}
	if fc := res.FoundationCheck; fc != nil {
		heading(w, "FOUNDATION:")
		fmt.Fprintf(w, "  %s: %s\n", fc.Status, fc.Message)
		if fc.Warning != "" {
			fmt.Fprintf(w, "  %s\n", fc.Warning)
		}
	}
	fmt.Fprintf(w, "\n  Overall: %s\n", res.OverallStatus)
	printWarnings(w, res.Warnings)
	return nil
}
