package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"Windsign/internal/calc/report"
	"Windsign/internal/calc/wall"
)

type wallOptions struct {
	in         wall.Input
	pdf        string
	xlsx       string
	project    report.Project
	preparedBy string
}

func newWallCmd(g *globalOptions) *cobra.Command {
	o := &wallOptions{}
	cmd := &cobra.Command{
		Use:   "wall",
		Short: "Wind load on a wall-mounted sign",
		Long: `Calculate the wind force and moment on a sign fixed flat to a building
wall, with a traffic-light adequacy assessment.

Examples:
  # Sheffield reference case
  windcalc wall --width 20 --height 27 --depth 29 --building-height 27 \
    --altitude 105 --v-map 22.1 --terrain town --distance-into-town 2

  # Look up the wind speed from a postcode and write a PDF report
  windcalc wall -W 3 -H 1 -d 0.1 --building-height 6 --postcode "S1 2HE" --pdf sign.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadInput(g.file, &o.in, cmd.Flags()); err != nil {
				return err
			}
			return runWall(cmd.OutOrStdout(), g, o)
		},
	}
	f := cmd.Flags()
	f.Float64VarP(&o.in.SignWidth, "width", "W", 0, "Sign width (m)")
	f.Float64VarP(&o.in.SignHeight, "height", "H", 0, "Sign height (m)")
	f.Float64VarP(&o.in.SignDepth, "depth", "d", 0, "Sign depth (m)")
	f.Float64Var(&o.in.BuildingHeight, "building-height", 0, "Height to the top of the sign (m)")
	f.Float64Var(&o.in.SiteAltitude, "altitude", 0, "Site altitude above sea level (m)")
	f.Float64Var(&o.in.VMap, "v-map", 0, "Fundamental wind speed (m/s); 0 looks up --postcode")
	f.StringVar(&o.in.Postcode, "postcode", "", "UK postcode for the wind speed lookup")
	f.Var(distanceValue{&o.in.DistanceToShore}, "distance-to-shore", "Distance to the shore (km, default 100)")
	f.StringVar(&o.in.TerrainType, "terrain", "country", "Terrain: sea, country or town")
	f.Float64Var(&o.in.DistanceIntoTown, "distance-into-town", 0, "Distance inside town terrain (km)")
	f.StringVar(&o.pdf, "pdf", "", "Write a PDF calculation report to this path")
	f.StringVar(&o.xlsx, "xlsx", "", "Write an audit workbook to this path")
	f.StringVar(&o.project.Name, "project", "", "Project name for reports")
	f.StringVar(&o.project.Reference, "reference", "", "Project reference for reports")
	f.StringVar(&o.preparedBy, "prepared-by", "", "Signatory printed on the PDF report")
	return cmd
}

func runWall(w io.Writer, g *globalOptions, o *wallOptions) error {
	if err := o.in.Validate(); err != nil {
		return err
	}
	res, err := wall.Calculate(o.in)
	if err != nil {
		return err
	}
	if err := writeReports(o, res); err != nil {
		return err
	}
	if g.json {
		return printJSON(w, res)
	}

	heading(w, "WALL-MOUNTED SIGN - "+res.Methodology)
	tw := table(w)
	fmt.Fprintf(tw, "  Sign area:\t%.2f m²\n", res.ARef)
	fmt.Fprintf(tw, "  Peak velocity pressure q_p:\t%.1f Pa\n", res.QP)
	fmt.Fprintf(tw, "  Force coefficient c_f:\t%.3f\n", res.CF)
	fmt.Fprintf(tw, "  Wind force:\t%.2f kN\n", res.ForceKN)
	fmt.Fprintf(tw, "  Overturning moment:\t%.2f kNm\n", res.MomentKNm)
	tw.Flush()
	printStages(w, res.Stages)

	a := res.Assessment
	heading(w, fmt.Sprintf("ASSESSMENT: %s", a.Overall))
	fmt.Fprintf(w, "  %s\n", a.Summary)
	tw = table(w)
	for _, c := range a.Checks {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", c.Name, c.Value, c.Limit, c.Status)
	}
	tw.Flush()
	for _, r := range a.Recommendations {
		fmt.Fprintf(w, "  • %s\n", r)
	}
	printWarnings(w, res.Warnings)
	return nil
}

func writeReports(o *wallOptions, res wall.Result) error {
	if o.pdf == "" && o.xlsx == "" {
		return nil
	}
	gen := report.NewGenerator(o.preparedBy)
	write := func(path string, render func(io.Writer) error) error {
		if path == "" {
			return nil
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := render(f); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		return f.Close()
	}
	if err := write(o.pdf, func(w io.Writer) error { return gen.PDF(w, o.project, o.in, res) }); err != nil {
		return err
	}
	return write(o.xlsx, func(w io.Writer) error { return gen.Workbook(w, o.project, o.in, res, nil) })
}
