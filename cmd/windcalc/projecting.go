package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"Windsign/internal/calc/projecting"
)

func newProjectingCmd(g *globalOptions) *cobra.Command {
	var in projecting.Input
	cmd := &cobra.Command{
		Use:   "projecting",
		Short: "Wind load and fixings check for a projecting sign",
		Long: `Calculate the wind load on a sign projecting from a wall on brackets and
check the anchors, the RHS brackets and the bracket tip deflection.

Example:
  windcalc projecting -W 1.2 -H 0.8 --projection 0.6 --mounting-height 4 --terrain-category III`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadInput(g.file, &in, cmd.Flags()); err != nil {
				return err
			}
			return runProjecting(cmd.OutOrStdout(), g, in)
		},
	}
	f := cmd.Flags()
	f.Float64VarP(&in.SignWidth, "width", "W", 0, "Sign width (m)")
	f.Float64VarP(&in.SignHeight, "height", "H", 0, "Sign height (m)")
	f.Float64Var(&in.Projection, "projection", 0.5, "Wall to sign centroid (m)")
	f.Float64Var(&in.MountingHeight, "mounting-height", 0, "Height of the sign centroid (m)")
	f.StringVar(&in.TerrainCategory, "terrain-category", "III", "Terrain category: 0, II, III or IV")
	f.Float64Var(&in.VB0, "v-b0", 22.5, "Fundamental basic wind velocity (m/s)")
	f.Float64Var(&in.SignWeight, "weight", 0.15, "Sign self-weight (kN)")
	f.IntVar(&in.Brackets, "brackets", 2, "Number of brackets")
	f.Float64Var(&in.BracketSpacing, "bracket-spacing", 1.0, "Bracket spacing (m)")
	f.IntVar(&in.FixingsPerBracket, "fixings", 4, "Fixings per bracket")
	f.Float64Var(&in.FixingPitch, "fixing-pitch", 0.15, "Vertical fixing pitch (m)")
	f.Float64Var(&in.AnchorTension, "anchor-tension", 12, "Anchor characteristic tension N_Rk (kN)")
	f.Float64Var(&in.AnchorShear, "anchor-shear", 8, "Anchor characteristic shear V_Rk (kN)")
	f.Float64Var(&in.AnchorGammaM, "anchor-gamma", 1.5, "Anchor partial factor γ_M")
	f.Float64Var(&in.BracketWidthMM, "bracket-width", 80, "RHS bracket width (mm)")
	f.Float64Var(&in.BracketDepthMM, "bracket-depth", 60, "RHS bracket depth (mm)")
	f.Float64Var(&in.BracketThickMM, "bracket-thickness", 5, "RHS bracket wall thickness (mm)")
	f.Float64Var(&in.BracketFy, "bracket-fy", 275, "Bracket steel yield strength (N/mm²)")
	return cmd
}

func runProjecting(w io.Writer, g *globalOptions, in projecting.Input) error {
	if err := in.Validate(); err != nil {
		return err
	}
	res, err := projecting.Calculate(in)
	if err != nil {
		return err
	}
	if g.json {
		return printJSON(w, res)
	}

	heading(w, "PROJECTING SIGN - "+res.Methodology)
	tw := table(w)
	fmt.Fprintf(tw, "  Terrain:\t%s (%s)\n", res.Terrain, res.TerrainDescription)
	fmt.Fprintf(tw, "  Peak velocity pressure q_p:\t%.1f Pa\t%s\n", res.QPPa, res.QPRef)
	fmt.Fprintf(tw, "  Force coefficient c_f:\t%.2f\t%s\n", res.CF, res.CFRef)
	fmt.Fprintf(tw, "  Characteristic force F_w,k:\t%.3f kN\n", res.FWk)
	fmt.Fprintf(tw, "  Design force F_w,Ed:\t%.3f kN\n", res.FWEd)
	tw.Flush()

	heading(w, "CHECKS:")
	tw = table(w)
	a, b, d := res.AnchorCheck, res.BracketCheck, res.DeflectionCheck
	fmt.Fprintf(tw, "  Anchor tension\tη = %.3f\t%s\n", a.EtaTension, a.TensionStatus)
	fmt.Fprintf(tw, "  Anchor shear\tη = %.3f\t%s\n", a.EtaShear, a.ShearStatus)
	fmt.Fprintf(tw, "  Anchor combined\tη = %.3f\t%s\n", a.EtaCombined, a.CombinedStatus)
	fmt.Fprintf(tw, "  Bracket bending\tη = %.3f\t%s\n", b.EtaBending, b.BendingStatus)
	fmt.Fprintf(tw, "  Bracket shear\tη = %.3f\t%s\n", b.EtaShear, b.ShearStatus)
	fmt.Fprintf(tw, "  Bracket deflection\t%.2f / %.2f mm\t%s\n", d.Delta, d.DeltaLimit, d.DeflectionStatus)
	tw.Flush()
	fmt.Fprintf(w, "\n  Overall: %s\n", res.OverallStatus)
	printWarnings(w, res.Warnings)
	return nil
}
