package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"Windsign/internal/calc/panel"
)

func newPanelCmd(g *globalOptions) *cobra.Command {
	var in panel.Input
	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Check panel deflection and stress between support channels",
		Long: `Check a 1 m strip of sign panel spanning between horizontal channels under
wind pressure, and recommend the channel count.

Materials: ` + strings.Join(panel.Materials(), ", ") + `

Example:
  windcalc panel --material acm_3mm --spacing 400 --pressure 1058 --height 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadInput(g.file, &in, cmd.Flags()); err != nil {
				return err
			}
			return runPanel(cmd.OutOrStdout(), g, in)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Material, "material", panel.DefaultMaterial, "Panel material key")
	f.Float64Var(&in.ChannelSpacing, "spacing", 0, "Channel spacing (mm)")
	f.Float64Var(&in.WindPressure, "pressure", 0, "Design wind pressure (Pa)")
	f.Float64VarP(&in.SignHeight, "height", "H", 2.0, "Sign height (m)")
	f.Float64VarP(&in.SignWidth, "width", "W", 3.0, "Sign width (m)")
	return cmd
}

func runPanel(w io.Writer, g *globalOptions, in panel.Input) error {
	if err := in.Validate(); err != nil {
		return err
	}
	res, err := panel.Calculate(in)
	if err != nil {
		return err
	}
	if g.json {
		return printJSON(w, res)
	}

	heading(w, "PANEL CHECK - "+res.Material)
	tw := table(w)
	fmt.Fprintf(tw, "  Deflection\t%.2f / %.2f mm\t%s\n", res.Deflection.Calculated, res.Deflection.Limit, res.Deflection.Status)
	fmt.Fprintf(tw, "  Stress\t%.1f / %.1f N/mm²\t%s\n", res.Stress.Calculated, res.Stress.Limit, res.Stress.Status)
	fmt.Fprintf(tw, "  Channels (current)\t%d\n", res.ChannelsCurrent)
	fmt.Fprintf(tw, "  Max spacing\t%.0f mm\n", res.MaxSpacingRecommended)
	tw.Flush()
	fmt.Fprintf(w, "\n  Overall: %s\n  %s\n", res.OverallStatus, res.QualityNote)
	for _, r := range res.Recommendations {
		fmt.Fprintf(w, "  • %s\n", r)
	}
	return nil
}
