package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"Windsign/internal/calc/loads"
)

func newPostcodeCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "postcode POSTCODE",
		Short: "Look up the regional wind speed for a UK postcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := loads.CheckPostcode(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if g.json {
				return printJSON(w, res)
			}
			fmt.Fprintf(w, "%s: v_map = %.1f m/s (%s)\n", args[0], res.VMap, res.Area)
			fmt.Fprintln(w, res.Note)
			return nil
		},
	}
}
