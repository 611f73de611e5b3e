package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"Windsign/internal/calc/pressure"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of windcalc",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "windcalc v%s\n", pressure.Version)
			fmt.Fprintf(w, "%s, %s\n", pressure.Standard, pressure.Reference)
		},
	}
}
