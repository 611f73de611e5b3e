package main

import (
	"github.com/spf13/cobra"
)

type globalOptions struct {
	json bool
	file string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "windcalc",
		Short: "Wind loading on signage (BS EN 1991-1-4 / SCI P394)",
		Long: `windcalc - wind loads on signs to BS EN 1991-1-4 and the UK National Annex

Calculates peak velocity pressure, wind force and overturning moment for
wall-mounted, projecting and post-mounted signs, and checks panel channel
spacing. Inputs come from flags or from a YAML/JSON file (--file); flags
given explicitly override values read from the file.

Results are indicative and must be checked by a qualified engineer.`,
		SilenceUsage: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Print the full result as JSON")
	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Read inputs from a YAML or JSON file")

	root.AddCommand(
		newWallCmd(opts),
		newProjectingCmd(opts),
		newPostCmd(opts),
		newPanelCmd(opts),
		newPostcodeCmd(opts),
		newTokenCmd(),
		newHashKeyCmd(),
		newVersionCmd(),
	)
	return root
}
