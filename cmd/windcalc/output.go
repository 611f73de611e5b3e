package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"Windsign/internal/calc/pressure"
)

const rule = "───────────────────────────────────────────────────────────────"

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
}

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printStages(w io.Writer, stages []pressure.Stage) {
	heading(w, "CALCULATION STAGES:")
	tw := table(w)
	for _, s := range stages {
		fmt.Fprintf(tw, "  %s\t%s\t%.4g %s\t%s\n", s.Symbol, s.Name, s.Value, s.Unit, s.Reference)
	}
	tw.Flush()
}

func printWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	heading(w, "WARNINGS:")
	for _, msg := range warnings {
		fmt.Fprintf(w, "  ⚠ %s\n", msg)
	}
}
