package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPricesCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Fetch current prices once and print them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap := a.orchestrator.BuildPriceMapping(cmd.Context())
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "METAL\tUSD/G\tSOURCE")
			for _, q := range snap.Quotes {
				fmt.Fprintf(w, "%s\t%.2f\t%s\n", q.Metal, q.PerGram, q.Source)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full snapshot as JSON")
	return cmd
}
