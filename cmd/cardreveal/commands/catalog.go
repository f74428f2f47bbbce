package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// catalog: report what the asset source provides.
func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Show how many prompts, features and images are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := wire.Catalog.Load(cmd.Context())
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "prompts   %d\n", len(cat.Prompts))
			fmt.Fprintf(w, "features  %d\n", len(cat.Features))
			fmt.Fprintf(w, "images    %d\n", len(cat.Images))
			if err != nil {
				fmt.Fprintln(w, "warning:", err)
			}
			return nil
		},
	}
}
