package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cardreveal/internal/domain"
	"cardreveal/internal/share"
)

// share <platform>: print a share URL, optionally for an uploaded image.
func shareCmd() *cobra.Command {
	var imageURL string
	cmd := &cobra.Command{
		Use:   "share <platform|all>",
		Short: "Print the share URL for x, facebook, telegram or all of them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if args[0] == "all" {
				links := wire.Links.All(imageURL)
				for _, p := range domain.Platforms {
					fmt.Fprintf(w, "%-9s %s\n", p, links[p])
				}
				return nil
			}
			p, err := share.ParsePlatform(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(w, wire.Links.URL(p, imageURL))
			return nil
		},
	}
	cmd.Flags().StringVar(&imageURL, "image-url", "", "public URL of an uploaded capture")
	return cmd
}
