package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cardreveal/internal/assign"
	"cardreveal/internal/domain"
	"cardreveal/internal/game"
	"cardreveal/internal/share"
)

type revealOutput struct {
	Selection []int             `json:"selection"`
	View      domain.RevealView `json:"view"`
	Saved     string            `json:"saved,omitempty"`
	ShareURL  string            `json:"share_url,omitempty"`
	ImageURL  string            `json:"image_url,omitempty"`
}

// reveal <a> <b> <c>: play a round by slot number, then optionally save or share.
func revealCmd() *cobra.Command {
	var (
		seed     uint64
		save     bool
		platform string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "reveal <a> <b> <c>",
		Short: "Pick three slots (1-9) and print the revealed cards",
		Args:  cobra.ExactArgs(domain.MaxSelected),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var sharePlatform domain.Platform
			if platform != "" {
				p, err := share.ParsePlatform(platform)
				if err != nil {
					return err
				}
				sharePlatform = p
			}

			session := game.NewSession(wire.LoadCatalog(ctx), sessionOpts(seed)...)
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("slot %q is not a number", arg)
				}
				if !session.Toggle(n - 1) {
					return fmt.Errorf("slot %d rejected (valid slots are 1-%d, each picked once)", n, domain.SlotCount)
				}
			}

			out := revealOutput{View: session.View()}
			for _, i := range session.Selection() {
				out.Selection = append(out.Selection, i+1)
			}

			if save {
				path, err := wire.Reveal.Save(ctx, out.View)
				if err != nil {
					// Saving is best effort; the round itself succeeded.
					logger.Warn("save failed", zap.Error(err))
					fmt.Fprintln(os.Stderr, "save failed:", err)
				}
				out.Saved = path
			}
			if sharePlatform != "" {
				res, err := wire.Reveal.Share(ctx, sharePlatform, out.View)
				if err != nil {
					return err
				}
				if res.Degraded != nil {
					fmt.Fprintln(os.Stderr, "image unavailable, sharing link only:", degradedReason(res.Degraded))
				}
				out.ShareURL, out.ImageURL = res.URL, res.ImageURL
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			printReveal(cmd, session, out)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed the dealer for a reproducible round (0 = random)")
	cmd.Flags().BoolVar(&save, "save", false, "save card-reveal.png to the output directory")
	cmd.Flags().StringVar(&platform, "share", "", "share to x, facebook or telegram")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func printReveal(cmd *cobra.Command, session *game.Session, out revealOutput) {
	w := cmd.OutOrStdout()
	for _, i := range session.Selection() {
		c := session.Slot(i).Content
		fmt.Fprintf(w, "slot %d  %-7s  %s\n", i+1, c.Kind(), c.Value())
	}
	if out.Saved != "" {
		fmt.Fprintln(w, "saved", out.Saved)
	}
	if out.ShareURL != "" {
		fmt.Fprintln(w, out.ShareURL)
	}
}

func degradedReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrCaptureFailed):
		return "capture failed"
	case errors.Is(err, domain.ErrUploadFailed):
		return "upload failed"
	default:
		return err.Error()
	}
}

func sessionOpts(seed uint64) []game.Option {
	opts := []game.Option{game.WithLogger(logger.Named("game"))}
	if seed != 0 {
		opts = append(opts, game.WithRNG(assign.NewSeededRNG(seed)))
	}
	return opts
}
