package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cardreveal/internal/game"
	"cardreveal/internal/tui"
)

// play: interactive round in the terminal.
func playCmd() *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:         "play",
		Short:       "Play a round in the terminal UI",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationTUI: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session := game.NewSession(wire.LoadCatalog(ctx), sessionOpts(seed)...)
			model := tui.New(ctx, session, wire.Reveal, logger.Named("tui"))
			_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed the dealer for a reproducible round (0 = random)")
	return cmd
}
