package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cardreveal/internal/app"
	"cardreveal/internal/config"
	"cardreveal/internal/logging"
)

// annotationTUI marks commands that own the terminal.
const annotationTUI = "tui"

var (
	cfgFile string
	cfg     config.Config
	logger  *zap.Logger
	wire    *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "cardreveal",
		Short:        "Pick three cards, reveal a prompt, share the result",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logOpts := logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File}
			if cmd.Annotations[annotationTUI] == "true" && logOpts.File == "" {
				logOpts.File = filepath.Join(os.TempDir(), "cardreveal.log")
			}
			logger, err = logging.New(logOpts)
			if err != nil {
				return err
			}

			wire, err = app.NewWire(app.Options{Config: cfg, Logger: logger})
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire != nil {
				_ = wire.Close()
			}
			if logger != nil {
				_ = logger.Sync()
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default $CARDREVEAL_CONFIG or ~/.config/cardreveal/config.toml)")
	pf.String("log-level", "", "debug, info, warn or error")
	pf.String("log-format", "", "console or json")
	pf.String("log-file", "", "write logs to this file")
	pf.String("assets-dir", "", "asset directory (default: built-in set)")
	pf.String("server", "", "reveal server URL for assets and uploads (e.g. http://127.0.0.1:8080)")
	pf.String("capture", "", "capture backend: raster or browser")
	pf.Float64("pixel-ratio", 0, "capture pixel ratio")
	pf.String("browser-url", "", "DevTools URL of a running Chrome for browser capture")
	pf.String("out", "", "directory card-reveal.png is saved to")
	pf.Duration("http-timeout", 0, "timeout for requests to the reveal server")
	pf.String("share-public", "", "origin serving share preview pages")
	pf.String("share-generic", "", "destination shared when no image was uploaded")

	root.AddCommand(playCmd(), revealCmd(), shareCmd(), catalogCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return root.ExecuteContext(ctx)
}
