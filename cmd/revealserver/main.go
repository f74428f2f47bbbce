package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cardreveal/internal/app"
	"cardreveal/internal/config"
	"cardreveal/internal/logging"
	"cardreveal/internal/server"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:          "revealserver",
		Short:        "Serve assets, uploads and share previews for cardreveal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File})
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			sw, err := app.NewServerWire(app.Options{Config: cfg, Logger: logger})
			if err != nil {
				logger.Error("failed to build server", zap.Error(err))
				return err
			}
			defer func() { _ = sw.Close() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("assets",
				zap.String("dir", orDefault(cfg.Assets.Dir, "built-in")),
				zap.String("storage", fmt.Sprintf("%s:%s", cfg.Storage.Backend, cfg.Storage.Path)),
			)
			return server.Run(ctx, sw.Echo, cfg.Server.Addr, logger)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (default $CARDREVEAL_CONFIG or ~/.config/cardreveal/config.toml)")
	f.String("addr", "", "listen address (default :8080)")
	f.String("public-url", "", "externally visible origin used in upload URLs")
	f.String("assets-dir", "", "asset directory (default: built-in set)")
	f.String("storage", "", "capture storage backend: file or sqlite")
	f.String("storage-path", "", "directory (file) or database path (sqlite) for captures")
	f.String("log-level", "", "debug, info, warn or error")
	f.String("log-format", "", "console or json")
	f.String("log-file", "", "write logs to this file")

	return cmd
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
