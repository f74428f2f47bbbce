package app

import (
	"net/http"

	"go.uber.org/zap"

	"cardreveal/internal/config"
)

// Options holds runtime wiring inputs beyond the loaded configuration.
type Options struct {
	Config config.Config
	Logger *zap.Logger  // optional; defaults to a no-op logger
	HTTP   *http.Client  // optional; defaults to a client with Config.HTTP.Timeout
}
