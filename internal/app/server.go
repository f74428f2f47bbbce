package app

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cardreveal/internal/catalog"
	"cardreveal/internal/server"
	"cardreveal/internal/store"
)

// ServerWire bundles the reveal server's dependencies.
type ServerWire struct {
	Assets *catalog.FSCatalog
	Store  store.Store
	Echo   *echo.Echo
}

// NewServerWire builds the reveal server from opts. The caller must Close
// the result.
func NewServerWire(opts Options) (*ServerWire, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	assets := catalog.NewDir(cfg.Assets.Dir, logger.Named("catalog"))
	st, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Storage.Backend, err)
	}

	h := server.NewHandler(assets, assets.FS(), st, cfg.Server.PublicURL, logger.Named("http"))
	return &ServerWire{
		Assets: assets,
		Store:  st,
		Echo:   server.New(h, logger.Named("http")),
	}, nil
}

// Close releases the artifact store.
func (s *ServerWire) Close() error {
	return s.Store.Close()
}
