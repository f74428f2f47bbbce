package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"go.uber.org/zap"

	"cardreveal/internal/capture"
	"cardreveal/internal/catalog"
	"cardreveal/internal/domain"
	"cardreveal/internal/remote"
	"cardreveal/internal/services/reveal"
	"cardreveal/internal/share"
)

// Wire bundles the components a CLI command needs.
type Wire struct {
	Catalog  domain.AssetCatalog
	Assets   fs.FS // local asset tree, nil when assets come from a server
	Capturer domain.Capturer
	Uploader domain.Uploader // nil when no server is configured
	Links    *share.Builder
	Reveal   *reveal.Service
	HTTP     *http.Client
	Logger   *zap.Logger

	closers []func() error
}

// NewWire constructs the client-side dependency graph from opts.
func NewWire(opts Options) (*Wire, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := opts.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTP.Timeout}
	}

	w := &Wire{HTTP: httpClient, Logger: logger}

	// Asset source: a reveal server, a local directory, or the embedded set.
	if cfg.Assets.Server != "" {
		rc := remote.NewClient(cfg.Assets.Server, httpClient, logger.Named("remote"))
		w.Catalog = rc
		w.Uploader = rc
	} else {
		local := catalog.NewDir(cfg.Assets.Dir, logger.Named("catalog"))
		w.Catalog = local
		w.Assets = local.FS()
	}

	capOpts := capture.Options{
		PixelRatio: cfg.Capture.PixelRatio,
		Background: cfg.Capture.Background,
		Width:      cfg.Capture.Width,
	}
	// Both backends load images the same way: catalog tree first, then the
	// asset server.
	resolver := &capture.Resolver{FS: w.Assets, BaseURL: cfg.Assets.Server, HTTP: httpClient}
	switch cfg.Capture.Backend {
	case "browser":
		b, err := capture.NewBrowser(cfg.Capture.BrowserURL, resolver, capOpts, logger.Named("capture"))
		if err != nil {
			return nil, fmt.Errorf("browser capture: %w", err)
		}
		w.Capturer = b
		w.closers = append(w.closers, b.Close)
	default:
		r, err := capture.NewRaster(resolver, capOpts, logger.Named("capture"))
		if err != nil {
			return nil, fmt.Errorf("raster capture: %w", err)
		}
		w.Capturer = r
	}

	w.Links = share.New(cfg.SharePublicURL())
	if cfg.Share.GenericURL != "" {
		w.Links.GenericURL = cfg.Share.GenericURL
	}
	if cfg.Share.Text != "" {
		w.Links.Text = cfg.Share.Text
	}
	w.Reveal = reveal.New(w.Capturer, w.Uploader, w.Links, cfg.Output.Dir, logger.Named("reveal"))
	return w, nil
}

// LoadCatalog loads the catalog, logging rather than failing when lists are
// unavailable.
func (w *Wire) LoadCatalog(ctx context.Context) domain.Catalog {
	cat, err := w.Catalog.Load(ctx)
	if err != nil {
		w.Logger.Warn("catalog incomplete", zap.Error(err))
	}
	return cat
}

// Close releases resources held by the wired components.
func (w *Wire) Close() error {
	var errs []error
	for _, c := range w.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
