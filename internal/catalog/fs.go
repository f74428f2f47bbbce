package catalog

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"cardreveal/internal/domain"
)

const (
	PromptsFile  = "prompts.txt"
	FeaturesFile = "features.txt"
	ImagesFile   = "images.json"
	ImagesDir    = "images"
)

//go:embed data
var embedded embed.FS

// Embedded returns the default asset tree compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err) // the embed pattern guarantees data/ exists
	}
	return sub
}

// FSCatalog reads the asset lists from an fs.FS.
type FSCatalog struct {
	fsys   fs.FS
	logger *zap.Logger
}

// NewFS returns a catalog over fsys.
func NewFS(fsys fs.FS, logger *zap.Logger) *FSCatalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FSCatalog{fsys: fsys, logger: logger}
}

// NewDir returns a catalog rooted at dir, or the embedded catalog when dir
// is empty.
func NewDir(dir string, logger *zap.Logger) *FSCatalog {
	if dir == "" {
		return NewFS(Embedded(), logger)
	}
	return NewFS(os.DirFS(dir), logger)
}

// FS exposes the underlying tree, e.g. for serving images.
func (c *FSCatalog) FS() fs.FS { return c.fsys }

// Load reads all three lists. Lists that cannot be read come back empty and
// the returned error wraps domain.ErrAssetUnavailable; the Catalog is always
// usable.
func (c *FSCatalog) Load(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, err
	}

	var (
		cat  domain.Catalog
		errs []error
		err  error
	)
	if cat.Prompts, err = c.Prompts(); err != nil {
		errs = append(errs, err)
	}
	if cat.Features, err = c.Features(); err != nil {
		errs = append(errs, err)
	}
	if cat.Images, err = c.Images(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		joined := errors.Join(errs...)
		c.logger.Warn("asset lists unavailable, using fallbacks", zap.Error(joined))
		return cat, joined
	}
	c.logger.Debug("catalog loaded",
		zap.Int("prompts", len(cat.Prompts)),
		zap.Int("features", len(cat.Features)),
		zap.Int("images", len(cat.Images)),
	)
	return cat, nil
}

// Prompts reads the prompt list.
func (c *FSCatalog) Prompts() ([]string, error) { return c.lines(PromptsFile) }

// Features reads the feature list.
func (c *FSCatalog) Features() ([]string, error) { return c.lines(FeaturesFile) }

// Images reads the image manifest.
func (c *FSCatalog) Images() ([]string, error) {
	raw, err := fs.ReadFile(c.fsys, ImagesFile)
	if err != nil {
		return []string{}, unavailable(ImagesFile, err)
	}
	images, err := ParseImageManifest(raw)
	if err != nil {
		return []string{}, unavailable(ImagesFile, err)
	}
	return images, nil
}

func (c *FSCatalog) lines(name string) ([]string, error) {
	raw, err := fs.ReadFile(c.fsys, name)
	if err != nil {
		return []string{}, unavailable(name, err)
	}
	return ParseLines(string(raw)), nil
}

func unavailable(name string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrAssetUnavailable, name, err)
}

var _ domain.AssetCatalog = (*FSCatalog)(nil)
