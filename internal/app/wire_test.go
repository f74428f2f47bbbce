package app_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardreveal/internal/app"
	"cardreveal/internal/capture"
	"cardreveal/internal/config"
	"cardreveal/internal/domain"
	"cardreveal/internal/game"
	"cardreveal/internal/remote"
	"cardreveal/internal/store"
)

func baseConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Storage: config.StorageConfig{Backend: "file", Path: t.TempDir()},
		Capture: config.CaptureConfig{Backend: "raster", PixelRatio: 1, Background: "#000000", Width: 200},
		Output:  config.OutputConfig{Dir: t.TempDir()},
		HTTP:    config.HTTPConfig{Timeout: 5 * time.Second},
	}
}

func TestNewWire_EmbeddedAssetsRoundTrip(t *testing.T) {
	w, err := app.NewWire(app.Options{Config: baseConfig(t)})
	require.NoError(t, err)
	defer w.Close()

	assert.IsType(t, &capture.Raster{}, w.Capturer)
	assert.Nil(t, w.Uploader)

	cat := w.LoadCatalog(context.Background())
	require.False(t, cat.Empty())

	s := game.NewSession(cat)
	for _, i := range []int{0, 4, 8} {
		s.Toggle(i)
	}
	require.Equal(t, domain.StateRevealed, s.State())

	path, err := w.Reveal.Save(context.Background(), s.View())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestNewWire_RemoteAssets(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Assets.Server = "http://assets.test"

	w, err := app.NewWire(app.Options{Config: cfg})
	require.NoError(t, err)
	defer w.Close()

	assert.IsType(t, &remote.Client{}, w.Catalog)
	assert.NotNil(t, w.Uploader)
	assert.Nil(t, w.Assets)
	assert.Equal(t, "http://assets.test", w.Links.PublicURL)
}

func TestNewServerWire_SQLite(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Storage = config.StorageConfig{Backend: store.BackendSQLite, Path: filepath.Join(t.TempDir(), "a.db")}

	sw, err := app.NewServerWire(app.Options{Config: cfg})
	require.NoError(t, err)
	defer sw.Close()

	assert.NotNil(t, sw.Echo)
	_, err = sw.Store.Put(context.Background(), []byte("x"), "image/png")
	assert.NoError(t, err)
}
