package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardreveal/internal/config"
	"cardreveal/internal/share"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CARDREVEAL_CONFIG", "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "file", c.Storage.Backend)
	assert.Equal(t, "raster", c.Capture.Backend)
	assert.Equal(t, 2.0, c.Capture.PixelRatio)
	assert.Equal(t, "#000000", c.Capture.Background)
	assert.Equal(t, share.DefaultText, c.Share.Text)
	assert.Equal(t, share.DefaultGenericURL, c.Share.GenericURL)
	assert.Equal(t, 15*time.Second, c.HTTP.Timeout)
}

func TestLoad_FileEnvFlagPrecedence(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[log]
level = "warn"
format = "json"

[capture]
pixel_ratio = 3.0

[server]
addr = ":9000"

[http]
timeout = "2s"
`), 0o600))

	t.Setenv("CARDREVEAL_LOG_LEVEL", "error")
	t.Setenv("CARDREVEAL_STORAGE_BACKEND", "sqlite")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", "", "")
	flags.String("log-format", "", "")
	require.NoError(t, flags.Parse([]string{"--addr", ":7000"}))

	c, err := config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "error", c.Log.Level, "env beats file")
	assert.Equal(t, "json", c.Log.Format, "unset flag does not override file")
	assert.Equal(t, ":7000", c.Server.Addr, "flag beats file")
	assert.Equal(t, "sqlite", c.Storage.Backend)
	assert.Equal(t, 3.0, c.Capture.PixelRatio)
	assert.Equal(t, 2*time.Second, c.HTTP.Timeout)
}

func TestLoad_ConfigFromEnvPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "alt.toml")
	require.NoError(t, os.WriteFile(path, []byte("[assets]\nserver = \"http://assets.test\"\n"), 0o600))
	t.Setenv("CARDREVEAL_CONFIG", path)

	c, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://assets.test", c.Assets.Server)
	assert.Equal(t, "http://assets.test", c.SharePublicURL())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	for key, val := range map[string]string{
		"CARDREVEAL_STORAGE_BACKEND":    "s3",
		"CARDREVEAL_CAPTURE_BACKEND":    "gpu",
		"CARDREVEAL_CAPTURE_BACKGROUND": "black",
		"CARDREVEAL_CAPTURE_WIDTH":      "32",
		"CARDREVEAL_CAPTURE_PIXEL_RATIO": "0",
	} {
		t.Run(key, func(t *testing.T) {
			isolate(t)
			t.Setenv(key, val)
			_, err := config.Load("", nil)
			assert.Error(t, err)
		})
	}
}

func TestSharePublicURL_Precedence(t *testing.T) {
	c := config.Config{}
	assert.Empty(t, c.SharePublicURL())
	c.Assets.Server = "http://a"
	c.Server.PublicURL = "http://b"
	assert.Equal(t, "http://b", c.SharePublicURL())
	c.Share.PublicURL = "http://c"
	assert.Equal(t, "http://c", c.SharePublicURL())
}
