// Package config loads cardreveal settings from defaults, an optional TOML
// file, CARDREVEAL_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cardreveal/internal/capture"
	"cardreveal/internal/share"
)

// EnvPrefix prefixes every environment override, e.g. CARDREVEAL_LOG_LEVEL.
const EnvPrefix = "CARDREVEAL"

// Config holds application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Assets  AssetsConfig  `mapstructure:"assets"`
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Share   ShareConfig   `mapstructure:"share"`
	Capture CaptureConfig `mapstructure:"capture"`
	Output  OutputConfig  `mapstructure:"output"`
	HTTP    HTTPConfig    `mapstructure:"http"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// AssetsConfig selects where the catalog comes from. Server wins over Dir;
// both empty means the embedded default set.
type AssetsConfig struct {
	Dir    string `mapstructure:"dir"`
	Server string `mapstructure:"server"`
}

type ServerConfig struct {
	Addr      string `mapstructure:"addr"`
	PublicURL string `mapstructure:"public_url"`
}

type StorageConfig struct {
	Backend string `mapstructure:"backend"` // file or sqlite
	Path    string `mapstructure:"path"`
}

type ShareConfig struct {
	Text       string `mapstructure:"text"`
	GenericURL string `mapstructure:"generic_url"`
	PublicURL  string `mapstructure:"public_url"`
}

type CaptureConfig struct {
	Backend    string  `mapstructure:"backend"` // raster or browser
	PixelRatio float64 `mapstructure:"pixel_ratio"`
	Background string  `mapstructure:"background"`
	Width      int     `mapstructure:"width"`
	BrowserURL string  `mapstructure:"browser_url"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// FlagKeys maps command-line flag names to config keys.
var FlagKeys = map[string]string{
	"log-level":     "log.level",
	"log-format":    "log.format",
	"log-file":      "log.file",
	"assets-dir":    "assets.dir",
	"server":        "assets.server",
	"addr":          "server.addr",
	"public-url":    "server.public_url",
	"storage":       "storage.backend",
	"storage-path":  "storage.path",
	"capture":       "capture.backend",
	"pixel-ratio":   "capture.pixel_ratio",
	"browser-url":   "capture.browser_url",
	"out":           "output.dir",
	"http-timeout":  "http.timeout",
	"share-public":  "share.public_url",
	"share-generic": "share.generic_url",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("assets.dir", "")
	v.SetDefault("assets.server", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.public_url", "")
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.path", filepath.Join("data", "uploads"))
	v.SetDefault("share.text", share.DefaultText)
	v.SetDefault("share.generic_url", share.DefaultGenericURL)
	v.SetDefault("share.public_url", "")
	v.SetDefault("capture.backend", "raster")
	v.SetDefault("capture.pixel_ratio", float64(capture.DefaultPixelRatio))
	v.SetDefault("capture.background", capture.DefaultBackground)
	v.SetDefault("capture.width", capture.DefaultWidth)
	v.SetDefault("capture.browser_url", "")
	v.SetDefault("output.dir", ".")
	v.SetDefault("http.timeout", 15*time.Second)
}

// Load reads configuration. path names a TOML file; empty falls back to
// $CARDREVEAL_CONFIG and then to ~/.config/cardreveal/config.toml if it
// exists. flags may be nil; flags named in FlagKeys override other sources
// only when set on the command line.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "cardreveal"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values no component can work with.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("storage.backend must be file or sqlite, got %q", c.Storage.Backend)
	}
	switch c.Capture.Backend {
	case "raster", "browser":
	default:
		return fmt.Errorf("capture.backend must be raster or browser, got %q", c.Capture.Backend)
	}
	if c.Capture.PixelRatio <= 0 {
		return fmt.Errorf("capture.pixel_ratio must be positive, got %v", c.Capture.PixelRatio)
	}
	if c.Capture.Width < capture.MinWidth {
		return fmt.Errorf("capture.width must be at least %d, got %d", capture.MinWidth, c.Capture.Width)
	}
	if _, err := capture.ParseHexColor(c.Capture.Background); err != nil {
		return fmt.Errorf("capture.background: %w", err)
	}
	return nil
}

// SharePublicURL is the origin share links point at: share.public_url,
// falling back to server.public_url and then assets.server.
func (c Config) SharePublicURL() string {
	for _, u := range []string{c.Share.PublicURL, c.Server.PublicURL, c.Assets.Server} {
		if u != "" {
			return u
		}
	}
	return ""
}
