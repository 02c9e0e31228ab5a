package vidsage

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the environment-driven client settings.
type Config struct {
	// BaseURL is the backend origin, e.g. "https://vidsage.example.com".
	BaseURL string `envconfig:"VIDSAGE_BASE_URL" required:"true"`

	// HTTPTimeout bounds each HTTP request end to end.
	HTTPTimeout time.Duration `envconfig:"VIDSAGE_HTTP_TIMEOUT" default:"30s"`

	// DownloadDir is where transcript downloads are written.
	DownloadDir string `envconfig:"VIDSAGE_DOWNLOAD_DIR" default:"."`
}

// LoadConfig reads VIDSAGE_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromEnv constructs a Client from VIDSAGE_* environment variables.
// Additional options are applied after the environment-derived ones, so
// they win on conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithDownloadDir(cfg.DownloadDir),
	}
	return New(cfg.BaseURL, append(base, opts...)...)
}
