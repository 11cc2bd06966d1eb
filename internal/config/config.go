// Package config loads and validates surveyor's runtime configuration.
package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"surveyor/internal/errors"
)

// Storage drivers for the session store.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// EnvPrefix prefixes every environment variable override, e.g. SURVEYOR_API_URL.
const EnvPrefix = "SURVEYOR"

//nolint:gochecknoglobals // Package-level constants for validation
var (
	validStorageDrivers = []string{StorageFile, StorageSQLite}
	validLogFormats     = []string{"text", "json"}
)

// Config represents the surveyor configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

// APIConfig describes the survey API and how to reach it.
type APIConfig struct {
	URL        string        `mapstructure:"url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Insecure   bool          `mapstructure:"insecure"`
	RateLimit  float64       `mapstructure:"rate_limit"`
	RateBurst  int           `mapstructure:"rate_burst"`
	RetryCount int           `mapstructure:"retry_count"`
}

// StorageConfig selects where the current account is kept.
// An empty Path uses the default location under the config directory.
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults registers defaults and environment overrides on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.url", "http://localhost:5050/api")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("api.insecure", false)
	v.SetDefault("api.rate_limit", 10.0)
	v.SetDefault("api.rate_burst", 20)
	v.SetDefault("api.retry_count", 2)
	v.SetDefault("storage.driver", StorageFile)
	v.SetDefault("storage.path", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.NewConfigurationError("", "", "failed to decode configuration", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for values the application cannot use.
func (c *Config) Validate() error {
	if c.API.URL == "" {
		return errors.NewValidationError("api.url", "", "required", "api url is required")
	}

	parsed, err := url.Parse(c.API.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return errors.NewValidationError("api.url", c.API.URL, "http_url", "api url must be an absolute http(s) URL")
	}

	if c.API.Timeout <= 0 {
		return errors.NewValidationError("api.timeout", c.API.Timeout.String(), "positive", "api timeout must be positive")
	}

	if !slices.Contains(validStorageDrivers, c.Storage.Driver) {
		return errors.NewValidationError(
			"storage.driver",
			c.Storage.Driver,
			"supported_values",
			fmt.Sprintf("storage driver must be one of: %s", strings.Join(validStorageDrivers, ", ")),
		)
	}

	if !slices.Contains(validLogFormats, c.Log.Format) {
		return errors.NewValidationError(
			"log.format",
			c.Log.Format,
			"supported_values",
			fmt.Sprintf("log format must be one of: %s", strings.Join(validLogFormats, ", ")),
		)
	}

	return nil
}
