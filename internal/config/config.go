// Package config loads the application configuration from a YAML file,
// falling back to sensible defaults for every knob.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/lepinkainen/extract-forge/pkg/filesystem"
)

// Config holds the central application configuration
type Config struct {
	// OpenGraph fetch configuration
	OpenGraph struct {
		TimeoutSeconds int    `mapstructure:"timeout_seconds"` // Per-request timeout
		UserAgent      string `mapstructure:"user_agent"`      // User-Agent header
		MaxRedirects   int    `mapstructure:"max_redirects"`   // Redirect chain cap
		PerHostDelayMS int    `mapstructure:"per_host_delay_ms"`
	} `mapstructure:"opengraph"`

	// Cache configuration
	Cache struct {
		Backend    string `mapstructure:"backend"`     // "memory" or "sqlite"
		Path       string `mapstructure:"path"`        // SQLite database path
		TTLMinutes int    `mapstructure:"ttl_minutes"` // Entry lifetime
		KeyPrefix  string `mapstructure:"key_prefix"`  // Cache key namespace
	} `mapstructure:"cache"`

	// Identifiers points at a custom identifier spec file; empty uses the
	// embedded defaults.
	Identifiers struct {
		SpecFile string `mapstructure:"spec_file"`
	} `mapstructure:"identifiers"`
}

// Timeout returns the OpenGraph timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.OpenGraph.TimeoutSeconds) * time.Second
}

// PerHostDelay returns the per-host rate limit as a duration.
func (c *Config) PerHostDelay() time.Duration {
	return time.Duration(c.OpenGraph.PerHostDelayMS) * time.Millisecond
}

// CacheTTL returns the cache entry lifetime as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}

// LoadConfig loads the configuration from a file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "config.yaml"
	}

	// If path is relative, try current directory first, then executable directory
	if !filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			if execPath, err := filesystem.GetDefaultPath(path); err == nil {
				if _, err := os.Stat(execPath); err == nil {
					path = execPath
				}
			}
			// If both fail, use original path and let Viper handle the error
		}
	}

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	// Set default values
	viper.SetDefault("opengraph.timeout_seconds", 15)
	viper.SetDefault("opengraph.user_agent", "extract-forge/1.0 (OpenGraph fetcher)")
	viper.SetDefault("opengraph.max_redirects", 3)
	viper.SetDefault("opengraph.per_host_delay_ms", 1000)

	viper.SetDefault("cache.backend", "sqlite")
	viper.SetDefault("cache.path", "")
	viper.SetDefault("cache.ttl_minutes", 60)
	viper.SetDefault("cache.key_prefix", "")

	viper.SetDefault("identifiers.spec_file", "")

	// Read configuration file
	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine, defaults apply
		if _, ok := err.(*os.PathError); !ok {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
