package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/genomekit/genomekit/pkg/errors"
)

// Cache backend names accepted in the config file.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendNone  = "none"
)

// Config holds the settings read from ~/.config/genomekit/config.toml.
// Every field has a sensible zero-value default, so a missing config file
// is not an error. Command-line flags override config values.
type Config struct {
	// BaseURL overrides the UCSC API endpoint.
	BaseURL string `toml:"base_url"`
	// CacheDir overrides the HTTP response cache directory.
	CacheDir string `toml:"cache_dir"`
	// GenomesDir overrides the genome store directory.
	GenomesDir string `toml:"genomes_dir"`
	// CacheTTL is the response cache lifetime as a duration string
	// (e.g., "24h"). Empty means entries never expire.
	CacheTTL string `toml:"cache_ttl"`
	// Backend selects the response cache: "file" (default), "redis", "none".
	Backend string `toml:"backend"`
	// RedisAddr is the redis server address when Backend is "redis".
	RedisAddr string `toml:"redis_addr"`
	// Filters overrides the default chromosome name filters.
	Filters []string `toml:"filters"`
}

// TTL parses CacheTTL, returning zero (no expiry) when unset.
func (c Config) TTL() time.Duration {
	if c.CacheTTL == "" {
		return 0
	}
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 0
	}
	return d
}

// configPath returns the config file location using XDG standard
// (~/.config/genomekit/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path. A missing file yields the
// zero config; a malformed file is an error.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing config %s", path)
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	switch cfg.Backend {
	case "", backendFile, backendRedis, backendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"unknown cache backend %q (expected file, redis, or none)", cfg.Backend)
	}
	if cfg.Backend == backendRedis && cfg.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "backend is redis but redis_addr is not set")
	}
	if cfg.CacheTTL != "" {
		if _, err := time.ParseDuration(cfg.CacheTTL); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid cache_ttl %q", cfg.CacheTTL)
		}
	}
	return nil
}
