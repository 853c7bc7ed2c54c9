// Package cli implements the genomekit command-line interface.
//
// This package provides commands for browsing the UCSC assembly catalog,
// downloading genomes into the local store, scanning sequences for gaps,
// transforming BED interval tables, and serving the store over HTTP. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - genomes / info: Browse the UCSC assembly catalog
//   - fetch / delete: Manage locally stored assemblies
//   - gaps / filled: Scan chromosomes for runs of unknown nucleotides
//   - tessellate / expand / wiggle: Transform BED interval tables
//   - sequence: Extract nucleotide sequences for BED intervals
//   - cache: Manage the HTTP response cache
//   - serve: Expose the local store over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/genomekit/genomekit/pkg/cache"
	"github.com/genomekit/genomekit/pkg/genome"
	"github.com/genomekit/genomekit/pkg/ucsc"
)

// appName is the application name used for directories and display.
const appName = "genomekit"

// CLI holds shared state for all commands.
type CLI struct {
	cfg Config
}

// newCache builds the response cache backend selected by the config.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.cfg.Backend {
	case backendNone:
		return cache.NewNullCache(), nil
	case backendRedis:
		return cache.NewRedisCache(ctx, c.cfg.RedisAddr, appName)
	default:
		dir := c.cfg.CacheDir
		if dir == "" {
			var err error
			if dir, err = cacheDir(); err != nil {
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)
	}
}

// newClient builds a UCSC API client per the config.
func (c *CLI) newClient(ctx context.Context, noCache bool) (*ucsc.Client, error) {
	backend, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return ucsc.NewClient(ucsc.Config{
		BaseURL: c.cfg.BaseURL,
		Cache:   backend,
		TTL:     c.cfg.TTL(),
	}), nil
}

// store returns the genome store rooted at the configured directory.
func (c *CLI) store() *genome.Store {
	dir := c.cfg.GenomesDir
	if dir == "" {
		dir = defaultGenomesDir()
	}
	return genome.NewStore(dir)
}

// openGenome loads an assembly with the config's filters applied and
// download progress logged.
func (c *CLI) openGenome(ctx context.Context, assembly string, chromosomes []string, refresh bool) (*genome.Genome, error) {
	client, err := c.newClient(ctx, false)
	if err != nil {
		return nil, err
	}
	logger := loggerFromContext(ctx)
	return genome.Open(ctx, client, c.store(), assembly, genome.Options{
		Chromosomes: chromosomes,
		Filters:     c.cfg.Filters,
		Refresh:     refresh,
		Logger:      func(msg string, args ...any) { logger.Infof(msg, args...) },
	})
}

// cacheDir returns the cache directory using XDG standard (~/.cache/genomekit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// defaultGenomesDir returns the default genome store directory using XDG
// standard (~/.local/share/genomekit/genomes/).
func defaultGenomesDir() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, "genomes")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "genomes")
	}
	return filepath.Join(home, ".local", "share", appName, "genomes")
}
