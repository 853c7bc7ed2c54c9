// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about cache operations and chromosome
// downloads.
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    observability.SetDownloadHooks(&myDownloadHooks{})
//	    // ... run application
//	}
//
// Registration is not synchronized; call the setters before any library
// code runs.
package observability

import (
	"context"
	"time"
)

// CacheHooks receives events about response cache operations.
type CacheHooks interface {
	// OnHit is called when a cache lookup finds a live entry.
	OnHit(ctx context.Context, key string)
	// OnMiss is called when a cache lookup finds nothing (or an expired
	// entry).
	OnMiss(ctx context.Context, key string)
	// OnSet is called after an entry is stored. size is the payload in
	// bytes.
	OnSet(ctx context.Context, key string, size int)
}

// DownloadHooks receives events about chromosome sequence downloads.
type DownloadHooks interface {
	// OnChromosomeStart is called before a chromosome download begins.
	OnChromosomeStart(ctx context.Context, assembly, chrom string)
	// OnChromosomeComplete is called when a download finishes. size is the
	// sequence length in bases; err is nil on success.
	OnChromosomeComplete(ctx context.Context, assembly, chrom string, size int, elapsed time.Duration, err error)
}

// NoopCacheHooks is a CacheHooks implementation that does nothing.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnHit(context.Context, string)      {}
func (NoopCacheHooks) OnMiss(context.Context, string)     {}
func (NoopCacheHooks) OnSet(context.Context, string, int) {}

// NoopDownloadHooks is a DownloadHooks implementation that does nothing.
type NoopDownloadHooks struct{}

func (NoopDownloadHooks) OnChromosomeStart(context.Context, string, string) {}
func (NoopDownloadHooks) OnChromosomeComplete(context.Context, string, string, int, time.Duration, error) {
}

var (
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	downloadHooks DownloadHooks = NoopDownloadHooks{}
)

// SetCacheHooks registers the cache event receiver. Passing nil restores
// the no-op implementation.
func SetCacheHooks(h CacheHooks) {
	if h == nil {
		h = NoopCacheHooks{}
	}
	cacheHooks = h
}

// SetDownloadHooks registers the download event receiver. Passing nil
// restores the no-op implementation.
func SetDownloadHooks(h DownloadHooks) {
	if h == nil {
		h = NoopDownloadHooks{}
	}
	downloadHooks = h
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return cacheHooks }

// Download returns the registered download hooks.
func Download() DownloadHooks { return downloadHooks }
