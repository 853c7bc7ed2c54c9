// Package cache provides pluggable byte caches for HTTP response caching.
//
// Three backends are available:
//   - [FileCache]: file-per-entry cache for single-machine CLI usage
//   - [RedisCache]: Redis-backed cache for shared or long-running setups
//   - [NullCache]: no-op cache for tests and --no-cache runs
//
// Backends store opaque byte payloads; callers marshal their own values.
// All backends are safe for concurrent use.
package cache

import (
	"context"
	"time"
)

// Cache stores byte payloads under string keys with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and fresh; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
