// Package cache provides byte-level caches for parsed pattern descriptors.
//
// Parsing is cheap, but the CLI and the HTTP API often see the same file many
// times. Results are stored as JSON (see [github.com/matzehuels/lifeparse/pkg/io])
// under keys derived from the input bytes and parse options by a [Keyer].
//
// # Backends
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: one JSON file per entry, for CLI use
//   - [RedisCache]: shared cache for the HTTP server
//
// Cache errors are never fatal to callers; a failing backend behaves like a
// permanent miss.
package cache

import (
	"context"
	"time"
)

// TTLPattern is the default lifetime of a cached descriptor.
const TTLPattern = 7 * 24 * time.Hour

// Cache stores opaque values by key.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// PatternKeyOpts holds the parse options that change a cached result.
type PatternKeyOpts struct {
	Normalize bool `json:"normalize"`
}

// Keyer derives cache keys.
type Keyer interface {
	// PatternKey returns the key for a descriptor parsed from input bytes
	// whose SHA-256 is inputHash, using the named format.
	PatternKey(format, inputHash string, opts PatternKeyOpts) string
}

// DefaultKeyer produces "pattern:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PatternKey implements Keyer.
func (DefaultKeyer) PatternKey(format, inputHash string, opts PatternKeyOpts) string {
	return hashKey("pattern", format, inputHash, opts)
}
