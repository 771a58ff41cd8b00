// Package cache stores rendered charts between runs.
//
// The site generator renders the same tunings on every build; caching the
// captured output keyed by tuning, chart options and program version makes
// rebuilds cheap. Two implementations are provided: [FileCache] for the
// CLI (one JSON file per entry under ~/.cache/fretboard) and [NullCache]
// when caching is disabled.
//
// Keys are produced by a [Keyer] so that every caller hashes the same
// inputs the same way.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// DefaultTTL is how long rendered output stays valid. Output only changes
// with the program version, which is part of every key, so this mostly
// bounds disk usage.
const DefaultTTL = 30 * 24 * time.Hour

// NullCache never stores anything. It stands in when --no-cache is given
// or the cache directory cannot be created.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
