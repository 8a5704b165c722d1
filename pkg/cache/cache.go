// Package cache stores rendered chart artifacts by content key.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: shared storage for the HTTP server
//   - [NullCache]: never stores anything (--no-cache)
//
// # Keys
//
// A [Keyer] derives keys from a hash of the chart request plus the output
// options that change the artifact bytes. [ScopedKeyer] prefixes every key,
// which the CLI and server use to separate entries written by different
// versions.
//
//	k := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1:")
//	key := k.ArtifactKey(cache.Hash(req), cache.ArtifactKeyOpts{Format: "svg"})
//	data, ok, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts are kept.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with optional expiration. A miss is reported as
// (nil, false, nil); errors are reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NullCache stores nothing. It backs --no-cache and tests.
type NullCache struct{}

// NewNullCache returns a [NullCache].
func NewNullCache() Cache { return NullCache{} }

// Get always misses.
func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}
