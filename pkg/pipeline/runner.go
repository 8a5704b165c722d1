package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cronut/pkg/cache"
	"github.com/matzehuels/cronut/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the draw → render pipeline. When every requested artifact
// is cached, drawing is skipped. Cache failures are logged and otherwise
// ignored.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RequestHash: opts.Hash(),
		Artifacts:   make(map[string][]byte),
	}

	if artifacts, ok := r.cached(ctx, result.RequestHash, opts); ok {
		result.Artifacts = artifacts
		result.CacheInfo.RenderHit = true
		r.Logger.Debug("artifacts from cache", "formats", opts.Formats, "hash", result.RequestHash[:12])
		return result, nil
	}

	// Stage 1: Draw
	drawStart := time.Now()
	doc, err := Draw(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("draw: %w", err)
	}
	result.Document = doc
	result.Stats.DrawTime = time.Since(drawStart)
	result.Stats.Slices = len(opts.Values) + len(opts.Inner)

	r.Logger.Info("drew chart",
		"kind", opts.Kind,
		"slices", result.Stats.Slices,
		"duration", result.Stats.DrawTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := Render(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	r.store(ctx, result.RequestHash, opts, artifacts)
	return result, nil
}

// cached returns every requested artifact if all of them are in the cache.
func (r *Runner) cached(ctx context.Context, hash string, opts Options) (map[string][]byte, bool) {
	hooks := observability.Cache()
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "error", err)
		}
		if err != nil || !hit {
			hooks.OnCacheMiss(ctx, format)
			return nil, false
		}
		hooks.OnCacheHit(ctx, format)
		artifacts[format] = data
	}
	return artifacts, len(artifacts) > 0
}

func (r *Runner) store(ctx context.Context, hash string, opts Options, artifacts map[string][]byte) {
	hooks := observability.Cache()
	for format, data := range artifacts {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		hooks.OnCacheSet(ctx, format, len(data))
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
