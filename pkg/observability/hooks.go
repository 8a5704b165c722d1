// Package observability provides hooks for metrics and tracing.
//
// Chart drawing, artifact rendering, the cache and the HTTP API emit events
// through registered hooks instead of depending on a metrics backend. The
// server registers Prometheus-backed hooks at startup; everything else sees
// the no-op defaults.
//
// # Usage
//
// Register hooks at application startup; nil fields keep their current
// value:
//
//	restore := observability.Install(observability.Hooks{
//	    Pipeline: metrics,
//	    Cache:    metrics,
//	    HTTP:     metrics,
//	})
//	defer restore()
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnDrawStart(ctx, "double", 6)
//	// ... draw ...
//	observability.Pipeline().OnDrawComplete(ctx, "double", duration, err)
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PipelineHooks receives events from the chart pipeline.
type PipelineHooks interface {
	// OnDrawStart fires before a chart is built; values counts the data
	// points across all rings.
	OnDrawStart(ctx context.Context, kind string, values int)
	OnDrawComplete(ctx context.Context, kind string, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives artifact cache events, labelled by output format.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, format string)
	OnCacheMiss(ctx context.Context, format string)
	// OnCacheSet reports a stored artifact of size bytes.
	OnCacheSet(ctx context.Context, format string, size int)
}

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, route string)

	// OnResponse records a completed response.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnDrawStart(context.Context, string, int)                         {}
func (NoopPipelineHooks) OnDrawComplete(context.Context, string, time.Duration, error)     {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                       {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// Hooks is the set of process-wide event receivers.
type Hooks struct {
	Pipeline PipelineHooks
	Cache    CacheHooks
	HTTP     HTTPHooks
}

func noopHooks() *Hooks {
	return &Hooks{
		Pipeline: NoopPipelineHooks{},
		Cache:    NoopCacheHooks{},
		HTTP:     NoopHTTPHooks{},
	}
}

var current atomic.Pointer[Hooks]

func init() { current.Store(noopHooks()) }

// Install replaces the registered hooks with the non-nil fields of h and
// returns a function restoring the previous set.
func Install(h Hooks) (restore func()) {
	prev := current.Load()
	next := *prev
	if h.Pipeline != nil {
		next.Pipeline = h.Pipeline
	}
	if h.Cache != nil {
		next.Cache = h.Cache
	}
	if h.HTTP != nil {
		next.HTTP = h.HTTP
	}
	current.Store(&next)
	return func() { current.Store(prev) }
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return current.Load().Pipeline }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return current.Load().Cache }

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks { return current.Load().HTTP }

// Reset restores the no-op hooks.
func Reset() { current.Store(noopHooks()) }
