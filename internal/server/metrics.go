package server

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/cronut/pkg/observability"
)

const namespace = "cronut"

// Metrics exports pipeline, cache and HTTP events as Prometheus metrics.
// It implements the observability hook interfaces.
type Metrics struct {
	draws          *prometheus.CounterVec
	drawDuration   *prometheus.HistogramVec
	drawValues     prometheus.Histogram
	renders        *prometheus.CounterVec
	renderDuration prometheus.Histogram
	cacheEvents    *prometheus.CounterVec
	cacheBytes     *prometheus.CounterVec
	requests       *prometheus.CounterVec
	responses      *prometheus.CounterVec
	reqDuration    *prometheus.HistogramVec
}

var (
	_ observability.PipelineHooks = (*Metrics)(nil)
	_ observability.CacheHooks    = (*Metrics)(nil)
	_ observability.HTTPHooks     = (*Metrics)(nil)
)

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draws_total",
			Help:      "Charts drawn, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		drawDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "draw_duration_seconds",
			Help:      "Time spent building chart documents.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"kind"}),
		drawValues: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "draw_values",
			Help:      "Number of values per drawn chart.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Artifact renders, by format set and outcome.",
		}, []string{"formats", "outcome"}),
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering artifacts.",
			Buckets:   prometheus.DefBuckets,
		}),
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_events_total",
			Help:      "Artifact cache hits, misses and writes, by format.",
		}, []string{"format", "event"}),
		cacheBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the artifact cache, by format.",
		}, []string{"format"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method and route.",
		}, []string{"method", "route"}),
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_responses_total",
			Help:      "HTTP responses, by method, route and status.",
		}, []string{"method", "route", "status"}),
		reqDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	for _, c := range []prometheus.Collector{
		m.draws, m.drawDuration, m.drawValues,
		m.renders, m.renderDuration,
		m.cacheEvents, m.cacheBytes,
		m.requests, m.responses, m.reqDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Install registers m as the process-wide pipeline, cache and HTTP hooks
// and returns a function restoring the previous ones.
func (m *Metrics) Install() (restore func()) {
	return observability.Install(observability.Hooks{Pipeline: m, Cache: m, HTTP: m})
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *Metrics) OnDrawStart(_ context.Context, _ string, values int) {
	m.drawValues.Observe(float64(values))
}

func (m *Metrics) OnDrawComplete(_ context.Context, kind string, d time.Duration, err error) {
	m.draws.WithLabelValues(kind, outcome(err)).Inc()
	m.drawDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (m *Metrics) OnRenderStart(context.Context, []string) {}

func (m *Metrics) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	m.renders.WithLabelValues(strings.Join(formats, ","), outcome(err)).Inc()
	m.renderDuration.Observe(d.Seconds())
}

func (m *Metrics) OnCacheHit(_ context.Context, format string) {
	m.cacheEvents.WithLabelValues(format, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, format string) {
	m.cacheEvents.WithLabelValues(format, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, format string, size int) {
	m.cacheEvents.WithLabelValues(format, "set").Inc()
	m.cacheBytes.WithLabelValues(format).Add(float64(size))
}

func (m *Metrics) OnRequest(_ context.Context, method, route string) {
	m.requests.WithLabelValues(method, route).Inc()
}

func (m *Metrics) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	m.responses.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.reqDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
