// Package server implements the cronut HTTP API.
//
// # Routes
//
//	GET  /health      liveness probe, body "ok"
//	POST /v1/charts   render a chart request (?format=svg|json|png|pdf)
//	GET  /metrics     Prometheus metrics
//
// Chart requests use the JSON request format of the io package. Invalid
// requests are answered with 400 and a {"code", "error"} body. Every
// response carries an X-Request-ID header.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/cronut/pkg/pipeline"
)

const (
	// maxBodyBytes bounds chart request bodies.
	maxBodyBytes = 1 << 20

	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Config configures a [Server].
type Config struct {
	// Runner executes chart requests. Required.
	Runner *pipeline.Runner

	// Logger receives request logs. Defaults to log.Default().
	Logger *log.Logger

	// Registry collects the server's metrics. A fresh registry is created
	// when nil.
	Registry *prometheus.Registry
}

// Server serves the chart API.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	registry *prometheus.Registry
	metrics  *Metrics
	handler  http.Handler
}

// New creates a server and registers its metrics. Call [Server.Install] to
// route pipeline and cache events to those metrics.
func New(cfg Config) (*Server, error) {
	if cfg.Runner == nil {
		return nil, errors.New("server: runner is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}

	metrics, err := NewMetrics(cfg.Registry)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	s := &Server{
		runner:   cfg.Runner,
		logger:   cfg.Logger,
		registry: cfg.Registry,
		metrics:  metrics,
	}
	s.handler = s.routes()
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Metrics returns the server's metric collectors.
func (s *Server) Metrics() *Metrics { return s.metrics }

// Install registers the server's metrics as the process-wide
// observability hooks and returns a function restoring the previous ones.
func (s *Server) Install() (restore func()) { return s.metrics.Install() }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server started", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return ctx.Err()
}
