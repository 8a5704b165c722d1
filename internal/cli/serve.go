package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cronut/internal/server"
	"github.com/matzehuels/cronut/pkg/buildinfo"
	"github.com/matzehuels/cronut/pkg/cache"
	"github.com/matzehuels/cronut/pkg/pipeline"
)

const (
	defaultAddr = ":8080"

	envRedisAddr     = "CRONUT_REDIS_ADDR"
	envRedisPassword = "CRONUT_REDIS_PASSWORD"
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr          string
	redisAddr     string
	redisPassword string
	redisDB       int
	noCache       bool
}

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		redisAddr:     os.Getenv(envRedisAddr),
		redisPassword: os.Getenv(envRedisPassword),
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart HTTP API",
		Long: `Serve the chart HTTP API.

Endpoints:
  GET  /health
  POST /v1/charts?format=svg|json|png|pdf
  GET  /metrics

Artifacts are cached in Redis when --redis-addr (or ` + envRedisAddr + `) is
set, and in the local cache directory otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", opts.redisAddr, "Redis address for the shared artifact cache (env "+envRedisAddr+")")
	cmd.Flags().StringVar(&opts.redisPassword, "redis-password", opts.redisPassword, "Redis password (env "+envRedisPassword+")")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "Redis database number")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	ch, err := c.serverCache(ctx, opts)
	if err != nil {
		return err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope(appName))
	runner := pipeline.NewRunner(ch, keyer, logger)
	defer runner.Close()

	srv, err := server.New(server.Config{Runner: runner, Logger: logger})
	if err != nil {
		return err
	}
	defer srv.Install()()

	return srv.ListenAndServe(ctx, opts.addr)
}

func (c *CLI) serverCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	logger := loggerFromContext(ctx)
	switch {
	case opts.noCache:
		logger.Info("caching disabled")
		return cache.NewNullCache(), nil
	case opts.redisAddr != "":
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     opts.redisAddr,
			Password: opts.redisPassword,
			DB:       opts.redisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		logger.Info("using redis cache", "addr", opts.redisAddr)
		return rc, nil
	default:
		ch, err := newCache(false)
		if err != nil {
			return nil, err
		}
		logger.Info("using file cache")
		return ch, nil
	}
}
