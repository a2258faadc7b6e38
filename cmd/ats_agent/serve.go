package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/cache"
	"github.com/jonathan/resume-ats/internal/db"
	"github.com/jonathan/resume-ats/internal/observability"
	"github.com/jonathan/resume-ats/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  `Start an HTTP server that exposes the scoring, grammar and job-match endpoints.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, a)
		},
	}
	cmd.Flags().Int("port", 8080, "Port to listen on")
	_ = a.v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	return cmd
}

func runServe(ctx context.Context, a *app) error {
	cfg := a.cfg
	opts := server.Options{
		Config:     cfg,
		Calculator: a.calc,
		Logger:     a.logger,
	}

	if cfg.Metrics.Enabled {
		opts.Metrics = observability.NewMetrics()
	}

	if cfg.Redis.URL != "" {
		store, err := cache.NewRedisStore(ctx, cfg.Redis.URL)
		if err != nil {
			a.logger.Warn("result cache disabled", zap.Error(err))
		} else {
			defer func() { _ = store.Close() }()
			opts.Cache = cache.NewResults(store, cfg.Redis.TTL, a.logger, opts.Metrics)
		}
	}

	if cfg.Database.URL != "" {
		database, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to prepare database schema: %w", err)
		}
		opts.Store = database
	}

	srv, err := server.New(opts)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Run(ctx)
}
