package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/strindex/internal/config"
	logpkg "github.com/kailas-cloud/strindex/internal/logger"
	"github.com/kailas-cloud/strindex/internal/metrics"
	entryrepo "github.com/kailas-cloud/strindex/internal/repository/entry"
	chiTransport "github.com/kailas-cloud/strindex/internal/transport/chi"
	entryuc "github.com/kailas-cloud/strindex/internal/usecase/entry"
	healthuc "github.com/kailas-cloud/strindex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/strindex/internal/usecase/search"
	"github.com/kailas-cloud/strindex/internal/version"
)

func runServe(cmd *cobra.Command, _ []string) error {
	env := config.GetEnv()

	cfg, err := loadConfig(env)
	if err != nil {
		return err
	}
	if portFlag > 0 {
		cfg.HTTP.Port = portFlag
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting strindex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("strict_lookup", cfg.Store.StrictLookup),
		zap.Int("max_value_bytes", cfg.Store.MaxValueBytes),
	)

	metrics.RegisterStoreMetrics()

	store := entryrepo.New()
	repo := entryuc.NewInstrumentedRepository(store, metrics.StoreOperationsTotal, metrics.StoreEntries)

	entrySvc := entryuc.New(repo).
		WithMaxValueSize(cfg.Store.MaxValueBytes).
		WithStrictLookup(cfg.Store.StrictLookup)
	searchSvc := searchuc.New(entrySvc).WithOutcomeCounter(metrics.QueryInterpretationsTotal)
	healthSvc := healthuc.New(store, store)

	server := chiTransport.NewServer(entrySvc, searchSvc, healthSvc, logger).
		WithMaxBodyBytes(cfg.HTTP.MaxBodyBytes)

	r := chi.NewRouter()
	r.Use(chiTransport.Recoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.RequestLogger(logger))
	r.Use(chiTransport.RateLimit(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return err //nolint:wrapcheck // already wrapped inside the group
	}

	logger.Info("Server stopped gracefully")
	return nil
}

func loadConfig(env string) (config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.Load(env)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
