package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/JonMunkholm/AdsExport/internal/cache"
	"github.com/JonMunkholm/AdsExport/internal/config"
	"github.com/JonMunkholm/AdsExport/internal/core"
	"github.com/JonMunkholm/AdsExport/internal/history"
	"github.com/JonMunkholm/AdsExport/internal/logging"
	"github.com/JonMunkholm/AdsExport/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	envErr := godotenv.Overload()

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logger, err := logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Info("no .env file found, using environment variables")
	} else {
		logger.Info("loaded .env file (overwriting existing env vars)")
	}

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Server.Port),
		zap.Bool("history_enabled", cfg.Database.Enabled()),
		zap.Bool("strict", cfg.Export.Strict),
		zap.Int("export_max_concurrent", cfg.Export.MaxConcurrent),
		zap.Bool("rate_limit_enabled", cfg.Rate.Enabled),
	)

	ctx := context.Background()

	store, closeStore, err := openHistory(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to open export history", zap.Error(err))
	}
	defer closeStore()

	exportCache, closeCache, err := openCache(ctx, cfg.Cache, logger)
	if err != nil {
		logger.Fatal("failed to open export cache", zap.Error(err))
	}
	defer closeCache()

	service := core.NewService(core.Options{
		Cache:    exportCache,
		CacheTTL: cfg.Cache.TTL,
		History:  store,
		Limiter:  core.NewExportLimiter(cfg.Export.MaxConcurrent, cfg.Export.MaxWaitTime),
		Logger:   logger,
		Strict:   cfg.Export.Strict,
	})

	server := web.NewServer(service, cfg, logger)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if status := service.LimiterStatus(); status.Active > 0 {
			logger.Info("waiting for exports to complete", zap.Int("active", status.Active))
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	}()

	if err := server.Start(cfg.Server.Addr()); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}

// openHistory connects the export history store, or returns a no-op store
// when no database is configured.
func openHistory(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (history.Store, func(), error) {
	if !cfg.Enabled() {
		logger.Info("export history disabled: no DATABASE_URL")
		return history.NopStore{}, func() {}, nil
	}

	// Parse and configure connection pool
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse database url: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	// Log which database we connected to
	if u, err := url.Parse(cfg.URL); err == nil {
		logger.Info("connected to database", zap.String("name", strings.TrimPrefix(u.Path, "/")))
	}

	store := history.NewPostgresStore(pool)
	if err := store.Migrate(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("migrate export history: %w", err)
	}
	return store, pool.Close, nil
}

// openCache picks Redis when configured, otherwise an in-process cache.
// A nil Service disables caching.
func openCache(ctx context.Context, cfg config.CacheConfig, logger *zap.Logger) (cache.Service, func(), error) {
	if cfg.Disabled {
		logger.Info("export cache disabled")
		return nil, func() {}, nil
	}
	if cfg.RedisURL == "" {
		logger.Info("using in-process export cache", zap.Int("max_entries", cfg.MaxEntries))
		return cache.NewMemoryCacheWithLimit(cfg.MaxEntries), func() {}, nil
	}

	rc, err := cache.NewRedisCache(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("using redis export cache")
	return rc, func() { _ = rc.Close() }, nil
}
