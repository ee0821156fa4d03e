package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/Alchemy_Go/internal/bootstrap"
	"github.com/osse101/Alchemy_Go/internal/brewing"
	"github.com/osse101/Alchemy_Go/internal/catalog"
	"github.com/osse101/Alchemy_Go/internal/config"
	"github.com/osse101/Alchemy_Go/internal/database"
	"github.com/osse101/Alchemy_Go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)

	// Load has already merged .env into the environment
	warnings, err := config.CheckEnv()
	if err != nil {
		slog.Error("Invalid environment", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting alchemy service",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"catalog_source", cfg.CatalogSource,
		"port", cfg.Port)

	source, pool, err := bootstrap.OpenCatalogSource(ctx, cfg)
	if err != nil {
		return err
	}

	store, err := bootstrap.LoadCatalogStore(ctx, source)
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		return err
	}

	brewingService := brewing.NewService(store, brewing.Config{
		MaxIngredients: cfg.BrewMaxIngredients,
		MaxCandidates:  cfg.BrewMaxCandidates,
		CacheSize:      cfg.BrewCacheSize,
		CacheTTL:       cfg.BrewCacheTTL,
		Timeout:        cfg.BrewTimeout,
	})

	// A nil *pgxpool.Pool must not reach the server as a non-nil interface
	var dbPool database.Pool
	if pool != nil {
		dbPool = pool
	}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}, store, brewingService, dbPool)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("HTTP server listening", "port", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.CatalogWatch && cfg.CatalogSource == config.CatalogSourceFile {
		watcher := catalog.NewWatcher(cfg.CatalogPath, store, 0)
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server: srv,
			DBPool: pool,
		})
		return nil
	})

	return g.Wait()
}
