package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"adzone/internal/adapter/geoip"
	httpadapter "adzone/internal/adapter/http"
	"adzone/internal/adapter/memory"
	"adzone/internal/adapter/postgres"
	redisadapter "adzone/internal/adapter/redis"
	"adzone/internal/adapter/render"
	"adzone/internal/adapter/usecase"
	"adzone/internal/config"
	"adzone/internal/core/port"
	"adzone/internal/db"
	"adzone/internal/metrics"
)

// storage bundles the persistence ports of the selected backend.
type storage struct {
	ads    port.AdRepository
	views  port.ViewLedger
	geo    port.GeoCacheRepository
	health httpadapter.Pinger
	close  func()
}

// main is the entry point of the adzone delivery service. It loads
// configuration, opens the selected storage backend, wires the delivery use
// case and starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.NewLogger(os.Stdout, cfg.Env)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage error", slog.Any("error", err))
		return
	}
	defer store.close()

	m := metrics.New()

	geoOpts := []usecase.GeoCacheOption{usecase.WithGeoTTL(cfg.Geo.CacheTTL)}
	if cfg.Redis.Enabled() {
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			// the table cache still works without the hot layer
			logger.Warn("redis unavailable, geo hot cache disabled", slog.Any("error", err))
		} else {
			defer client.Close()
			geoOpts = append(geoOpts, usecase.WithHotCache(redisadapter.NewGeoCache(client)))
		}
	}

	geo := usecase.NewGeoCache(store.geo, geoip.NewClient(cfg.Geo, m, logger), m, logger, geoOpts...)
	svc := usecase.NewDelivery(
		usecase.NewContextResolver(geo),
		usecase.NewSelector(store.ads, time.Now, logger),
		usecase.NewLedger(store.views, cfg.Delivery.DuplicateWindow, time.Now, m, logger),
		render.NewLiquidRenderer(),
		store.ads,
		m,
		logger,
	)

	handler := httpadapter.NewHandler(svc, m, logger, httpadapter.Options{
		TrustProxy:     cfg.HTTP.TrustProxy,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		Health:         store.health,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("storage", cfg.Delivery.Storage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openStorage connects the backend named by DELIVERY_STORAGE. The memory
// backend is seeded with demo data; PostgreSQL runs migrations and the seed
// only when configured.
func openStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (*storage, error) {
	if cfg.Delivery.Storage == "memory" {
		store := memory.NewStore()
		zones, ads := db.DemoData(time.Now().UTC())
		for _, z := range zones {
			store.PutZone(z)
		}
		for _, ad := range ads {
			store.PutAd(ad)
		}
		logger.Info("using in-memory storage with demo data", slog.Int("ads", len(ads)))
		return &storage{ads: store, views: store, geo: store, close: func() {}}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}

	repo := postgres.NewAdRepository(pool, logger)
	return &storage{
		ads:    repo,
		views:  repo,
		geo:    postgres.NewGeoCacheRepository(pool),
		health: pool,
		close:  pool.Close,
	}, nil
}
