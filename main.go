package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"airsentry/internal/api"
	"airsentry/internal/cache"
	"airsentry/internal/config"
	"airsentry/internal/db"
	"airsentry/internal/processors/ingester"
	"airsentry/internal/telemetry"

	"github.com/joho/godotenv"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	if err := godotenv.Load(); err != nil {
		slog.InfoContext(ctx, "No .env file loaded", "error", err)
	}
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	slog.InfoContext(ctx, "Starting service...", "addr", cfg.HTTPAddr, "timezone", cfg.Timezone)

	store, err := db.Init(ctx, db.Config{
		ConnString:     cfg.DBURI,
		MigrationsPath: cfg.MigrationsPath,
	})
	if err != nil {
		panic(err)
	}
	defer store.Close()

	var latestCache telemetry.LatestCache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisClient(ctx, cache.Config{Addr: cfg.RedisAddr})
		if err != nil {
			slog.WarnContext(ctx, "Redis unavailable, latest-reading cache disabled", "error", err)
		} else {
			defer redisCache.Close()
			latestCache = redisCache
		}
	}

	core := telemetry.New(telemetry.Config{
		Store:    store,
		Cache:    latestCache,
		Location: cfg.Location(),
	})

	wg := sync.WaitGroup{}
	if cfg.KafkaBrokers != "" {
		wIngester := ingester.New(ingester.Config{
			Brokers:         cfg.KafkaBrokers,
			ConsumerGroupID: cfg.KafkaGroupID,
			ConsumerTopic:   cfg.KafkaTopic,
			Pipeline:        core,
		})
		wg.Go(func() {
			wIngester.Run(ctx)
			wIngester.Close(ctx)
		})
	}

	handler := api.New(api.Config{
		Core: core,
		DB:   store,
		Loc:  cfg.Location(),
	})
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	go func() {
		<-sigs
		cancel()
	}()
	go func() {
		<-ctx.Done()
		slog.Info("Shutting down HTTP server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP server shutdown failed", "error", err)
		}
	}()

	slog.InfoContext(ctx, "HTTP server listening...", "addr", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.ErrorContext(ctx, "HTTP server error", "error", err)
		cancel()
	}

	wg.Wait()
}
