package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/boxbounty/tracking-service/internal/api"
	"github.com/boxbounty/tracking-service/internal/core/service"
	redisdb "github.com/boxbounty/tracking-service/internal/infrastructure/db/redis"
	"github.com/boxbounty/tracking-service/internal/infrastructure/provider/seventeentrack"
	"github.com/boxbounty/tracking-service/internal/pkg/config"
	"github.com/boxbounty/tracking-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        BoxBounty Tracking API
// @version      1.0
// @description  Registers shipment tracking numbers with the tracking provider and returns a display-ready timeline.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; fall back to a bare one.
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "tracking-service",
	})

	if cfg.Provider.KeyConfigured() {
		log.Info().Str("api_key", cfg.Provider.MaskedKey()).Msg("tracking provider key found")
	} else {
		log.Warn().Msg("no tracking provider key set; lookups will fail until TRACKING_API_KEY is configured")
	}

	var rdb *redis.Client
	if cfg.Redis.RateLimitEnabled() {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
		} else {
			defer rdb.Close()
			log.Info().Str("addr", cfg.Redis.Addr).Int("per_minute", cfg.Redis.RateLimitPerMinute).Msg("rate limiting enabled")
		}
	}

	client := seventeentrack.New(seventeentrack.Config{
		BaseURL: cfg.Provider.BaseURL,
		APIKey:  cfg.Provider.Key(),
		Timeout: cfg.Provider.Timeout,
	}, log)

	trackingService := service.NewTrackingService(client, service.TrackingOptions{
		APIKeyConfigured: cfg.Provider.KeyConfigured(),
		SettleDelay:      cfg.Lookup.SettleDelay,
		RetryDelay:       cfg.Lookup.RetryDelay,
		LookupAttempts:   cfg.Lookup.Attempts,
	}, log)

	e := api.NewRouter(api.Dependencies{
		TrackingService:    trackingService,
		APIKeyConfigured:   cfg.Provider.KeyConfigured(),
		Redis:              rdb,
		RateLimitPerMinute: cfg.Redis.RateLimitPerMinute,
		Logger:             log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
