// Package main is the entry point for the aircraft lookup service.
//
//	@title						Aircraft Lookup API
//	@version					1.1.0
//	@description				A lookup service that resolves flight numbers to normalized aircraft details by proxying FlightAware AeroAPI and AeroDataBox, with a TTL cache in front.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-lookup/aircraft-lookup-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
//	@BasePath					/api
//
//	@schemes					http https
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

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-lookup/aircraft-lookup-service/docs"

	// Application layers
	lookuphttp "github.com/flight-lookup/aircraft-lookup-service/internal/adapter/http"
	"github.com/flight-lookup/aircraft-lookup-service/internal/adapter/http/middleware"
	"github.com/flight-lookup/aircraft-lookup-service/internal/adapter/provider/aerodatabox"
	"github.com/flight-lookup/aircraft-lookup-service/internal/adapter/provider/flightaware"
	"github.com/flight-lookup/aircraft-lookup-service/internal/cache"
	"github.com/flight-lookup/aircraft-lookup-service/internal/config"
	"github.com/flight-lookup/aircraft-lookup-service/internal/domain"
	"github.com/flight-lookup/aircraft-lookup-service/internal/infrastructure/logger"
	"github.com/flight-lookup/aircraft-lookup-service/internal/infrastructure/timeutil"
	"github.com/flight-lookup/aircraft-lookup-service/internal/usecase"
)

const (
	shutdownTimeout  = 10 * time.Second
	redisPingTimeout = 5 * time.Second
)

func main() {
	cfg := config.MustLoad()

	appLog := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "aircraft-lookup",
	})
	logger.SetGlobal(appLog)

	appLog.Info().
		Str("env", cfg.App.Env).
		Str("version", cfg.App.Version).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	clock := timeutil.NewRealClock()
	store := buildStore(cfg, clock, appLog)
	registry := buildRegistry(cfg, clock, appLog)

	lookupUC := usecase.NewAircraftLookupUseCase(registry, store, clock, appLog, &usecase.Config{
		ShortTTL:       cfg.Cache.ShortTTL,
		LongTTL:        cfg.Cache.LongTTL,
		NearWindowDays: cfg.Cache.NearWindowDays,
	})

	handler := lookuphttp.NewAircraftHandler(lookupUC, registry, store, clock, cfg.App.Version, cfg.App.Env)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, appLog.Logger)
	lookuphttp.RegisterRoutes(e, handler)

	// Operational endpoints outside the /api group
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, appLog)
}

// buildStore selects the cache backend. A configured REDIS_ADDR must be
// reachable at boot; a silent fallback would hide a misconfigured deployment.
func buildStore(cfg *config.Config, clock timeutil.Clock, log *logger.Logger) cache.Store {
	if cfg.Cache.RedisAddr == "" {
		log.Info().Msg("Using in-memory cache")
		return cache.NewMemory(clock)
	}

	store := cache.NewRedis(cfg.Cache.RedisAddr)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Cache.RedisAddr).Msg("Redis unreachable")
	}

	log.Info().Str("addr", cfg.Cache.RedisAddr).Msg("Using Redis cache")
	return store
}

// buildRegistry registers both vendor adapters. Unconfigured providers are
// still registered so their routes answer with a configuration error.
func buildRegistry(cfg *config.Config, clock timeutil.Clock, log *logger.Logger) *domain.ProviderRegistry {
	registry := domain.NewProviderRegistry()

	registry.Register(flightaware.NewAdapter(flightaware.Config{
		APIKey:  cfg.Providers.FlightAwareAPIKey,
		Timeout: cfg.Providers.UpstreamTimeout,
	}, clock, log))

	registry.Register(aerodatabox.NewAdapter(aerodatabox.Config{
		APIKey:  cfg.Providers.RapidAPIKey,
		Timeout: cfg.Providers.UpstreamTimeout,
	}, clock, log))

	for _, p := range registry.GetAll() {
		log.Info().
			Str("provider", p.Name()).
			Bool("configured", p.Configured()).
			Msg("Provider registered")
	}

	return registry
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
