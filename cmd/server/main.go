// Package main is the entry point for the flight tracker service.
//
//	@title						Flight Tracker API
//	@version					1.0.0
//	@description				Tracks flights fetched from the AeroDataBox flight API, with boarding passes, seats and scheduled refresh.
//
//	@contact.name				API Support
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
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
	"github.com/prometheus/client_golang/prometheus"

	// Import generated docs for swagger
	_ "github.com/skytrack/flight-tracker/docs"

	"github.com/skytrack/flight-tracker/internal/adapter/events"
	flighthttp "github.com/skytrack/flight-tracker/internal/adapter/http"
	"github.com/skytrack/flight-tracker/internal/adapter/http/middleware"
	"github.com/skytrack/flight-tracker/internal/adapter/provider/aerodatabox"
	"github.com/skytrack/flight-tracker/internal/adapter/storage/memory"
	"github.com/skytrack/flight-tracker/internal/adapter/storage/mongo"
	"github.com/skytrack/flight-tracker/internal/adapter/storage/postgres"
	"github.com/skytrack/flight-tracker/internal/config"
	"github.com/skytrack/flight-tracker/internal/domain"
	"github.com/skytrack/flight-tracker/internal/infrastructure/logger"
	"github.com/skytrack/flight-tracker/internal/infrastructure/metrics"
	"github.com/skytrack/flight-tracker/internal/infrastructure/timeutil"
	"github.com/skytrack/flight-tracker/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-tracker",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Str("api_mode", cfg.FlightAPI.Mode.String()).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(metrics.DefaultNamespace, prometheus.DefaultRegisterer)
	clock := timeutil.NewRealClock()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to open flight store")
	}
	defer closeStore()

	pub := openPublisher(cfg, log)
	defer func() {
		if err := pub.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to flush events")
		}
	}()

	source := aerodatabox.NewClient(
		aerodatabox.NewHTTPClient(cfg.FlightAPI.RequestTimeout),
		aerodatabox.NewNormalizer(log.Logger, clock),
		log.Logger,
	)
	fetcher := usecase.NewFlightFetcher(source, store, m, log.Logger)
	tracker := usecase.NewFlightTracker(fetcher, store, pub, clock, m, usecase.TrackerConfig{
		Settings:           cfg.APISettings(),
		RefreshConcurrency: cfg.Refresh.Concurrency,
		RefreshTimeout:     cfg.Refresh.PerFlightTimeout,
	}, log.Logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger, m)
	flighthttp.RegisterRoutes(e, flighthttp.NewFlightHandler(tracker, cfg.Storage.Driver))
	flighthttp.RegisterOpsRoutes(e, prometheus.DefaultGatherer)

	go usecase.NewRefreshScheduler(tracker, cfg.Refresh.Interval, log.Logger).Run(ctx)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	gracefulShutdown(e, log)
}

// openStore connects the configured FlightStore. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config) (domain.FlightStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMongo:
		client, err := mongo.NewClient(ctx, cfg.Storage.MongoURI, cfg.Storage.ConnectTimeout)
		if err != nil {
			return nil, nil, err
		}
		disconnect := func() { _ = client.Disconnect(context.Background()) }

		store, err := mongo.NewStore(ctx, client.Database(cfg.Storage.MongoDatabase))
		if err != nil {
			disconnect()
			return nil, nil, err
		}
		return store, disconnect, nil

	case config.DriverPostgres:
		connectCtx, cancel := context.WithTimeout(ctx, cfg.Storage.ConnectTimeout)
		defer cancel()

		pool, err := postgres.NewPool(connectCtx, cfg.Storage.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		store, err := postgres.NewStore(connectCtx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil

	default:
		return memory.NewStore(), func() {}, nil
	}
}

// openPublisher returns the kafka publisher when events are enabled.
func openPublisher(cfg *config.Config, log *logger.Logger) domain.EventPublisher {
	if !cfg.Events.Enabled {
		return events.NopPublisher{}
	}
	log.Info().
		Strs("brokers", cfg.Events.Brokers).
		Str("topic", cfg.Events.Topic).
		Msg("Publishing flight events to kafka")
	return events.NewKafkaPublisher(events.NewKafkaWriter(cfg.Events.Brokers, cfg.Events.Topic), log.Logger)
}

// gracefulShutdown stops the HTTP server, letting in-flight requests finish.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
