package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/weather-advisor/internal/adapter/httpapi"
	kafkaadapter "github.com/couchcryptid/weather-advisor/internal/adapter/kafka"
	"github.com/couchcryptid/weather-advisor/internal/adapter/openmeteo"
	"github.com/couchcryptid/weather-advisor/internal/adapter/openweather"
	"github.com/couchcryptid/weather-advisor/internal/advisor"
	"github.com/couchcryptid/weather-advisor/internal/config"
	"github.com/couchcryptid/weather-advisor/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	current := openweather.NewClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL, cfg.OpenWeatherTimeout, metrics, logger)

	forecastClient := openmeteo.NewClient(cfg.OpenMeteoBaseURL, cfg.OpenMeteoTimeout, metrics, logger)
	forecast := openmeteo.NewCachedClient(forecastClient, cfg.ForecastCacheTTL, nil, metrics)

	// Advisory publishing is feature-flagged via KAFKA_BROKERS. The nil check
	// lives on the concrete type so the interface stays nil when disabled.
	var publisher advisor.Publisher
	var kafkaPublisher *kafkaadapter.Publisher
	if cfg.PublishingEnabled() {
		kafkaPublisher = kafkaadapter.NewPublisher(cfg, logger)
		publisher = kafkaPublisher
		logger.Info("advisory publishing enabled", "topic", cfg.KafkaAdvisoryTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("advisory publishing disabled")
	}

	adv := advisor.New(current, forecast, publisher, nil, logger, metrics)

	srv := httpapi.NewServer(cfg.HTTPAddr, adv, adv, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
