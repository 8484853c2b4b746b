package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// Current-conditions provider. The API key stays server-side; this
	// service is the key-hiding boundary in front of the provider.
	OpenWeatherAPIKey  string        `envconfig:"OPENWEATHER_API_KEY"`
	OpenWeatherBaseURL string        `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	OpenWeatherTimeout time.Duration `envconfig:"OPENWEATHER_TIMEOUT" default:"5s"`

	// Forecast provider and cache.
	OpenMeteoBaseURL string        `envconfig:"OPENMETEO_BASE_URL" default:"https://api.open-meteo.com/v1"`
	OpenMeteoTimeout time.Duration `envconfig:"OPENMETEO_TIMEOUT" default:"5s"`
	ForecastCacheTTL time.Duration `envconfig:"FORECAST_CACHE_TTL" default:"30m"`

	// Advisory publishing, enabled by setting KAFKA_BROKERS.
	KafkaBrokers       []string `envconfig:"KAFKA_BROKERS"`
	KafkaAdvisoryTopic string   `envconfig:"KAFKA_ADVISORY_TOPIC" default:"weather-advisories"`
}

// PublishingEnabled reports whether advisory publishing is configured.
func (c *Config) PublishingEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Load reads configuration from environment variables, applying defaults
// where unset. A local .env file is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if cfg.OpenWeatherAPIKey == "" {
		return nil, errors.New("OPENWEATHER_API_KEY is required")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if cfg.OpenWeatherTimeout <= 0 {
		return nil, errors.New("OPENWEATHER_TIMEOUT must be positive")
	}
	if cfg.OpenMeteoTimeout <= 0 {
		return nil, errors.New("OPENMETEO_TIMEOUT must be positive")
	}
	if cfg.ForecastCacheTTL <= 0 {
		return nil, errors.New("FORECAST_CACHE_TTL must be positive")
	}
	if cfg.PublishingEnabled() && cfg.KafkaAdvisoryTopic == "" {
		return nil, errors.New("KAFKA_ADVISORY_TOPIC is required when KAFKA_BROKERS is set")
	}

	return &cfg, nil
}
