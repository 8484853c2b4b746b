package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, testAPIKey, cfg.OpenWeatherAPIKey)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.OpenWeatherBaseURL)
	assert.Equal(t, 5*time.Second, cfg.OpenWeatherTimeout)
	assert.Equal(t, "https://api.open-meteo.com/v1", cfg.OpenMeteoBaseURL)
	assert.Equal(t, 5*time.Second, cfg.OpenMeteoTimeout)
	assert.Equal(t, 30*time.Minute, cfg.ForecastCacheTTL)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "weather-advisories", cfg.KafkaAdvisoryTopic)
	assert.False(t, cfg.PublishingEnabled())
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("OPENWEATHER_BASE_URL", "http://localhost:9001")
	t.Setenv("OPENWEATHER_TIMEOUT", "2s")
	t.Setenv("OPENMETEO_BASE_URL", "http://localhost:9002")
	t.Setenv("OPENMETEO_TIMEOUT", "3s")
	t.Setenv("FORECAST_CACHE_TTL", "10m")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_ADVISORY_TOPIC", "custom-advisories")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "http://localhost:9001", cfg.OpenWeatherBaseURL)
	assert.Equal(t, 2*time.Second, cfg.OpenWeatherTimeout)
	assert.Equal(t, "http://localhost:9002", cfg.OpenMeteoBaseURL)
	assert.Equal(t, 3*time.Second, cfg.OpenMeteoTimeout)
	assert.Equal(t, 10*time.Minute, cfg.ForecastCacheTTL)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-advisories", cfg.KafkaAdvisoryTopic)
	assert.True(t, cfg.PublishingEnabled())
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENWEATHER_API_KEY")
}

func TestLoad_InvalidDurations(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"malformed shutdown timeout", "SHUTDOWN_TIMEOUT", "not-a-duration"},
		{"negative shutdown timeout", "SHUTDOWN_TIMEOUT", "-1s"},
		{"zero provider timeout", "OPENWEATHER_TIMEOUT", "0s"},
		{"negative cache TTL", "FORECAST_CACHE_TTL", "-5m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}
