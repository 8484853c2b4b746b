package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/weather-advisor/internal/domain"
	"github.com/couchcryptid/weather-advisor/internal/observability"
)

const providerLabel = "openweather"

// Client fetches current conditions from the OpenWeatherMap API. The API
// key never leaves this process; callers only see parsed payloads.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an OpenWeatherMap client.
func NewClient(apiKey, baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// CurrentConditions fetches the current weather observation for a coordinate.
// Readings come back in metric units (celsius, m/s).
func (c *Client) CurrentConditions(ctx context.Context, lat, lon float64) (domain.CurrentPayload, error) {
	params := url.Values{
		"lat":   {fmt.Sprintf("%.6f", lat)},
		"lon":   {fmt.Sprintf("%.6f", lon)},
		"units": {"metric"},
		"appid": {c.apiKey},
	}
	fullURL := c.baseURL + "/weather?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.CurrentPayload{}, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderDuration.WithLabelValues(providerLabel).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues(providerLabel, "error").Inc()
		return domain.CurrentPayload{}, fmt.Errorf("current conditions request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.ProviderRequests.WithLabelValues(providerLabel, "error").Inc()
		return domain.CurrentPayload{}, fmt.Errorf("openweather API error: status %d: %s", resp.StatusCode, body)
	}

	var payload domain.CurrentPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.metrics.ProviderRequests.WithLabelValues(providerLabel, "error").Inc()
		return domain.CurrentPayload{}, fmt.Errorf("decode response: %w", err)
	}

	c.metrics.ProviderRequests.WithLabelValues(providerLabel, "success").Inc()
	c.logger.Debug("fetched current conditions", "lat", lat, "lon", lon)
	return payload, nil
}
