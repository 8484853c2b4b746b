package openmeteo

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

const providerLabel = "openmeteo"

// Provider fetches a forecast series for a coordinate.
type Provider interface {
	Forecast(ctx context.Context, lat, lon float64) (domain.ForecastSeries, error)
}

// Client fetches hourly and daily forecasts from the Open-Meteo API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an Open-Meteo client.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// Forecast fetches the hourly and daily series for a coordinate. Timestamps
// are returned in the location's local timezone so that "end of day" means
// end of the day at the queried location.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (domain.ForecastSeries, error) {
	params := url.Values{
		"latitude":        {fmt.Sprintf("%.6f", lat)},
		"longitude":       {fmt.Sprintf("%.6f", lon)},
		"hourly":          {"temperature_2m,precipitation_probability,wind_speed_10m,weather_code"},
		"daily":           {"temperature_2m_min,temperature_2m_max,precipitation_probability_max,precipitation_sum,wind_speed_10m_max,weather_code"},
		"timezone":        {"auto"},
		"wind_speed_unit": {"ms"},
	}
	fullURL := c.baseURL + "/forecast?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.ForecastSeries{}, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderDuration.WithLabelValues(providerLabel).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues(providerLabel, "error").Inc()
		return domain.ForecastSeries{}, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.ProviderRequests.WithLabelValues(providerLabel, "error").Inc()
		return domain.ForecastSeries{}, fmt.Errorf("openmeteo API error: status %d: %s", resp.StatusCode, body)
	}

	var wire response
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		c.metrics.ProviderRequests.WithLabelValues(providerLabel, "error").Inc()
		return domain.ForecastSeries{}, fmt.Errorf("decode response: %w", err)
	}

	series, err := wire.toSeries()
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues(providerLabel, "error").Inc()
		return domain.ForecastSeries{}, err
	}

	c.metrics.ProviderRequests.WithLabelValues(providerLabel, "success").Inc()
	c.logger.Debug("fetched forecast", "lat", lat, "lon", lon,
		"hourly_slots", len(series.Hourly.Time), "daily_slots", len(series.Daily.Time))
	return series, nil
}

// Open-Meteo API response types. Times arrive as local-time strings without
// a zone; utc_offset_seconds supplies the location's offset.

type response struct {
	UTCOffsetSeconds int         `json:"utc_offset_seconds"`
	Hourly           hourlyBlock `json:"hourly"`
	Daily            dailyBlock  `json:"daily"`
}

type hourlyBlock struct {
	Time                     []string  `json:"time"` // "2006-01-02T15:04"
	Temperature2m            []float64 `json:"temperature_2m"`
	PrecipitationProbability []int     `json:"precipitation_probability"`
	WindSpeed10m             []float64 `json:"wind_speed_10m"`
	WeatherCode              []int     `json:"weather_code"`
}

type dailyBlock struct {
	Time                        []string  `json:"time"` // "2006-01-02"
	Temperature2mMin            []float64 `json:"temperature_2m_min"`
	Temperature2mMax            []float64 `json:"temperature_2m_max"`
	PrecipitationProbabilityMax []int     `json:"precipitation_probability_max"`
	PrecipitationSum            []float64 `json:"precipitation_sum"`
	WindSpeed10mMax             []float64 `json:"wind_speed_10m_max"`
	WeatherCode                 []int     `json:"weather_code"`
}

func (r response) toSeries() (domain.ForecastSeries, error) {
	loc := time.FixedZone("local", r.UTCOffsetSeconds)

	hourly, err := parseTimes(r.Hourly.Time, "2006-01-02T15:04", loc)
	if err != nil {
		return domain.ForecastSeries{}, fmt.Errorf("parse hourly time: %w", err)
	}
	daily, err := parseTimes(r.Daily.Time, "2006-01-02", loc)
	if err != nil {
		return domain.ForecastSeries{}, fmt.Errorf("parse daily time: %w", err)
	}

	return domain.ForecastSeries{
		Hourly: domain.HourlySeries{
			Time:              hourly,
			TemperatureC:      r.Hourly.Temperature2m,
			PrecipProbability: r.Hourly.PrecipitationProbability,
			WindSpeedMS:       r.Hourly.WindSpeed10m,
			WeatherCode:       r.Hourly.WeatherCode,
		},
		Daily: domain.DailySeries{
			Time:              daily,
			TemperatureMinC:   r.Daily.Temperature2mMin,
			TemperatureMaxC:   r.Daily.Temperature2mMax,
			PrecipProbability: r.Daily.PrecipitationProbabilityMax,
			PrecipSumMM:       r.Daily.PrecipitationSum,
			WindSpeedMaxMS:    r.Daily.WindSpeed10mMax,
			WeatherCode:       r.Daily.WeatherCode,
		},
	}, nil
}

func parseTimes(raw []string, layout string, loc *time.Location) ([]time.Time, error) {
	out := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out = append(out, t)
	}
	return out, nil
}
