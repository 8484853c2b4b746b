package openweather

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/couchcryptid/weather-advisor/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

func testClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     testAPIKey,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestClient_CurrentConditions_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, testAPIKey, r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "51.507400", r.URL.Query().Get("lat"))
		assert.Equal(t, "-0.127800", r.URL.Query().Get("lon"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"weather": [{"main": "Rain", "description": "light rain"}],
			"main": {"temp": 8.5, "feels_like": 6.2},
			"wind": {"speed": 4.1},
			"clouds": {"all": 90},
			"visibility": 8000,
			"rain": {"1h": 0.6}
		}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	payload, err := c.CurrentConditions(context.Background(), 51.5074, -0.1278)
	require.NoError(t, err)

	require.Len(t, payload.Weather, 1)
	assert.Equal(t, "Rain", payload.Weather[0].Main)
	require.NotNil(t, payload.Main)
	assert.InDelta(t, 8.5, *payload.Main.Temp, 1e-9)
	assert.InDelta(t, 6.2, *payload.Main.FeelsLike, 1e-9)
	require.NotNil(t, payload.Wind)
	assert.InDelta(t, 4.1, *payload.Wind.Speed, 1e-9)
	require.NotNil(t, payload.Clouds)
	assert.Equal(t, 90, *payload.Clouds.All)
	require.NotNil(t, payload.Visibility)
	assert.Equal(t, 8000, *payload.Visibility)
	require.NotNil(t, payload.Rain)
	assert.InDelta(t, 0.6, *payload.Rain.OneHour, 1e-9)
}

func TestClient_CurrentConditions_SparsePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"weather": [{"main": "Clear"}]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	payload, err := c.CurrentConditions(context.Background(), 0, 0)
	require.NoError(t, err)

	require.Len(t, payload.Weather, 1)
	assert.Nil(t, payload.Main)
	assert.Nil(t, payload.Wind)
	assert.Nil(t, payload.Visibility)
}

func TestClient_CurrentConditions_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	_, err := c.CurrentConditions(context.Background(), 51.5074, -0.1278)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_CurrentConditions_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(srv.URL, 50*time.Millisecond)
	_, err := c.CurrentConditions(context.Background(), 51.5074, -0.1278)
	require.Error(t, err)
}

func TestClient_CurrentConditions_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"weather": [`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	_, err := c.CurrentConditions(context.Background(), 51.5074, -0.1278)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}
