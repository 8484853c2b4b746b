package openmeteo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/couchcryptid/weather-advisor/internal/domain"
	"github.com/couchcryptid/weather-advisor/internal/observability"
	"github.com/jonboulle/clockwork"
)

// LocationKey identifies a forecast location at roughly neighborhood
// granularity. Coordinates are rounded to two decimals (~1km) so nearby
// requests share a cache entry.
type LocationKey string

// KeyFor derives the cache key for a coordinate.
func KeyFor(lat, lon float64) LocationKey {
	return LocationKey(fmt.Sprintf("%.2f,%.2f", lat, lon))
}

// CachedClient wraps a forecast Provider with a single-entry TTL memo.
// Forecast series change slowly, and a request burst for one location is
// the common case, so one slot is enough.
type CachedClient struct {
	inner   Provider
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics

	mu    sync.Mutex
	entry *cacheEntry
}

type cacheEntry struct {
	key       LocationKey
	series    domain.ForecastSeries
	fetchedAt time.Time
}

// NewCachedClient creates a cache decorator around a forecast provider.
// A nil clock defaults to the real clock.
func NewCachedClient(inner Provider, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedClient {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CachedClient{
		inner:   inner,
		ttl:     ttl,
		clock:   clock,
		metrics: metrics,
	}
}

// Forecast returns the cached series when the key matches and the entry is
// fresh, otherwise fetches through and replaces the entry. Fetch errors are
// not cached.
func (c *CachedClient) Forecast(ctx context.Context, lat, lon float64) (domain.ForecastSeries, error) {
	key := KeyFor(lat, lon)

	c.mu.Lock()
	if e := c.entry; e != nil && e.key == key && c.clock.Since(e.fetchedAt) < c.ttl {
		series := e.series
		c.mu.Unlock()
		c.metrics.ForecastCache.WithLabelValues("hit").Inc()
		return series, nil
	}
	c.mu.Unlock()

	c.metrics.ForecastCache.WithLabelValues("miss").Inc()
	series, err := c.inner.Forecast(ctx, lat, lon)
	if err != nil {
		return domain.ForecastSeries{}, err
	}

	c.mu.Lock()
	c.entry = &cacheEntry{key: key, series: series, fetchedAt: c.clock.Now()}
	c.mu.Unlock()
	return series, nil
}
