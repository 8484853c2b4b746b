// Package advisor orchestrates the advice path: fetch current conditions,
// build the weather context, assemble the advisory, and hand it to the
// optional publisher. It owns no weather logic itself.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/weather-advisor/internal/domain"
	"github.com/couchcryptid/weather-advisor/internal/observability"
)

// CurrentProvider fetches a current-conditions payload for a coordinate.
type CurrentProvider interface {
	CurrentConditions(ctx context.Context, lat, lon float64) (domain.CurrentPayload, error)
}

// ForecastProvider fetches a forecast series for a coordinate.
type ForecastProvider interface {
	Forecast(ctx context.Context, lat, lon float64) (domain.ForecastSeries, error)
}

// Publisher delivers advisories to a downstream sink.
type Publisher interface {
	PublishAdvisory(ctx context.Context, adv domain.Advisory) error
}

// ForecastView is the extracted forecast windows for one location.
type ForecastView struct {
	Hourly []domain.HourlyPoint `json:"hourly"`
	Daily  []domain.DailyPoint  `json:"daily"`
}

// Advisor wires providers to the advice core.
type Advisor struct {
	current   CurrentProvider
	forecast  ForecastProvider
	publisher Publisher
	pick      domain.IndexPicker
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates an Advisor. publisher may be nil when publishing is disabled;
// pick may be nil for uniform random insight selection.
func New(current CurrentProvider, forecast ForecastProvider, publisher Publisher, pick domain.IndexPicker, logger *slog.Logger, metrics *observability.Metrics) *Advisor {
	return &Advisor{
		current:   current,
		forecast:  forecast,
		publisher: publisher,
		pick:      pick,
		logger:    logger,
		metrics:   metrics,
	}
}

// Advise computes the advisory for a coordinate. A configured publisher gets
// the advisory best-effort: publish failures are logged and counted but never
// fail the request.
func (a *Advisor) Advise(ctx context.Context, lat, lon float64) (domain.Advisory, error) {
	payload, err := a.current.CurrentConditions(ctx, lat, lon)
	if err != nil {
		return domain.Advisory{}, fmt.Errorf("fetch current conditions: %w", err)
	}

	wc := domain.BuildContext(payload)
	adv := domain.BuildAdvisory(domain.Geo{Lat: lat, Lon: lon}, wc, a.pick)

	a.metrics.AdviceRequests.Inc()
	a.metrics.ImpactScore.Observe(float64(adv.Impact))
	a.logger.Info("advisory computed",
		"id", adv.ID, "condition", adv.Condition, "impact", adv.Impact)

	if a.publisher != nil {
		if err := a.publisher.PublishAdvisory(ctx, adv); err != nil {
			a.metrics.PublishErrors.Inc()
			a.logger.Warn("publish advisory failed", "id", adv.ID, "error", err)
		} else {
			a.metrics.AdvisoriesPublished.Inc()
		}
	}

	return adv, nil
}

// ForecastWindows fetches the forecast and extracts the rest-of-today hourly
// window and the week-ahead daily window.
func (a *Advisor) ForecastWindows(ctx context.Context, lat, lon float64) (ForecastView, error) {
	series, err := a.forecast.Forecast(ctx, lat, lon)
	if err != nil {
		return ForecastView{}, fmt.Errorf("fetch forecast: %w", err)
	}

	a.metrics.ForecastRequests.Inc()
	return ForecastView{
		Hourly: domain.HourlyWindow(series, domain.Now()),
		Daily:  domain.DailyWindow(series),
	}, nil
}

// CheckReadiness reports whether the advisor has its providers wired.
func (a *Advisor) CheckReadiness(_ context.Context) error {
	if a.current == nil {
		return errors.New("current conditions provider not configured")
	}
	if a.forecast == nil {
		return errors.New("forecast provider not configured")
	}
	return nil
}
