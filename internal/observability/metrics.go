package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the advisor service.
type Metrics struct {
	AdviceRequests   prometheus.Counter
	ForecastRequests prometheus.Counter

	// Provider metrics.
	ProviderRequests *prometheus.CounterVec   // labels: provider={openweather,openmeteo}, outcome={success,error}
	ProviderDuration *prometheus.HistogramVec // labels: provider
	ForecastCache    *prometheus.CounterVec   // labels: result={hit,miss}

	// Advisory publishing metrics.
	AdvisoriesPublished prometheus.Counter
	PublishErrors       prometheus.Counter

	ImpactScore prometheus.Histogram
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		AdviceRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_advisor",
			Name:      "advice_requests_total",
			Help:      "Total advisory computations requested.",
		}),
		ForecastRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_advisor",
			Name:      "forecast_requests_total",
			Help:      "Total forecast window extractions requested.",
		}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_advisor",
			Name:      "provider_requests_total",
			Help:      "Upstream weather API requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weather_advisor",
			Name:      "provider_request_duration_seconds",
			Help:      "Upstream weather API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"provider"}),
		ForecastCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_advisor",
			Name:      "forecast_cache_total",
			Help:      "Forecast cache lookups by result.",
		}, []string{"result"}),
		AdvisoriesPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_advisor",
			Name:      "advisories_published_total",
			Help:      "Total advisories published to the sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_advisor",
			Name:      "publish_errors_total",
			Help:      "Total advisory publish failures.",
		}),
		ImpactScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_advisor",
			Name:      "impact_score",
			Help:      "Distribution of computed impact scores.",
			Buckets:   []float64{0, 5, 10, 20, 30, 40, 50, 65, 80, 100},
		}),
	}

	prometheus.MustRegister(
		m.AdviceRequests,
		m.ForecastRequests,
		m.ProviderRequests,
		m.ProviderDuration,
		m.ForecastCache,
		m.AdvisoriesPublished,
		m.PublishErrors,
		m.ImpactScore,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		AdviceRequests:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_advisor", Name: "advice_requests_total"}),
		ForecastRequests:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_advisor", Name: "forecast_requests_total"}),
		ProviderRequests:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_advisor", Name: "provider_requests_total"}, []string{"provider", "outcome"}),
		ProviderDuration:    prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "weather_advisor", Name: "provider_request_duration_seconds"}, []string{"provider"}),
		ForecastCache:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_advisor", Name: "forecast_cache_total"}, []string{"result"}),
		AdvisoriesPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_advisor", Name: "advisories_published_total"}),
		PublishErrors:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_advisor", Name: "publish_errors_total"}),
		ImpactScore:         prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_advisor", Name: "impact_score"}),
	}
}
