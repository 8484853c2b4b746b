package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/couchcryptid/weather-advisor/internal/advisor"
	"github.com/couchcryptid/weather-advisor/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// AdviceService computes advisories and forecast windows for a coordinate.
type AdviceService interface {
	Advise(ctx context.Context, lat, lon float64) (domain.Advisory, error)
	ForecastWindows(ctx context.Context, lat, lon float64) (advisor.ForecastView, error)
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the advice API plus health, readiness, and metrics routes.
type Server struct {
	httpServer *http.Server
	service    AdviceService
	logger     *slog.Logger
}

// NewServer creates the HTTP server with all routes registered.
func NewServer(addr string, service AdviceService, ready ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		service: service,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /v1/advice", s.handleAdvice)
	mux.HandleFunc("GET /v1/forecast", s.handleForecast)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := parseCoords(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	adv, err := s.service.Advise(r.Context(), lat, lon)
	if err != nil {
		s.logger.Error("advise failed", "lat", lat, "lon", lon, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "could not fetch current conditions"})
		return
	}
	writeJSON(w, http.StatusOK, adv)
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := parseCoords(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	view, err := s.service.ForecastWindows(r.Context(), lat, lon)
	if err != nil {
		s.logger.Error("forecast failed", "lat", lat, "lon", lon, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "could not fetch forecast"})
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// parseCoords reads and validates the lat/lon query parameters.
func parseCoords(r *http.Request) (lat, lon float64, err error) {
	lat, err = strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid lat: %q", r.URL.Query().Get("lat"))
	}
	lon, err = strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid lon: %q", r.URL.Query().Get("lon"))
	}
	if lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("lat out of range: %g", lat)
	}
	if lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf("lon out of range: %g", lon)
	}
	return lat, lon, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
