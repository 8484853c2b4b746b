package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"time"
)

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Advisory is the assembled, wire-ready advice for one location. Absent
// readings are nil rather than NaN so the struct marshals cleanly.
type Advisory struct {
	ID             string    `json:"id"`
	Location       Geo       `json:"location"`
	Condition      Condition `json:"condition"`
	ConditionLabel string    `json:"condition_label,omitempty"`
	TemperatureC   *float64  `json:"temperature_c,omitempty"`
	FeelsLikeC     *float64  `json:"feels_like_c,omitempty"`
	WindSpeedMS    *float64  `json:"wind_speed_ms,omitempty"`
	Summary        string    `json:"summary"`
	Advice         string    `json:"advice"`
	Insight        string    `json:"insight,omitempty"`
	Impact         int       `json:"impact"`
	Badges         []Badge   `json:"badges,omitempty"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// BuildAdvisory runs the full advice path over one context: recommendation,
// insight selection, impact score, and badges, stamped with the package
// clock. The recommendation, score, and badges are independent consumers of
// the same context.
func BuildAdvisory(geo Geo, c WeatherContext, pick IndexPicker) Advisory {
	rec := Recommend(c)
	now := clock.Now()

	return Advisory{
		ID:             generateID(geo, c.Condition, now),
		Location:       geo,
		Condition:      c.Condition,
		ConditionLabel: c.RawLabel,
		TemperatureC:   floatOrNil(c.TemperatureC),
		FeelsLikeC:     floatOrNil(c.FeelsLikeC),
		WindSpeedMS:    floatOrNil(c.WindSpeedMS),
		Summary:        rec.Summary,
		Advice:         rec.Advice,
		Insight:        PickInsight(rec.Insights, pick),
		Impact:         ImpactScore(c),
		Badges:         DeriveBadges(c),
		GeneratedAt:    now,
	}
}

// generateID produces a deterministic ID from the advisory's key fields, so
// recomputing for the same place and instant yields the same ID and
// downstream consumers can deduplicate replays.
func generateID(geo Geo, cond Condition, at time.Time) string {
	input := fmt.Sprintf("%.4f|%.4f|%s|%d", geo.Lat, geo.Lon, cond, at.Unix())
	hash := sha256.Sum256([]byte(input))
	return "adv-" + hex.EncodeToString(hash[:8])
}

func floatOrNil(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
