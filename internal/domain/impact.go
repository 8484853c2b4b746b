package domain

import "math"

// ImpactScore condenses a context into a 0-100 severity index combining
// precipitation intensity, wind excess, temperature extremity, and visibility
// deficit. Each term is clamped independently, the terms are summed (they can
// co-occur — cold plus windy plus low visibility all add), and the total is
// clamped to [0,100] and rounded to the nearest integer.
//
// NaN readings and missing visibility fail every guard below, so absent
// values contribute nothing and the function is total.
func ImpactScore(c WeatherContext) int {
	var total float64

	if c.RainMM1h > 0 {
		total += clamp(c.RainMM1h*12, 10, 45)
	}
	if c.SnowMM1h > 0 {
		total += clamp(c.SnowMM1h*10, 10, 40)
	}
	if c.WindSpeedMS > 6 {
		total += clamp((c.WindSpeedMS-6)*4, 0, 25)
	}
	if c.TemperatureC >= 28 {
		total += clamp((c.TemperatureC-27)*4, 4, 25)
	}
	if c.TemperatureC <= 2 {
		total += clamp((3-c.TemperatureC)*5, 5, 30)
	}
	if c.VisibilityM != nil {
		if v := float64(*c.VisibilityM); v > 0 && v < 2000 {
			total += clamp((2000-v)/80, 5, 25)
		}
	}

	return int(math.Round(clamp(total, 0, 100)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
