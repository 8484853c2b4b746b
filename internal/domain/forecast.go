package domain

import "time"

// ForecastSeries is the provider's parallel-array forecast: index i of each
// slice within a block describes the same time slot. Series are assumed
// chronologically ordered; ordering is not validated here.
type ForecastSeries struct {
	Hourly HourlySeries `json:"hourly"`
	Daily  DailySeries  `json:"daily"`
}

// HourlySeries holds the per-hour metric arrays.
type HourlySeries struct {
	Time              []time.Time `json:"time"`
	TemperatureC      []float64   `json:"temperature_c"`
	PrecipProbability []int       `json:"precip_probability"` // percent
	WindSpeedMS       []float64   `json:"wind_speed_ms"`
	WeatherCode       []int       `json:"weather_code"` // WMO code
}

// DailySeries holds the per-day metric arrays.
type DailySeries struct {
	Time              []time.Time `json:"time"`
	TemperatureMinC   []float64   `json:"temperature_min_c"`
	TemperatureMaxC   []float64   `json:"temperature_max_c"`
	PrecipProbability []int       `json:"precip_probability"` // daily max, percent
	PrecipSumMM       []float64   `json:"precip_sum_mm"`
	WindSpeedMaxMS    []float64   `json:"wind_speed_max_ms"`
	WeatherCode       []int       `json:"weather_code"`
}

// HourlyPoint is one hourly slot zipped out of the parallel series.
type HourlyPoint struct {
	Time              time.Time `json:"time"`
	TemperatureC      float64   `json:"temperature_c"`
	PrecipProbability int       `json:"precip_probability"`
	WindSpeedMS       float64   `json:"wind_speed_ms"`
	Tag               string    `json:"tag"`
}

// DailyPoint is one daily slot zipped out of the parallel series.
type DailyPoint struct {
	Day               time.Time `json:"day"`
	TemperatureMinC   float64   `json:"temperature_min_c"`
	TemperatureMaxC   float64   `json:"temperature_max_c"`
	PrecipProbability int       `json:"precip_probability"`
	PrecipSumMM       float64   `json:"precip_sum_mm"`
	WindSpeedMaxMS    float64   `json:"wind_speed_max_ms"`
	Tag               string    `json:"tag"`
}

// maxDailyPoints bounds the daily window.
const maxDailyPoints = 7

// HourlyWindow returns every hourly slot from now through the end of now's
// calendar day (23:59:59.999 in now's location), in series order. Slots
// before now are skipped; the scan stops at the first slot past end of day.
func HourlyWindow(s ForecastSeries, now time.Time) []HourlyPoint {
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(),
		23, 59, 59, 999*int(time.Millisecond), now.Location())

	var points []HourlyPoint
	for i, slot := range s.Hourly.Time {
		if slot.Before(now) {
			continue
		}
		if slot.After(endOfDay) {
			break
		}
		points = append(points, HourlyPoint{
			Time:              slot,
			TemperatureC:      floatAt(s.Hourly.TemperatureC, i),
			PrecipProbability: intAt(s.Hourly.PrecipProbability, i),
			WindSpeedMS:       floatAt(s.Hourly.WindSpeedMS, i),
			Tag:               TagForCode(intAt(s.Hourly.WeatherCode, i)),
		})
	}
	return points
}

// DailyWindow returns the first seven daily slots, fewer if the series is
// shorter. Never padded.
func DailyWindow(s ForecastSeries) []DailyPoint {
	n := min(len(s.Daily.Time), maxDailyPoints)
	points := make([]DailyPoint, 0, n)
	for i := range n {
		points = append(points, DailyPoint{
			Day:               s.Daily.Time[i],
			TemperatureMinC:   floatAt(s.Daily.TemperatureMinC, i),
			TemperatureMaxC:   floatAt(s.Daily.TemperatureMaxC, i),
			PrecipProbability: intAt(s.Daily.PrecipProbability, i),
			PrecipSumMM:       floatAt(s.Daily.PrecipSumMM, i),
			WindSpeedMaxMS:    floatAt(s.Daily.WindSpeedMaxMS, i),
			Tag:               TagForCode(intAt(s.Daily.WeatherCode, i)),
		})
	}
	return points
}

// TagForCode maps a WMO weather code to a short display tag. Codes outside
// the table are "mixed".
func TagForCode(code int) string {
	switch code {
	case 0:
		return "clear"
	case 1, 2, 3:
		return "cloudy"
	case 45, 48:
		return "fog"
	case 51, 53, 55, 56, 57:
		return "drizzle"
	case 61, 63, 65, 66, 67:
		return "rain"
	case 71, 73, 75, 77:
		return "snow"
	case 80, 81, 82:
		return "showers"
	case 95, 96, 99:
		return "thunderstorm"
	default:
		return "mixed"
	}
}

// floatAt and intAt read a parallel metric array defensively: a series
// shorter than the time array degrades to zero values instead of panicking.
func floatAt(vals []float64, i int) float64 {
	if i >= len(vals) {
		return 0
	}
	return vals[i]
}

func intAt(vals []int, i int) int {
	if i >= len(vals) {
		return 0
	}
	return vals[i]
}
