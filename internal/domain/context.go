package domain

import "math"

// CurrentPayload mirrors the provider's current-conditions JSON. Every field
// is optional; pointer fields distinguish absent from zero so BuildContext
// can degrade instead of guessing.
type CurrentPayload struct {
	Weather    []WeatherLabel `json:"weather"`
	Main       *MainReadings  `json:"main"`
	Wind       *WindReadings  `json:"wind"`
	Clouds     *CloudReadings `json:"clouds"`
	Visibility *int           `json:"visibility"` // meters
	Rain       *Precipitation `json:"rain"`
	Snow       *Precipitation `json:"snow"`
}

// WeatherLabel is one free-text condition entry; the first entry is primary.
type WeatherLabel struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// MainReadings holds the temperature block.
type MainReadings struct {
	Temp      *float64 `json:"temp"`       // °C
	FeelsLike *float64 `json:"feels_like"` // °C
}

// WindReadings holds the wind block.
type WindReadings struct {
	Speed *float64 `json:"speed"` // m/s
}

// CloudReadings holds cloud cover.
type CloudReadings struct {
	All *int `json:"all"` // percent, 0-100
}

// Precipitation holds depth over the trailing hour in millimeters.
type Precipitation struct {
	OneHour *float64 `json:"1h"`
}

// WeatherContext is the normalized, null-safe snapshot every scoring and
// recommendation function consumes. Absent temperatures and wind are NaN,
// absent cloud cover and visibility are nil, absent precipitation is 0.
// Exactly one Condition is assigned per context.
type WeatherContext struct {
	Condition    Condition
	RawLabel     string // original provider text, display only
	TemperatureC float64
	FeelsLikeC   float64
	WindSpeedMS  float64
	CloudPercent *int
	VisibilityM  *int
	RainMM1h     float64
	SnowMM1h     float64
}

// BuildContext extracts a WeatherContext from a raw payload. Total over any
// payload shape: a fully empty payload yields ConditionOther with all-default
// numerics, never an error.
func BuildContext(p CurrentPayload) WeatherContext {
	c := WeatherContext{
		TemperatureC: math.NaN(),
		FeelsLikeC:   math.NaN(),
		WindSpeedMS:  math.NaN(),
	}

	if len(p.Weather) > 0 {
		c.RawLabel = p.Weather[0].Main
		if c.RawLabel == "" {
			c.RawLabel = p.Weather[0].Description
		}
	}
	c.Condition = NormalizeCondition(c.RawLabel)

	if p.Main != nil {
		if p.Main.Temp != nil {
			c.TemperatureC = *p.Main.Temp
		}
		if p.Main.FeelsLike != nil {
			c.FeelsLikeC = *p.Main.FeelsLike
		}
	}
	if p.Wind != nil && p.Wind.Speed != nil {
		c.WindSpeedMS = *p.Wind.Speed
	}
	if p.Clouds != nil && p.Clouds.All != nil {
		v := *p.Clouds.All
		c.CloudPercent = &v
	}
	if p.Visibility != nil {
		v := *p.Visibility
		c.VisibilityM = &v
	}
	if p.Rain != nil && p.Rain.OneHour != nil {
		c.RainMM1h = *p.Rain.OneHour
	}
	if p.Snow != nil && p.Snow.OneHour != nil {
		c.SnowMM1h = *p.Snow.OneHour
	}

	return c
}
