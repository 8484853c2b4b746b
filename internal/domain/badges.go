package domain

// Tone classifies a badge's severity for display.
type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneWarn    Tone = "warn"
	ToneDanger  Tone = "danger"
)

// Badge is a short categorical flag derived from one threshold rule.
type Badge struct {
	Text string `json:"text"`
	Tone Tone   `json:"tone"`
}

// DeriveBadges evaluates the fixed badge rules in order and returns the
// matches as an ordered sequence, possibly empty. The two precipitation pairs
// are mutually exclusive (heavy rain vs wet, ice risk vs snow); every other
// rule is independent, so frost, very windy, and ice risk can coexist on one
// snapshot. NaN readings match no rule.
func DeriveBadges(c WeatherContext) []Badge {
	var badges []Badge

	switch {
	case c.RainMM1h >= 2:
		badges = append(badges, Badge{Text: "heavy rain", Tone: ToneDanger})
	case c.RainMM1h > 0:
		badges = append(badges, Badge{Text: "wet", Tone: ToneWarn})
	}

	switch {
	case c.SnowMM1h > 0 && c.TemperatureC <= 1:
		badges = append(badges, Badge{Text: "ice risk", Tone: ToneDanger})
	case c.SnowMM1h > 0:
		badges = append(badges, Badge{Text: "snow", Tone: ToneWarn})
	}

	if c.VisibilityM != nil && *c.VisibilityM < 1000 {
		badges = append(badges, Badge{Text: "poor visibility", Tone: ToneWarn})
	}
	if c.WindSpeedMS >= 10 {
		badges = append(badges, Badge{Text: "very windy", Tone: ToneWarn})
	}
	if c.TemperatureC >= 30 {
		badges = append(badges, Badge{Text: "heat", Tone: ToneWarn})
	}
	if c.TemperatureC <= 0 {
		badges = append(badges, Badge{Text: "frost", Tone: ToneWarn})
	}
	if c.CloudPercent != nil && *c.CloudPercent >= 85 {
		badges = append(badges, Badge{Text: "very cloudy", Tone: ToneNeutral})
	}

	return badges
}
