package domain

import "strings"

// Condition is the closed set of normalized weather categories. Free-text
// provider labels are folded onto these six values; everything downstream
// matches on Condition, never on raw text.
type Condition string

const (
	ConditionClear        Condition = "clear"
	ConditionClouds       Condition = "clouds"
	ConditionRain         Condition = "rain"
	ConditionSnow         Condition = "snow"
	ConditionThunderstorm Condition = "thunderstorm"
	ConditionOther        Condition = "other"
)

// NormalizeCondition maps a free-text weather label onto the Condition set.
// Matching is a case-insensitive substring check in fixed priority order:
// thunder beats drizzle/rain, which beats snow, then cloud, then clear. Only
// the first match applies. Anything unrecognized, including an empty label,
// is ConditionOther. Total over any input.
func NormalizeCondition(label string) Condition {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "thunder"):
		return ConditionThunderstorm
	case strings.Contains(l, "drizzle"), strings.Contains(l, "rain"):
		return ConditionRain
	case strings.Contains(l, "snow"):
		return ConditionSnow
	case strings.Contains(l, "cloud"):
		return ConditionClouds
	case strings.Contains(l, "clear"):
		return ConditionClear
	default:
		return ConditionOther
	}
}
