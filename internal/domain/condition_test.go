package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCondition(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected Condition
	}{
		{"thunderstorm", "Thunderstorm", ConditionThunderstorm},
		{"thundery shower", "thundery outbreaks possible", ConditionThunderstorm},
		{"rain", "Rain", ConditionRain},
		{"light rain", "light rain", ConditionRain},
		{"drizzle maps to rain", "Drizzle", ConditionRain},
		{"freezing drizzle", "Light freezing drizzle", ConditionRain},
		{"snow", "Snow", ConditionSnow},
		{"heavy snow", "HEAVY SNOW", ConditionSnow},
		{"clouds", "Clouds", ConditionClouds},
		{"scattered clouds", "scattered clouds", ConditionClouds},
		{"clear", "Clear", ConditionClear},
		{"clear sky", "clear sky", ConditionClear},
		{"unrecognized", "Haze", ConditionOther},
		{"mist", "Mist", ConditionOther},
		{"empty string", "", ConditionOther},
		{"whitespace only", "   ", ConditionOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCondition(tt.label))
		})
	}
}

func TestNormalizeCondition_PriorityOrder(t *testing.T) {
	// Thunder wins over rain text, rain wins over snow text, and so on down
	// the priority chain. Only the first match applies.
	tests := []struct {
		name     string
		label    string
		expected Condition
	}{
		{"thunder beats rain", "thunderstorm with heavy rain", ConditionThunderstorm},
		{"rain beats snow", "rain and snow mix", ConditionRain},
		{"drizzle beats snow", "drizzle turning to snow", ConditionRain},
		{"snow beats cloud", "snow under cloudy skies", ConditionSnow},
		{"cloud beats clear", "clouds clearing later", ConditionClouds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCondition(tt.label))
		})
	}
}
