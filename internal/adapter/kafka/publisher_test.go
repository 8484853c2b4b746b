package kafka

import (
	"testing"
	"time"

	"github.com/couchcryptid/weather-advisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	temp := 4.5
	adv := domain.Advisory{
		ID:           "adv-0123456789abcdef",
		Location:     domain.Geo{Lat: 51.5074, Lon: -0.1278},
		Condition:    domain.ConditionRain,
		TemperatureC: &temp,
		Summary:      "🌧️ Cold rain",
		Advice:       "Waterproof layers and warm socks.",
		Impact:       42,
		Badges:       []domain.Badge{{Text: "wet", Tone: domain.ToneWarn}},
		GeneratedAt:  now,
	}

	msg, err := serializeToMessage(adv)
	require.NoError(t, err)

	assert.Equal(t, []byte("adv-0123456789abcdef"), msg.Key)
	assert.Contains(t, string(msg.Value), `"condition":"rain"`)
	assert.Contains(t, string(msg.Value), `"impact":42`)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "condition", msg.Headers[0].Key)
	assert.Equal(t, []byte("rain"), msg.Headers[0].Value)
	assert.Equal(t, "generated_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)
}

func TestSerializeToMessage_OmitsAbsentReadings(t *testing.T) {
	adv := domain.Advisory{
		ID:          "adv-feedfacecafebeef",
		Condition:   domain.ConditionOther,
		Summary:     "🤔 Weather is... happening",
		Advice:      "Glance out the window before committing.",
		GeneratedAt: time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
	}

	msg, err := serializeToMessage(adv)
	require.NoError(t, err)

	assert.NotContains(t, string(msg.Value), "temperature_c")
	assert.NotContains(t, string(msg.Value), "wind_speed_ms")
	assert.NotContains(t, string(msg.Value), "badges")
}
