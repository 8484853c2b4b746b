package domain

// Recommendation is the fixed outcome of one decision-table branch: a short
// summary with an icon glyph, one actionable sentence, and an ordered pool of
// three insight phrases for PickInsight. Computed fresh per context, never
// mutated.
type Recommendation struct {
	Summary  string   `json:"summary"`
	Advice   string   `json:"advice"`
	Insights []string `json:"insights"`
}

// Branch constants. Each is a pure mapping with no runtime state; Recommend
// selects among them.
var (
	branchThunderstorm = Recommendation{
		Summary: "⛈️ Thunderstorm",
		Advice:  "Stay indoors and postpone outdoor plans until the storm passes.",
		Insights: []string{
			"Lightning can strike well ahead of the rain shaft.",
			"Unplug sensitive electronics if strikes sound close.",
			"Avoid open fields and lone trees if caught outside.",
		},
	}
	branchWinterGear = Recommendation{
		Summary: "❄️ Snow and freezing",
		Advice:  "Full winter gear: insulated boots, gloves, and a warm hat.",
		Insights: []string{
			"Fresh snow over ice makes pavements deceptively slick.",
			"Layer wool or synthetics; cotton loses warmth when damp.",
			"Allow extra travel time — visibility drops fast in snowfall.",
		},
	}
	branchSleet = Recommendation{
		Summary: "🌨️ Wet snow",
		Advice:  "Waterproof layers over warm ones — this snow will soak through.",
		Insights: []string{
			"Above-freezing snow melts on contact and chills quickly.",
			"A waterproof shell matters more than extra insulation here.",
			"Slush hides puddles; waterproof footwear pays off.",
		},
	}
	branchColdRain = Recommendation{
		Summary: "🌧️ Cold rain",
		Advice:  "Rain jacket plus warm layers — cold rain saps heat fast.",
		Insights: []string{
			"Wind chill on wet skin feels several degrees colder.",
			"Keep a dry change of clothes if you'll be out long.",
			"Near-freezing rain can glaze untreated surfaces.",
		},
	}
	branchWarmRain = Recommendation{
		Summary: "🌦️ Warm rain",
		Advice:  "Light rain shell or umbrella; skip the heavy layers.",
		Insights: []string{
			"Humidity stays high after warm rain — breathable fabrics help.",
			"Brief heavy bursts are common in warm showers.",
			"A compact umbrella beats a jacket in this warmth.",
		},
	}
	branchRain = Recommendation{
		Summary: "🌧️ Rainy",
		Advice:  "Take a waterproof jacket or umbrella before heading out.",
		Insights: []string{
			"Roads stay greasy for the first minutes of rain.",
			"An umbrella plus windproof shell covers most showers.",
			"Plan indoor alternatives for longer outdoor activities.",
		},
	}
	branchWindyCold = Recommendation{
		Summary: "💨 Windy and cold",
		Advice:  "Windproof outer layer — the gusts cut right through fleece.",
		Insights: []string{
			"Wind chill makes this feel far below the thermometer reading.",
			"Secure loose items on balconies and bike racks.",
			"Cycling into this headwind doubles the effort.",
		},
	}
	branchWindy = Recommendation{
		Summary: "💨 Very windy",
		Advice:  "Expect strong gusts; secure loose items and mind cyclists' balance.",
		Insights: []string{
			"Gusts are strongest at building corners and open crossings.",
			"Umbrellas rarely survive winds at this strength.",
			"Check for delays if you travel by ferry or light aircraft.",
		},
	}
	branchHeat = Recommendation{
		Summary: "🥵 Hot and sunny",
		Advice:  "Stay hydrated, seek shade at midday, and pace any exercise.",
		Insights: []string{
			"UV peaks between 11:00 and 15:00 — sunscreen up.",
			"Drink before you feel thirsty in dry heat.",
			"Morning and late evening are the comfortable windows.",
		},
	}
	branchDeceptiveCold = Recommendation{
		Summary: "🌤️ Clear but cold",
		Advice:  "Sunny skies mislead — bring a proper warm layer.",
		Insights: []string{
			"Clear nights radiate heat away; mornings start frosty.",
			"Sun on the skin hides how quickly extremities chill.",
			"Black ice lingers in shaded spots on clear cold days.",
		},
	}
	branchPleasant = Recommendation{
		Summary: "☀️ Clear skies",
		Advice:  "Great conditions — ideal for anything outdoors.",
		Insights: []string{
			"A light extra layer covers the evening cooldown.",
			"Good visibility makes this a fine day for a viewpoint walk.",
			"Conditions like these are the best for air-drying laundry.",
		},
	}
	branchCoolCloudy = Recommendation{
		Summary: "☁️ Grey and cool",
		Advice:  "A warm jacket will do; no rain gear needed yet.",
		Insights: []string{
			"Overcast traps the chill — it warms little by afternoon.",
			"Flat light is easy on the eyes for long walks.",
			"Keep an eye on the sky; thick cloud can turn to drizzle.",
		},
	}
	branchMildCloudy = Recommendation{
		Summary: "⛅ Mild and cloudy",
		Advice:  "Comfortable for most plans; a light layer is plenty.",
		Insights: []string{
			"Cloud cover keeps temperatures steady all day.",
			"Decent running weather — no glare, no overheating.",
			"Breaks in the cloud may give brief sunny spells.",
		},
	}
	branchFallback = Recommendation{
		Summary: "🌡️ Mixed conditions",
		Advice:  "Nothing extreme expected; dress for the temperature and carry a layer.",
		Insights: []string{
			"Check back in an hour — conditions look changeable.",
			"A packable shell covers most surprises.",
			"Local microclimates can differ from this reading.",
		},
	}
)

// Recommend walks the decision table top to bottom and returns the first
// matching branch. Hazard branches come first so a storm is never reported as
// merely windy. All cut points are inclusive: a boundary temperature resolves
// to the lower branch (0 °C snow is winter gear, not sleet). The wind rule is
// reached only when no precipitation rule matched and ignores the condition
// category entirely, so both clear-and-gale and clouds-and-gale snapshots
// take a wind branch. NaN readings fail every comparison, which lands
// unknown-temperature snapshots in the milder sibling of each pair.
func Recommend(c WeatherContext) Recommendation {
	switch c.Condition {
	case ConditionThunderstorm:
		return branchThunderstorm
	case ConditionSnow:
		if c.TemperatureC <= 0 {
			return branchWinterGear
		}
		return branchSleet
	case ConditionRain:
		if c.TemperatureC <= 6 {
			return branchColdRain
		}
		if c.TemperatureC >= 22 {
			return branchWarmRain
		}
		return branchRain
	}

	if c.WindSpeedMS >= 10 {
		if c.TemperatureC <= 10 {
			return branchWindyCold
		}
		return branchWindy
	}

	switch c.Condition {
	case ConditionClear:
		if c.TemperatureC >= 28 {
			return branchHeat
		}
		if c.TemperatureC <= 5 {
			return branchDeceptiveCold
		}
		return branchPleasant
	case ConditionClouds:
		if c.TemperatureC <= 8 {
			return branchCoolCloudy
		}
		return branchMildCloudy
	}

	return branchFallback
}
