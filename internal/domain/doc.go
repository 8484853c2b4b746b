// Package domain turns normalized weather observations into human-facing
// advice: an activity/clothing recommendation, a 0-100 impact score, and
// categorical badges, plus bounded hourly/daily forecast windows.
//
// # Input Conventions
//
// Current conditions arrive as the provider's nested-optional JSON payload
// (condition labels, main measurements, wind, clouds, visibility, trailing-hour
// precipitation depths). [BuildContext] flattens it into a [WeatherContext]:
// absent temperatures and wind become NaN, absent cloud cover and visibility
// become nil, absent precipitation becomes 0. Every consumer treats those
// sentinels as "no contribution" — NaN fails every threshold comparison, so a
// payload missing every field still produces a valid (if bland) advisory.
//
// # Decision Table
//
// [Recommend] walks a fixed-priority table: thunderstorm, then snow, then
// rain, then strong wind, then clear, then clouds, then a catch-all. The first
// matching rule wins. Ordering is severity-first so hazard conditions are
// never masked by a milder-sounding later branch. Temperature cut points
// (0, 6, 8, 10, 22, 28 °C) and the 10 m/s wind threshold are inclusive:
// a boundary reading resolves to the lower branch.
//
// The wind rule runs only after the precipitation rules and deliberately
// ignores the condition category, so a clear-and-gale snapshot takes the wind
// branch. That precedence is load-bearing; see the tests pinning it.
//
// # Forecast Windows
//
// Forecasts are parallel arrays indexed by slot. The hourly window covers
// [now, end of now's calendar day]; the daily window is the first seven
// entries. Slots carry a short display tag derived from the WMO weather code:
//
//	0 clear | 1-3 cloudy | 45,48 fog | 51-57 drizzle | 61-67 rain
//	71-77 snow | 80-82 showers | 95,96,99 thunderstorm | else mixed
//
// Series are assumed chronologically ordered; ordering is not validated.
//
// All functions here are pure and total over their documented input shapes.
// The only nondeterminism is insight selection, which takes an injectable
// index source ([IndexPicker]) so tests can pin the choice.
package domain
