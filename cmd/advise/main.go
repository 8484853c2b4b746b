// Command advise computes a weather advisory from a saved current-conditions
// payload, without calling any upstream API. It is useful for inspecting what
// the service would say for a given observation, and for producing
// reproducible output in scripts: -seed pins the insight choice and -at pins
// the generation timestamp (and therefore the advisory ID).
//
// Usage:
//
//	go run ./cmd/advise -payload testdata/london_rain.json \
//	  -lat 51.5074 -lon -0.1278 -seed 1 -at 2026-03-10T14:30:00Z
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/couchcryptid/weather-advisor/internal/domain"
	"github.com/jonboulle/clockwork"
)

func main() {
	payloadPath := flag.String("payload", "", "path to a current-conditions JSON payload (required)")
	lat := flag.Float64("lat", 0, "latitude of the observation")
	lon := flag.Float64("lon", 0, "longitude of the observation")
	seed := flag.Uint64("seed", 0, "seed the insight picker for reproducible output (0 = random)")
	at := flag.String("at", "", "fix the generation time, RFC3339 (default: now)")
	flag.Parse()

	if *payloadPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*payloadPath, *lat, *lon, *seed, *at); err != nil {
		fmt.Fprintf(os.Stderr, "advise: %v\n", err)
		os.Exit(1)
	}
}

func run(payloadPath string, lat, lon float64, seed uint64, at string) error {
	data, err := os.ReadFile(payloadPath)
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	var payload domain.CurrentPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("parse payload: %w", err)
	}

	if at != "" {
		fixed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return fmt.Errorf("parse -at: %w", err)
		}
		domain.SetClock(clockwork.NewFakeClockAt(fixed))
		defer domain.SetClock(nil)
	}

	var pick domain.IndexPicker
	if seed != 0 {
		rng := rand.New(rand.NewPCG(seed, 0))
		pick = rng.IntN
	}

	wc := domain.BuildContext(payload)
	adv := domain.BuildAdvisory(domain.Geo{Lat: lat, Lon: lon}, wc, pick)

	out, err := json.MarshalIndent(adv, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal advisory: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
