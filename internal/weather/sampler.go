package weather

import (
	"math"
	"time"
)

const (
	fixedSunrise = "06:30"
	fixedSunset  = "18:00"

	minHumidity = 20
	maxHumidity = 90
)

var (
	skyConditions  = []Condition{ConditionClear, ConditionPartlyCloudy, ConditionFair}
	windDirections = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	visibilitiesKm = []int{8, 10, 12, 15}

	// MoonPhases is indexed by day-of-month mod 8.
	MoonPhases = []string{
		"New Moon",
		"Waxing Crescent",
		"First Quarter",
		"Waxing Gibbous",
		"Full Moon",
		"Waning Gibbous",
		"Last Quarter",
		"Waning Crescent",
	}
)

// Simulator generates randomized readings around registry baselines.
type Simulator struct {
	registry *Registry
	rnd      Rand
}

// NewSimulator creates a new Simulator. A nil rnd uses DefaultRand.
func NewSimulator(registry *Registry, rnd Rand) *Simulator {
	if rnd == nil {
		rnd = DefaultRand()
	}
	return &Simulator{
		registry: registry,
		rnd:      rnd,
	}
}

// Registry returns the registry readings are resolved against.
func (s *Simulator) Registry() *Registry {
	return s.registry
}

// Sample produces the current reading for locationKey at ref.
// Unknown keys resolve to the registry default.
func (s *Simulator) Sample(locationKey string, ref time.Time) Reading {
	return s.sampleProfile(s.registry.Lookup(locationKey), ref)
}

func (s *Simulator) sampleProfile(p LocationProfile, ref time.Time) Reading {
	b := p.Baseline
	daytime := IsDaytime(ref)

	var tempOffset float64
	if daytime {
		tempOffset = uniform(s.rnd, 0, 4)
	} else {
		tempOffset = uniform(s.rnd, -4, 0)
	}
	temp := round1(b.TemperatureC + tempOffset)

	uv := 0
	if daytime {
		uv = intBetween(s.rnd, 1, 8)
	}

	dayNoise := uniform(s.rnd, -1, 1)

	return Reading{
		Location:      p.DisplayName,
		CurrentTime:   ref.Format(time.RFC3339),
		Temperature:   temp,
		Humidity:      noisyHumidity(s.rnd, b.HumidityPct, 10),
		WindSpeed:     nonNegative(round1(b.WindSpeed + uniform(s.rnd, -0.8, 0.8))),
		WindDirection: choice(s.rnd, windDirections),
		Pressure:      round1(b.PressureHpa + uniform(s.rnd, -3, 3)),
		Visibility:    choice(s.rnd, visibilitiesKm),
		CloudCover:    intBetween(s.rnd, 0, 60),
		WeatherText:   choice(s.rnd, skyConditions),
		FeelsLike:     round1(temp + uniform(s.rnd, -2, 1)),
		UVIndex:       uv,
		MinTemp:       round1(b.TemperatureC + dayNoise - 3),
		MaxTemp:       round1(b.TemperatureC + dayNoise + 4),
		Sunrise:       fixedSunrise,
		Sunset:        fixedSunset,
		MoonPhase:     MoonPhase(ref),
		APISource:     SimulationSource,
	}
}

// IsDaytime reports whether t's hour lies in [6,18].
func IsDaytime(t time.Time) bool {
	h := t.Hour()
	return h >= 6 && h <= 18
}

// MoonPhase names the phase for t's date. It depends on the day of month only.
func MoonPhase(t time.Time) string {
	return MoonPhases[t.Day()%len(MoonPhases)]
}

func noisyHumidity(r Rand, base, spread int) int {
	return clampInt(base+intBetween(r, -spread, spread), minHumidity, maxHumidity)
}

func nonNegative(v float64) float64 {
	return math.Max(0, v)
}
