package weather

import (
	"testing"
	"time"
)

func newTestSimulator() *Simulator {
	return NewSimulator(DefaultRegistry(), NewSeededRand(7, 11))
}

func TestMoonPhaseIsDeterministic(t *testing.T) {
	day := time.Date(2026, time.October, 8, 22, 0, 0, 0, time.UTC)

	if got := MoonPhase(day); got != "New Moon" {
		t.Fatalf("expected New Moon for day 8, got %q", got)
	}
	if got := MoonPhase(day.Add(-20 * time.Hour)); got != "New Moon" {
		t.Fatalf("expected phase to depend on the date only, got %q", got)
	}
	if got := MoonPhase(time.Date(2026, time.October, 12, 0, 0, 0, 0, time.UTC)); got != "Full Moon" {
		t.Fatalf("expected Full Moon for day 12, got %q", got)
	}

	sim := newTestSimulator()
	a := sim.Sample("nainital", day)
	b := sim.Sample("nainital", day)
	if a.MoonPhase != b.MoonPhase || a.MoonPhase != "New Moon" {
		t.Fatalf("expected stable moon phase, got %q and %q", a.MoonPhase, b.MoonPhase)
	}
}

func TestIsDaytimeBounds(t *testing.T) {
	cases := map[int]bool{5: false, 6: true, 12: true, 18: true, 19: false, 0: false}
	for hour, want := range cases {
		at := time.Date(2026, time.October, 14, hour, 59, 0, 0, time.UTC)
		if got := IsDaytime(at); got != want {
			t.Errorf("hour %d: expected %v, got %v", hour, want, got)
		}
	}
}

func TestSampleStaysWithinRanges(t *testing.T) {
	sim := newTestSimulator()
	base := DefaultRegistry().Lookup("beluwakhan").Baseline

	day := time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)
	night := time.Date(2026, time.October, 14, 23, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		d := sim.Sample("beluwakhan", day)
		if d.Temperature < base.TemperatureC-0.05 || d.Temperature > base.TemperatureC+4.05 {
			t.Fatalf("daytime temperature %.1f out of range", d.Temperature)
		}
		if d.UVIndex < 1 {
			t.Fatalf("expected daytime uv index, got %d", d.UVIndex)
		}

		n := sim.Sample("beluwakhan", night)
		if n.Temperature < base.TemperatureC-4.05 || n.Temperature > base.TemperatureC+0.05 {
			t.Fatalf("night temperature %.1f out of range", n.Temperature)
		}
		if n.UVIndex != 0 {
			t.Fatalf("expected zero uv index at night, got %d", n.UVIndex)
		}

		for _, r := range []Reading{d, n} {
			if r.Humidity < 20 || r.Humidity > 90 {
				t.Fatalf("humidity %d not clamped", r.Humidity)
			}
			if r.CloudCover < 0 || r.CloudCover > 60 {
				t.Fatalf("cloud cover %d out of range", r.CloudCover)
			}
			if r.WindSpeed < 0 {
				t.Fatalf("negative wind speed %.1f", r.WindSpeed)
			}
			if r.Pressure < base.PressureHpa-3.05 || r.Pressure > base.PressureHpa+3.05 {
				t.Fatalf("pressure %.1f out of range", r.Pressure)
			}
		}
	}
}

func TestSampleFixedFields(t *testing.T) {
	sim := newTestSimulator()
	now := time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)

	r := sim.Sample("mumbai", now)
	if r.Location != "Mumbai" {
		t.Fatalf("expected Mumbai, got %q", r.Location)
	}
	if r.Sunrise != "06:30" || r.Sunset != "18:00" {
		t.Fatalf("unexpected sun times %s/%s", r.Sunrise, r.Sunset)
	}
	if r.APISource != SimulationSource {
		t.Fatalf("unexpected source %q", r.APISource)
	}
	if r.CurrentTime != "2026-10-14T10:00:00Z" {
		t.Fatalf("unexpected current time %q", r.CurrentTime)
	}

	if got := sim.Sample("nowhere", now).Location; got != "Beluwakhan" {
		t.Fatalf("expected fallback to Beluwakhan, got %q", got)
	}
}
