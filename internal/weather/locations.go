package weather

import (
	"golang.org/x/text/cases"
)

// Baseline holds the reference climate a location's readings are centred on.
type Baseline struct {
	TemperatureC float64
	HumidityPct  int
	WindSpeed    float64
	PressureHpa  float64
}

// LocationProfile is an immutable registry entry.
type LocationProfile struct {
	Key         string   `json:"key"`
	DisplayName string   `json:"name"`
	Baseline    Baseline `json:"-"`
}

// Registry maps location keys to profiles. It is read-only once built and
// safe to share between requests.
type Registry struct {
	profiles []LocationProfile
	byKey    map[string]int
}

// NewRegistry builds a registry from profiles. The first profile is the
// fallback for unknown keys. profiles must not be empty.
func NewRegistry(profiles ...LocationProfile) *Registry {
	r := &Registry{
		profiles: make([]LocationProfile, 0, len(profiles)),
		byKey:    make(map[string]int, len(profiles)),
	}
	for _, p := range profiles {
		k := foldKey(p.Key)
		if _, dup := r.byKey[k]; dup {
			continue
		}
		r.byKey[k] = len(r.profiles)
		r.profiles = append(r.profiles, p)
	}
	return r
}

// DefaultRegistry returns the built-in set of observing sites.
func DefaultRegistry() *Registry {
	return NewRegistry(
		LocationProfile{Key: "beluwakhan", DisplayName: "Beluwakhan", Baseline: Baseline{TemperatureC: 15.2, HumidityPct: 65, WindSpeed: 2.1, PressureHpa: 965.5}},
		LocationProfile{Key: "nainital", DisplayName: "Nainital", Baseline: Baseline{TemperatureC: 12.8, HumidityPct: 58, WindSpeed: 1.8, PressureHpa: 967.2}},
		LocationProfile{Key: "delhi", DisplayName: "Delhi", Baseline: Baseline{TemperatureC: 22.5, HumidityPct: 72, WindSpeed: 3.2, PressureHpa: 1013.2}},
		LocationProfile{Key: "mumbai", DisplayName: "Mumbai", Baseline: Baseline{TemperatureC: 28.1, HumidityPct: 78, WindSpeed: 2.8, PressureHpa: 1012.8}},
	)
}

// Default returns the fallback profile.
func (r *Registry) Default() LocationProfile {
	return r.profiles[0]
}

// Lookup resolves key case-insensitively, falling back to Default.
func (r *Registry) Lookup(key string) LocationProfile {
	if i, ok := r.byKey[foldKey(key)]; ok {
		return r.profiles[i]
	}
	return r.Default()
}

// Known reports whether key names a registered location.
func (r *Registry) Known(key string) bool {
	_, ok := r.byKey[foldKey(key)]
	return ok
}

// Keys lists every location key in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.profiles))
	for i, p := range r.profiles {
		keys[i] = p.Key
	}
	return keys
}

// Profiles returns a copy of all profiles in registration order.
func (r *Registry) Profiles() []LocationProfile {
	out := make([]LocationProfile, len(r.profiles))
	copy(out, r.profiles)
	return out
}

// foldKey normalises a key for matching. Casers are stateful, so one is made per call.
func foldKey(key string) string {
	return cases.Fold().String(key)
}
