package weather

import (
	"math"
	"math/rand/v2"
)

// Rand is the source of noise for the simulator. *rand.Rand satisfies it.
// A Rand shared between goroutines must be safe for concurrent use.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// DefaultRand draws from the math/rand/v2 global source, which is safe for concurrent use.
func DefaultRand() Rand {
	return globalRand{}
}

// NewSeededRand returns a deterministic source. Not safe for concurrent use.
func NewSeededRand(seed1, seed2 uint64) Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// uniform draws from [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// intBetween draws an integer from [lo, hi] inclusive.
func intBetween(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

func choice[T any](r Rand, items []T) T {
	return items[r.IntN(len(items))]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
