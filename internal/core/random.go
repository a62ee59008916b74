package core

import "math/rand"

// Random is the uniform random source consumed by the simulation.
// *rand.Rand satisfies it.
type Random interface {
	Float64() float64 // [0, 1)
	Intn(n int) int   // [0, n)
}

// NewRandom returns a seeded source.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RangeF returns a uniform float in [lo, hi).
func RangeF(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
