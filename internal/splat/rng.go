package splat

import (
	"math/rand/v2"
)

// Source is the randomness used by the line generators.
//
// *rand.Rand from math/rand/v2 satisfies it; NewRand builds a seeded one.
type Source interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
	// NormFloat64 returns a standard normal sample.
	NormFloat64() float64
}

// NewRand returns a deterministic generator for seed. Equal seeds produce
// equal sequences, which keeps runs reproducible.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// openUnit returns a uniform float in (0, 1].
func openUnit(rng Source) float64 {
	return 1 - rng.Float64()
}
