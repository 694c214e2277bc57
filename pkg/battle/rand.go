package battle

import "math/rand"

// Rand is the randomness provider for critical hits, misses and AI choices.
// *math/rand.Rand satisfies it; tests substitute scripted draws.
type Rand interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
	// Intn returns a non-negative number in [0, n). n > 0.
	Intn(n int) int
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
