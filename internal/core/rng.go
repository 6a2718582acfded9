package core

import "math/rand"

// RNG is the randomness source used by board generation.
// *rand.Rand satisfies it; tests may inject scripted sources.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// NewRNG creates a seeded RNG.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
