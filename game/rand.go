package game

import (
	"math/rand"
	"time"
)

// Rand supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
