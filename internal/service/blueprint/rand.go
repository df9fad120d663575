package blueprint

import (
	"math/rand"
	"time"
)

// Rand is the source of presentational jitter. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source, or a time-seeded one when seed is 0.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// FixedRand always returns the same value. Useful where jitter must be pinned.
type FixedRand float64

func (f FixedRand) Float64() float64 {
	return float64(f)
}
