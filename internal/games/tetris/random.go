package tetris

import (
	"math/rand"
	"time"
)

// Selector produces piece indexes for spawning.
type Selector interface {
	// Next returns a uniformly distributed integer in [min, max].
	Next(min, max int) int
}

type randSelector struct {
	rng *rand.Rand
}

// NewSelector returns a Selector backed by math/rand.
// A zero seed seeds from the clock, so runs are not reproducible.
func NewSelector(seed int64) Selector {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randSelector{rng: rand.New(rand.NewSource(seed))}
}

func (r *randSelector) Next(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}
