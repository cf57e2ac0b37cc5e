package world

import "math/rand"

// RNG is the random source consumed by generation and spawning.
// Range returns an integer in [min, maxExclusive).
type RNG interface {
	Range(min, maxExclusive int) int
}

// Random is a seeded RNG backed by math/rand.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random source. Equal seeds yield equal sequences.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Range returns a value in [min, maxExclusive), or min when the range is empty.
func (r *Random) Range(min, maxExclusive int) int {
	if maxExclusive <= min {
		return min
	}
	return min + r.rng.Intn(maxExclusive-min)
}
