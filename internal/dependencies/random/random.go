package random

import (
	"time"

	"golang.org/x/exp/rand"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// SeededRandom implements Random on top of a seeded PCG source, so a game
// can be replayed exactly from its seed.
type SeededRandom struct {
	rng  *rand.Rand
	seed uint64
}

// New creates a SeededRandom. A zero seed picks one from the wall clock.
func New(seed int64) *SeededRandom {
	s := uint64(seed)
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return &SeededRandom{
		rng:  rand.New(rand.NewSource(s)),
		seed: s,
	}
}

// Seed returns the seed the generator was created with
func (r *SeededRandom) Seed() uint64 {
	return r.seed
}

// Intn returns a pseudo-random int in [0, n), or 0 when n <= 0
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}
