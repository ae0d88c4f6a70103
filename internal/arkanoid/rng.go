package arkanoid

import (
	"math"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// rng is a deterministic LCG pseudo-random number generator. Level
// generation and particle bursts must reproduce identically across
// platforms, so the simulation never touches math/rand's global state.
type rng struct {
	state uint64
}

func newRNG(seed int64) *rng {
	s := uint64(seed)
	if s == 0 {
		s = 1
	}
	return &rng{state: s}
}

func (r *rng) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *rng) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}

// Float64 returns a random float64 in [0, 1).
func (r *rng) Float64() float64 {
	return float64(r.next()>>11) / float64(1<<53)
}

// Range returns a random float64 in [lo, hi).
func (r *rng) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// coordSeed hashes quantized world coordinates into an RNG seed. Seeding
// from integer-quantized positions keeps bursts reproducible without
// depending on platform float-to-int conversion quirks.
func coordSeed(p core.Vec) int64 {
	qx := int64(math.Round(p.X() * 8))
	qy := int64(math.Round(p.Y() * 8))
	return qx*73856093 ^ qy*19349663
}
