package core

import "math"

// RNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG so a whole session can be replayed from its seed.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// State returns the internal state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}

// SetState restores a state captured with State.
func (r *RNG) SetState(s uint64) {
	r.state = s
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// The low bits of an LCG cycle with short periods; use the high ones.
	return int((r.Next() >> 11) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	// Top 53 bits map exactly onto the float64 mantissa.
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a random float64 in [min, max).
func (r *RNG) Range(min, max float64) float64 {
	return r.Float64()*(max-min) + min
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.Float64() < p
}

// Angle returns a random angle in [0, 2π).
func (r *RNG) Angle() float64 {
	return r.Range(0, 2*math.Pi)
}

// Choice returns a uniformly random element of items.
// Returns the zero value for an empty slice.
func Choice[T any](r *RNG, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.Intn(len(items))]
}
