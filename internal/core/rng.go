package core

// RNG is a deterministic pseudo-random number generator (xorshift64).
// The seed is threaded explicitly: two generators built with the same seed
// produce identical streams indefinitely, and there is no global state.
// It is used only during level generation; per-move transitions take no
// randomness.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed)
	if s == 0 {
		s = 88172645463325252 // Default seed
	}
	return &RNG{state: s}
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns a random int in [lo, hi] inclusive.
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.Float() < p
}

// Direction returns a uniformly random direction.
func (r *RNG) Direction() Direction {
	return Directions[r.Intn(len(Directions))]
}

// Shuffle randomizes the order of n elements via the swap callback
// (Fisher–Yates).
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// DeriveSeed mixes a base seed with a salt (level index, retry counter)
// into a new seed. Used so retries and per-level streams stay reproducible
// from a single game seed.
func DeriveSeed(seed int64, salt int64) int64 {
	x := uint64(seed) ^ (uint64(salt)+0x9E3779B97F4A7C15)*0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return int64(x)
}
