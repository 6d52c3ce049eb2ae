// Package generation produces the deterministic pseudo-random output used
// by the site: card orderings and decorative effect frames.
package generation

// RNG is a small deterministic LCG. The same seed always produces the same
// sequence, which keeps card orders and star fields stable across requests.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed
func NewRNG(seed uint64) *RNG {
	return &RNG{state: seed}
}

// Uint64 returns a pseudo-random uint64
func (r *RNG) Uint64() uint64 {
	// LCG parameters from Numerical Recipes
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a pseudo-random float64 in [0, 1)
func (r *RNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Intn returns a pseudo-random int in [0, n)
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Uint64() % uint64(n))
}

// Range returns a pseudo-random float64 in [min, max)
func (r *RNG) Range(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// mix derives an independent seed from a base seed and a key
func mix(seed, key uint64) uint64 {
	z := seed + key*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
