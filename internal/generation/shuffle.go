package generation

// Order returns a permutation of [0, n) fixed by seed
func Order(n int, seed uint64) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rng := NewRNG(mix(seed, uint64(n)))
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx
}

// Shuffle returns a reordered copy of items; items itself is not modified
func Shuffle[T any](items []T, seed uint64) []T {
	out := make([]T, len(items))
	for i, j := range Order(len(items), seed) {
		out[i] = items[j]
	}
	return out
}
