package age

// crackRNG is a plain linear-congruential generator (Numerical Recipes
// constants). It exists so crack placement is byte-reproducible for a given
// seed: the global math/rand source would tie output to runtime internals.
type crackRNG struct {
	state uint32
}

func newCrackRNG(seed int64) *crackRNG {
	return &crackRNG{state: uint32(seed)}
}

func (r *crackRNG) next() uint32 {
	r.state = r.state*1664525 + 1013904223
	return r.state
}

// Float64 returns the next sample in [0, 1).
func (r *crackRNG) Float64() float64 {
	return float64(r.next()) / (1 << 32)
}

// Range returns the next sample in [lo, hi).
func (r *crackRNG) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
