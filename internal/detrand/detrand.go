// Package detrand provides the deterministic hash and fraction sequence
// the generators are built on. Both functions are pure: the whole engine
// derives every "random" draw from a string seed key, so re-running a
// query reproduces its results exactly.
package detrand

import "math"

// Hash maps a seed key to a non-negative integer. It is the polynomial
// rolling hash with multiplier 31, accumulated with 32-bit signed
// wraparound, returning the absolute value of the final accumulator.
// The wrapping arithmetic is part of the contract: changing it breaks
// reproducibility against reference result sets.
func Hash(key string) int {
	var h int32
	for _, c := range key {
		h = h*31 + c
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v)
}

// Frac maps a non-negative integer seed to a fraction in [0, 1).
// Stateless by design: the same seed always yields the same fraction,
// so callers draw sequences by stepping the seed (base + i*stride)
// rather than by consuming a shared stream.
func Frac(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

// Pick returns an index in [0, n) chosen by a single draw from seed.
func Pick(seed, n int) int {
	return int(Frac(seed) * float64(n))
}
