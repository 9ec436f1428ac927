package rng

import (
	"math"
	"math/bits"
)

// one is the IEEE-754 binary64 bit pattern of 1.0.
const one = uint64(0x3ff) << 52

// Real01 draws one word from e and returns a float64 uniformly distributed in
// [0, 1) with spacing 2^-52.
//
// The high 52 bits of the word become the mantissa of a value in [1, 2), and
// 1 is subtracted. A word of 0 yields exactly 0; a word of 2^64-1 yields
// 1 - 2^-52.
func Real01(e Engine) float64 {
	return math.Float64frombits(one|e.Uint64()>>12) - 1.0
}

// RealBetween returns (hi-lo) * Real01(e).
//
// Note that lo is not added back: the result lies in [0, hi-lo), not [lo, hi).
// Existing sequences depend on this, so it is kept as is. Use RealRange for
// the conventional interval.
func RealBetween(e Engine, lo, hi float64) float64 {
	return (hi - lo) * Real01(e)
}

// RealRange returns a float64 uniformly distributed in [lo, hi).
func RealRange(e Engine, lo, hi float64) float64 {
	return lo + (hi-lo)*Real01(e)
}

// Bounded returns an integer in [0, n) using one draw and the high word of the
// 128-bit product n*w. The bias is at most n/2^64.
//
// Bounded panics if n is 0.
func Bounded(e Engine, n uint64) uint64 {
	if n == 0 {
		panic("rng: Bounded called with n == 0")
	}
	hi, _ := bits.Mul64(n, e.Uint64())
	return hi
}

// BoundedRejection returns an integer in [0, n) with no bias at all, by
// discarding draws below (2^64 - n) mod n. It needs fewer than two draws on
// average for any n.
//
// BoundedRejection panics if n is 0.
func BoundedRejection(e Engine, n uint64) uint64 {
	if n == 0 {
		panic("rng: BoundedRejection called with n == 0")
	}
	threshold := -n % n
	for {
		w := e.Uint64()
		if w >= threshold {
			return w % n
		}
	}
}
