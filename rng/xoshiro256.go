package rng

import (
	"errors"
	"math/bits"
)

// ErrZeroState is returned when restoring an all-zero xoshiro256** state,
// which is a fixed point of the update function.
var ErrZeroState = errors.New("xoshiro256: state must not be all zero")

// Jump polynomials for xoshiro256, from the reference implementation by
// Blackman and Vigna.
var (
	jumpPoly     = [4]uint64{0x180ec6d33cfd0aba, 0xd5a61266f0c9392c, 0xa9582618e03fc9aa, 0x39abdc4529b1661c}
	longJumpPoly = [4]uint64{0x76e15d3efefdcbbf, 0xc5004e441c522fb3, 0x77710069854ee241, 0x39109bb02acbe635}
)

// Xoshiro256 is the xoshiro256** generator: 256 bits of state, 64-bit output,
// period 2^256 - 1.
//
// A Xoshiro256 value may be copied; the copy continues the same sequence
// independently of the original.
type Xoshiro256 struct {
	s [4]uint64
}

// NewXoshiro256 seeds a generator by drawing four consecutive outputs of
// SplitMix64(seed) into s[0], s[1], s[2] and s[3].
func NewXoshiro256(seed uint64) *Xoshiro256 {
	sm := SplitMix64{state: seed}
	x := &Xoshiro256{}
	for i := range x.s {
		x.s[i] = sm.Uint64()
	}
	return x
}

// NewXoshiro256FromEntropy creates a generator seeded by DefaultSeeder.
func NewXoshiro256FromEntropy() *Xoshiro256 {
	return DefaultSeeder.Xoshiro256()
}

// NewXoshiro256FromState restores a generator from a state previously returned
// by State.
func NewXoshiro256FromState(s [4]uint64) (*Xoshiro256, error) {
	if s == [4]uint64{} {
		return nil, ErrZeroState
	}
	return &Xoshiro256{s: s}, nil
}

// Uint64 advances the state and returns the next output.
func (x *Xoshiro256) Uint64() uint64 {
	result := bits.RotateLeft64(x.s[1]*5, 7) * 9

	t := x.s[1] << 17

	// s[2] must absorb s[0] before s[1] absorbs s[2].
	x.s[2] ^= x.s[0]
	x.s[3] ^= x.s[1]
	x.s[1] ^= x.s[2]
	x.s[0] ^= x.s[3]

	x.s[2] ^= t

	x.s[3] = bits.RotateLeft64(x.s[3], 45)

	return result
}

// State returns a copy of the four state words.
func (x *Xoshiro256) State() [4]uint64 {
	return x.s
}

// Jump advances the generator by 2^128 draws. Calling Jump on a copy of a
// generator yields 2^128 non-overlapping subsequences for parallel use.
func (x *Xoshiro256) Jump() {
	x.jump(&jumpPoly)
}

// LongJump advances the generator by 2^192 draws.
func (x *Xoshiro256) LongJump() {
	x.jump(&longJumpPoly)
}

func (x *Xoshiro256) jump(poly *[4]uint64) {
	var s [4]uint64
	for _, word := range poly {
		for b := range 64 {
			if word&(1<<b) != 0 {
				s[0] ^= x.s[0]
				s[1] ^= x.s[1]
				s[2] ^= x.s[2]
				s[3] ^= x.s[3]
			}
			x.Uint64()
		}
	}
	x.s = s
}

// Min returns the smallest value Uint64 can return.
func (x *Xoshiro256) Min() uint64 { return Min }

// Max returns the largest value Uint64 can return.
func (x *Xoshiro256) Max() uint64 { return Max }

// Real01 returns a uniform float64 in [0, 1).
func (x *Xoshiro256) Real01() float64 {
	return Real01(x)
}

// RealBetween returns (hi-lo) * Real01(). See the package-level RealBetween.
func (x *Xoshiro256) RealBetween(lo, hi float64) float64 {
	return RealBetween(x, lo, hi)
}

// RealRange returns a uniform float64 in [lo, hi).
func (x *Xoshiro256) RealRange(lo, hi float64) float64 {
	return RealRange(x, lo, hi)
}

// Bounded returns a uniform integer in [0, n). It panics if n is 0.
func (x *Xoshiro256) Bounded(n uint64) uint64 {
	return Bounded(x, n)
}

// BoundedRejection returns an exactly uniform integer in [0, n). It panics if
// n is 0.
func (x *Xoshiro256) BoundedRejection(n uint64) uint64 {
	return BoundedRejection(x, n)
}
