package rng

// goldenGamma is the SplitMix64 increment, 2^64 divided by the golden ratio
// and rounded to the nearest odd integer.
const goldenGamma = 0x9e3779b97f4a7c15

// SplitMix64 is a 64-bit generator with a single word of state. Every state is
// valid and the sequence has period 2^64.
//
// It is mostly used here to expand a single seed into the state of larger
// generators.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64 creates a generator whose state is exactly seed.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// NewSplitMix64FromEntropy creates a generator seeded by DefaultSeeder.
func NewSplitMix64FromEntropy() *SplitMix64 {
	return DefaultSeeder.SplitMix64()
}

// Uint64 advances the state and returns the next output.
func (r *SplitMix64) Uint64() uint64 {
	r.state += goldenGamma
	return mix64(r.state)
}

// State returns the current counter value.
func (r *SplitMix64) State() uint64 {
	return r.state
}

// Min returns the smallest value Uint64 can return.
func (r *SplitMix64) Min() uint64 { return Min }

// Max returns the largest value Uint64 can return.
func (r *SplitMix64) Max() uint64 { return Max }

// Real01 returns a uniform float64 in [0, 1).
func (r *SplitMix64) Real01() float64 {
	return Real01(r)
}

// RealBetween returns (hi-lo) * Real01(). See the package-level RealBetween.
func (r *SplitMix64) RealBetween(lo, hi float64) float64 {
	return RealBetween(r, lo, hi)
}

// RealRange returns a uniform float64 in [lo, hi).
func (r *SplitMix64) RealRange(lo, hi float64) float64 {
	return RealRange(r, lo, hi)
}

// Bounded returns a uniform integer in [0, n). It panics if n is 0.
func (r *SplitMix64) Bounded(n uint64) uint64 {
	return Bounded(r, n)
}

// mix64 is the SplitMix64 output finalizer (variant 13 of Stafford's mixers).
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// BoundedRejection returns an exactly uniform integer in [0, n). It panics if
// n is 0.
func (r *SplitMix64) BoundedRejection(n uint64) uint64 {
	return BoundedRejection(r, n)
}
