package rng

import "math"

// Bounds advertised by every engine in this package.
const (
	Min uint64 = 0
	Max uint64 = math.MaxUint64
)

// Engine produces one uniformly distributed 64-bit word per call.
//
// The method set matches math/rand/v2.Source, so any Engine can back a
// *rand.Rand directly.
type Engine interface {
	Uint64() uint64
}

var (
	_ Engine = (*SplitMix64)(nil)
	_ Engine = (*Xoshiro256)(nil)
)
