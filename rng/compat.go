package rng

import (
	mathrand "math/rand"
	"math/rand/v2"
)

// NewRand returns a math/rand/v2 Rand driven by xoshiro256** seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(NewXoshiro256(seed))
}

// legacySource adapts Xoshiro256 to the math/rand Source64 interface.
type legacySource struct {
	x Xoshiro256
}

// NewLegacySource returns a math/rand Source64 driven by xoshiro256** seeded
// with seed, for code that still takes a *math/rand.Rand.
func NewLegacySource(seed int64) mathrand.Source64 {
	return &legacySource{x: *NewXoshiro256(uint64(seed))}
}

func (l *legacySource) Uint64() uint64 {
	return l.x.Uint64()
}

func (l *legacySource) Int63() int64 {
	return int64(l.x.Uint64() >> 1)
}

func (l *legacySource) Seed(seed int64) {
	l.x = *NewXoshiro256(uint64(seed))
}
