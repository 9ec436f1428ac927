// Package rng implements the SplitMix64 and xoshiro256** pseudo-random number
// generators together with engine-agnostic helpers for uniform doubles and
// unbiased bounded integers.
//
// Engines are not safe for concurrent use. Give each goroutine its own engine,
// either seeded independently or split off a parent with (*Xoshiro256).Jump.
//
// The generators are not cryptographically secure.
package rng
