package rng

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/xoshiro/internal/randutil"
)

// EntropySource returns an unpredictable 64-bit word.
type EntropySource func() (uint64, error)

// SystemEntropy reads from the operating system's entropy source.
var SystemEntropy EntropySource = randutil.Read64

// DefaultSeeder seeds the *FromEntropy constructors.
var DefaultSeeder = &Seeder{
	Entropy: SystemEntropy,
	Clock:   quartz.NewReal(),
	Logger:  log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel, Prefix: "rng"}),
}

// Seeder produces seeds from an entropy source, falling back to the clock when
// the source fails. A nil Entropy or Clock falls back to the system one; a nil
// Logger silences the fallback warning.
type Seeder struct {
	Entropy EntropySource
	Clock   quartz.Clock
	Logger  *log.Logger
}

// StrictSeed returns a word from the entropy source, or the source's error.
func (s *Seeder) StrictSeed() (uint64, error) {
	src := s.Entropy
	if src == nil {
		src = SystemEntropy
	}
	seed, err := src()
	if err != nil {
		return 0, fmt.Errorf("entropy source: %w", err)
	}
	return seed, nil
}

// Seed returns a word from the entropy source. If the source fails, the error
// is logged and a seed derived from the current time is returned instead.
func (s *Seeder) Seed() uint64 {
	seed, err := s.StrictSeed()
	if err == nil {
		return seed
	}

	clock := s.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	seed = mix64(randutil.ClockWord(clock) + goldenGamma)
	if s.Logger != nil {
		s.Logger.Warn("Falling back to clock seed", "error", err, "seed", seed)
	}
	return seed
}

// SplitMix64 returns a SplitMix64 seeded from s.
func (s *Seeder) SplitMix64() *SplitMix64 {
	return NewSplitMix64(s.Seed())
}

// Xoshiro256 returns a xoshiro256** generator seeded from s.
func (s *Seeder) Xoshiro256() *Xoshiro256 {
	return NewXoshiro256(s.Seed())
}
