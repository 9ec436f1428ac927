package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/lox/xoshiro/internal/config"
	"github.com/lox/xoshiro/internal/display"
	"github.com/lox/xoshiro/rng"
)

// Globals holds flags shared by every command and the state derived from them
type Globals struct {
	Config   string `short:"c" default:"xoshiro.hcl" help:"Path to HCL configuration file"`
	LogLevel string `help:"Log level (debug|info|warn|error), overrides config"`
	NoColor  bool   `help:"Disable coloured output"`

	out    io.Writer
	logger *log.Logger
	cfg    *config.Config
	seeder *rng.Seeder
}

// setup loads configuration and builds the logger
func (g *Globals) setup(out, errOut io.Writer) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	g.cfg = cfg
	g.out = out
	g.logger = newLogger(errOut, cfg.LogLevel)
	g.seeder = &rng.Seeder{
		Entropy: rng.SystemEntropy,
		Clock:   rng.DefaultSeeder.Clock,
		Logger:  g.logger,
	}
	display.SetColor(!g.NoColor)
	return nil
}

func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.New(w)
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// resolveSeed picks the seed flag, then the configured seed, then entropy
func (g *Globals) resolveSeed(flag string) (uint64, error) {
	if flag != "" {
		seed, err := strconv.ParseUint(flag, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid seed %q: %w", flag, err)
		}
		return seed, nil
	}
	if g.cfg.Seed != nil {
		return *g.cfg.Seed, nil
	}

	seed := g.seeder.Seed()
	g.logger.Info("Seeded from entropy", "seed", seed)
	return seed, nil
}

// generator is the method set shared by both engines
type generator interface {
	rng.Engine
	Real01() float64
	RealBetween(lo, hi float64) float64
	RealRange(lo, hi float64) float64
	Bounded(n uint64) uint64
	BoundedRejection(n uint64) uint64
	Max() uint64
}

func newGenerator(engine string, seed uint64) (generator, error) {
	switch engine {
	case config.EngineXoshiro256:
		return rng.NewXoshiro256(seed), nil
	case config.EngineSplitMix64:
		return rng.NewSplitMix64(seed), nil
	default:
		return nil, fmt.Errorf("unknown engine: %s (available: %s, %s)",
			engine, config.EngineXoshiro256, config.EngineSplitMix64)
	}
}
