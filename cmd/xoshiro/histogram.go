package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lox/xoshiro/internal/display"
	"github.com/lox/xoshiro/internal/fileutil"
	"github.com/lox/xoshiro/internal/sampler"
)

type HistogramCmd struct {
	Seed      string  `placeholder:"N" help:"64-bit seed, overrides config (default: entropy)"`
	Workers   int     `short:"w" help:"Parallel streams, overrides config"`
	Draws     int     `short:"n" help:"Total draws, overrides config"`
	Bound     uint64  `short:"b" help:"Exclusive upper bound, overrides config"`
	Tolerance float64 `default:"0.02" help:"Accepted relative deviation of each bucket from the expected count"`
	Report    string  `placeholder:"FILE" help:"Also write the table to FILE"`
}

// samplerConfig merges flags over the configured sampler settings
func samplerConfig(g *Globals, seedFlag string, workers, draws int, bound uint64) (sampler.Config, error) {
	seed, err := g.resolveSeed(seedFlag)
	if err != nil {
		return sampler.Config{}, err
	}
	cfg := sampler.Config{
		Workers: g.cfg.Sampler.Workers,
		Draws:   g.cfg.Sampler.Draws,
		Bound:   g.cfg.Sampler.Bound,
		Seed:    seed,
	}
	if workers != 0 {
		cfg.Workers = workers
	}
	if draws != 0 {
		cfg.Draws = draws
	}
	if bound != 0 {
		cfg.Bound = bound
	}
	return cfg, cfg.Validate()
}

func (c *HistogramCmd) Run(g *Globals) error {
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative")
	}
	cfg, err := samplerConfig(g, c.Seed, c.Workers, c.Draws, c.Bound)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g.logger.Info("Sampling bounded values",
		"workers", cfg.Workers,
		"draws", cfg.Draws,
		"bound", cfg.Bound,
		"seed", cfg.Seed)

	h, err := sampler.Histogram(ctx, cfg, g.logger)
	if err != nil {
		return err
	}

	lo, hi := h.Tolerance(c.Tolerance)
	table := display.Histogram(h, lo, hi)
	if _, err := io.WriteString(g.out, table); err != nil {
		return err
	}

	if c.Report != "" {
		err := fileutil.WriteAtomic(c.Report, 0o644, func(w io.Writer) error {
			_, err := io.WriteString(w, table)
			return err
		})
		if err != nil {
			return err
		}
		g.logger.Info("Wrote report", "file", c.Report)
	}

	if !h.Within(lo, hi) {
		return fmt.Errorf("distribution outside tolerance %.3f (seed %d)", c.Tolerance, cfg.Seed)
	}
	return nil
}

type MomentsCmd struct {
	Seed    string `placeholder:"N" help:"64-bit seed, overrides config (default: entropy)"`
	Workers int    `short:"w" help:"Parallel streams, overrides config"`
	Draws   int    `short:"n" help:"Total draws, overrides config"`
}

func (c *MomentsCmd) Run(g *Globals) error {
	cfg, err := samplerConfig(g, c.Seed, c.Workers, c.Draws, 0)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := sampler.Real01Moments(ctx, cfg, g.logger)
	if err != nil {
		return err
	}

	lo, hi := m.ConfidenceInterval95()
	_, err = fmt.Fprintf(g.out,
		"n=%d mean=%.6f (95%% CI %.6f..%.6f, uniform 0.5) variance=%.6f (uniform %.6f) min=%s max=%s\n",
		m.N, m.Mean(), lo, hi, m.Variance(), 1.0/12.0, formatFloat(m.Min), formatFloat(m.Max))
	return err
}
