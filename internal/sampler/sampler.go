// Package sampler draws large numbers of values across several goroutines,
// giving each goroutine its own xoshiro256** stream.
package sampler

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/xoshiro/internal/statistics"
	"github.com/lox/xoshiro/rng"
)

// checkEvery is how many draws a worker makes between context checks.
const checkEvery = 4096

// Config describes a sampling run
type Config struct {
	Workers int
	Draws   int
	Bound   uint64
	Seed    uint64
}

// Validate checks the run configuration
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Draws < 1 {
		return fmt.Errorf("draws must be at least 1, got %d", c.Draws)
	}
	if c.Bound < 1 {
		return fmt.Errorf("bound must be at least 1, got %d", c.Bound)
	}
	return nil
}

// Streams returns one generator per worker. The first is xoshiro256** seeded
// with seed; each following stream starts 2^128 draws after the previous one.
func Streams(seed uint64, workers int) []*rng.Xoshiro256 {
	master := rng.NewXoshiro256(seed)
	streams := make([]*rng.Xoshiro256, workers)
	for w := range streams {
		stream := *master
		streams[w] = &stream
		master.Jump()
	}
	return streams
}

// split returns the number of draws assigned to worker w
func split(draws, workers, w int) int {
	n := draws / workers
	if w < draws%workers {
		n++ // Distribute remainder draws
	}
	return n
}

// orDiscard returns logger, or a logger that drops everything if it is nil
func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}

// Histogram draws cfg.Draws values of Bounded(cfg.Bound) spread over
// cfg.Workers streams and returns their counts. A nil logger is allowed.
func Histogram(ctx context.Context, cfg Config, logger *log.Logger) (*statistics.Histogram, error) {
	logger = orDiscard(logger)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Bound > 1<<24 {
		return nil, fmt.Errorf("bound %d is too large for a histogram", cfg.Bound)
	}

	streams := Streams(cfg.Seed, cfg.Workers)
	results := make([]*statistics.Histogram, cfg.Workers)

	g, ctx := errgroup.WithContext(ctx)
	for w, stream := range streams {
		draws := split(cfg.Draws, cfg.Workers, w)
		g.Go(func() error {
			h := statistics.NewHistogram(int(cfg.Bound))
			for i := range draws {
				if i%checkEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				h.Add(stream.Bounded(cfg.Bound))
			}
			results[w] = h
			logger.Debug("Worker finished", "worker", w, "draws", draws)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sampling interrupted: %w", err)
	}

	total := statistics.NewHistogram(int(cfg.Bound))
	for _, h := range results {
		if err := total.Merge(h); err != nil {
			return nil, err
		}
	}
	if err := total.Validate(uint64(cfg.Draws)); err != nil {
		return nil, err
	}

	logger.Info("Sampling complete",
		"workers", cfg.Workers,
		"draws", cfg.Draws,
		"bound", cfg.Bound,
		"chiSquare", total.ChiSquare())
	return total, nil
}

// Real01Moments draws cfg.Draws values of Real01 spread over cfg.Workers
// streams and returns their summary statistics. cfg.Bound is ignored. A nil
// logger is allowed.
func Real01Moments(ctx context.Context, cfg Config, logger *log.Logger) (statistics.Moments, error) {
	logger = orDiscard(logger)
	cfg.Bound = 1
	if err := cfg.Validate(); err != nil {
		return statistics.Moments{}, err
	}

	streams := Streams(cfg.Seed, cfg.Workers)
	results := make([]statistics.Moments, cfg.Workers)

	g, ctx := errgroup.WithContext(ctx)
	for w, stream := range streams {
		draws := split(cfg.Draws, cfg.Workers, w)
		g.Go(func() error {
			var m statistics.Moments
			for i := range draws {
				if i%checkEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				m.Add(stream.Real01())
			}
			results[w] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return statistics.Moments{}, fmt.Errorf("sampling interrupted: %w", err)
	}

	var total statistics.Moments
	for _, m := range results {
		total.Merge(m)
	}

	logger.Info("Sampling complete",
		"workers", cfg.Workers,
		"draws", cfg.Draws,
		"mean", total.Mean())
	return total, nil
}
