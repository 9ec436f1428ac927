// Package statistics accumulates summary statistics over generator output.
package statistics

import (
	"fmt"
	"math"
)

// Moments tracks running sums for real-valued samples
type Moments struct {
	N    int
	Sum  float64
	Sum2 float64 // Sum of squares for variance calculation
	Min  float64
	Max  float64
}

// Add incorporates a sample
func (m *Moments) Add(x float64) {
	if m.N == 0 || x < m.Min {
		m.Min = x
	}
	if m.N == 0 || x > m.Max {
		m.Max = x
	}
	m.N++
	m.Sum += x
	m.Sum2 += x * x
}

// Merge folds another set of moments into m
func (m *Moments) Merge(o Moments) {
	if o.N == 0 {
		return
	}
	if m.N == 0 || o.Min < m.Min {
		m.Min = o.Min
	}
	if m.N == 0 || o.Max > m.Max {
		m.Max = o.Max
	}
	m.N += o.N
	m.Sum += o.Sum
	m.Sum2 += o.Sum2
}

// Mean returns the arithmetic mean
func (m *Moments) Mean() float64 {
	if m.N == 0 {
		return 0
	}
	return m.Sum / float64(m.N)
}

// Variance returns the sample variance
func (m *Moments) Variance() float64 {
	if m.N < 2 {
		return 0
	}
	mean := m.Mean()
	return (m.Sum2 - float64(m.N)*mean*mean) / float64(m.N-1)
}

// StdDev returns the sample standard deviation
func (m *Moments) StdDev() float64 {
	return math.Sqrt(m.Variance())
}

// StdError returns the standard error of the mean
func (m *Moments) StdError() float64 {
	if m.N == 0 {
		return 0
	}
	return m.StdDev() / math.Sqrt(float64(m.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (m *Moments) ConfidenceInterval95() (float64, float64) {
	mean := m.Mean()
	margin := 1.96 * m.StdError()
	return mean - margin, mean + margin
}

// Histogram counts integer outcomes in [0, len(Counts))
type Histogram struct {
	Counts []uint64
}

// NewHistogram creates a histogram with n buckets
func NewHistogram(n int) *Histogram {
	return &Histogram{Counts: make([]uint64, n)}
}

// Add records one outcome
func (h *Histogram) Add(v uint64) {
	h.Counts[v]++
}

// Merge adds the counts of o into h
func (h *Histogram) Merge(o *Histogram) error {
	if len(o.Counts) != len(h.Counts) {
		return fmt.Errorf("bucket mismatch: %d vs %d", len(h.Counts), len(o.Counts))
	}
	for i, c := range o.Counts {
		h.Counts[i] += c
	}
	return nil
}

// Total returns the number of recorded outcomes
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// Expected returns the per-bucket count under a uniform distribution
func (h *Histogram) Expected() float64 {
	if len(h.Counts) == 0 {
		return 0
	}
	return float64(h.Total()) / float64(len(h.Counts))
}

// ChiSquare returns Pearson's chi-square statistic against the uniform
// distribution. The statistic has len(Counts)-1 degrees of freedom.
func (h *Histogram) ChiSquare() float64 {
	expected := h.Expected()
	if expected == 0 {
		return 0
	}
	var chi float64
	for _, c := range h.Counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	return chi
}

// Within reports whether every bucket count lies in [lo, hi]
func (h *Histogram) Within(lo, hi uint64) bool {
	for _, c := range h.Counts {
		if c < lo || c > hi {
			return false
		}
	}
	return true
}

// Tolerance returns the bucket bounds expected*(1-frac) and expected*(1+frac).
// The lower bound is clamped at zero for frac > 1.
func (h *Histogram) Tolerance(frac float64) (uint64, uint64) {
	expected := h.Expected()
	lo := math.Max(0, math.Floor(expected*(1-frac)))
	return uint64(lo), uint64(math.Ceil(expected * (1 + frac)))
}

// Validate checks the histogram against the number of draws that produced it
func (h *Histogram) Validate(draws uint64) error {
	if len(h.Counts) == 0 {
		return fmt.Errorf("histogram has no buckets")
	}
	if total := h.Total(); total != draws {
		return fmt.Errorf("count mismatch: recorded %d outcomes for %d draws", total, draws)
	}
	return nil
}
