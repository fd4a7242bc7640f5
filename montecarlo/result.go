package montecarlo

import (
	"math"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Result is the immutable outcome of a completed Run.
// Aggregates are computed on first access and cached; the computed flag
// is the sync.Once, not the cached values themselves.
type Result struct {
	thresholds []float64
	elapsed    time.Duration

	once     sync.Once
	mean     float64
	variance float64
}

// NewResult aggregates an externally produced sample of thresholds.
// The slice is copied. Returns ErrNoThresholds if it is empty.
func NewResult(thresholds []float64, elapsed time.Duration) (*Result, error) {
	if len(thresholds) == 0 {
		return nil, ErrNoThresholds
	}
	cp := make([]float64, len(thresholds))
	copy(cp, thresholds)

	return &Result{thresholds: cp, elapsed: elapsed}, nil
}

// compute fills mean and variance exactly once.
func (r *Result) compute() {
	r.once.Do(func() {
		if len(r.thresholds) == 1 {
			r.mean = r.thresholds[0]
			return
		}
		mean, variance := stat.MeanVariance(r.thresholds, nil)
		r.mean = mean
		r.variance = math.Max(variance, 0)
	})
}

// Trials returns the sample size T.
func (r *Result) Trials() int { return len(r.thresholds) }

// Elapsed returns the wall-clock duration of the trial phase.
func (r *Result) Elapsed() time.Duration { return r.elapsed }

// Thresholds returns a copy of the per-trial thresholds in trial order.
func (r *Result) Thresholds() []float64 {
	cp := make([]float64, len(r.thresholds))
	copy(cp, r.thresholds)
	return cp
}

// Mean returns the arithmetic mean of the thresholds.
func (r *Result) Mean() float64 {
	r.compute()
	return r.mean
}

// StdDev returns the spread statistic Σ(tᵢ-mean)² / (T-1), or 0 when T = 1.
// The value is the unbiased sample variance with no square root taken; it
// is reported as the standard deviation and is what the confidence
// interval is built from.
func (r *Result) StdDev() float64 {
	r.compute()
	return r.variance
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval,
// mean - 1.96·stddev/√T.
func (r *Result) ConfidenceLo() float64 {
	return r.Mean() - r.halfWidth()
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval,
// mean + 1.96·stddev/√T.
func (r *Result) ConfidenceHi() float64 {
	return r.Mean() + r.halfWidth()
}

func (r *Result) halfWidth() float64 {
	return z95 * r.StdDev() / math.Sqrt(float64(len(r.thresholds)))
}
