package montecarlo

import (
	"context"
	"errors"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Sentinel errors for estimator construction and aggregation.
var (
	// ErrInvalidSize indicates a grid size that is not strictly positive.
	ErrInvalidSize = errors.New("montecarlo: grid size must be greater than 0")
	// ErrInvalidTrials indicates a trial count that is not strictly positive.
	ErrInvalidTrials = errors.New("montecarlo: trial count must be greater than 0")
	// ErrNoThresholds indicates an attempt to aggregate an empty sample.
	ErrNoThresholds = errors.New("montecarlo: no thresholds to aggregate")
)

// z95 is the two-sided 95% quantile of the standard normal distribution.
const z95 = 1.96

// ctxCheckInterval is how many random draws a trial makes between
// cancellation checks.
const ctxCheckInterval = 1024

// Options configures an Estimator.
//
// Fields:
//   - Seed       — master seed; trial i draws from PCG(Seed, i).
//     Zero means "derive from the wall clock".
//   - Workers    — maximum number of trials running at once.
//     Zero or negative means runtime.GOMAXPROCS(0).
//   - Logger     — structured logger; nil means zap.NewNop().
//   - Registerer — where trial metrics are registered; nil disables metrics.
//   - Ctx        — cancels a run in progress; nil means context.Background().
type Options struct {
	Seed       uint64
	Workers    int
	Logger     *zap.Logger
	Registerer prometheus.Registerer
	Ctx        context.Context
}

// DefaultOptions returns Options with a clock-derived seed, one worker per
// available CPU, no logging and no metrics.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zap.NewNop(),
		Ctx:     context.Background(),
	}
}

// normalize fills zero-valued fields with their defaults.
func (o *Options) normalize() {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}
