package montecarlo

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolate/percolation"
)

// Estimator runs independent percolation trials on n×n grids.
// Its configuration is fixed at construction; Run may be called repeatedly
// and, with the same seed, returns the same thresholds each time.
type Estimator struct {
	n       int
	trials  int
	seed    uint64
	opts    Options
	logger  *zap.Logger
	metrics *metrics
}

// New validates n and trials and prepares an Estimator.
// Returns ErrInvalidSize if n ≤ 0, ErrInvalidTrials if trials ≤ 0, or the
// Registerer's error if the metrics cannot be registered.
func New(n, trials int, opts Options) (*Estimator, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	opts.normalize()

	m, err := newMetrics(opts.Registerer)
	if err != nil {
		return nil, fmt.Errorf("montecarlo: register metrics: %w", err)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Estimator{
		n:       n,
		trials:  trials,
		seed:    seed,
		opts:    opts,
		logger:  opts.Logger,
		metrics: m,
	}, nil
}

// Size returns the grid dimension n.
func (e *Estimator) Size() int { return e.n }

// Trials returns the number of trials per Run.
func (e *Estimator) Trials() int { return e.trials }

// Seed returns the master seed in effect, including one derived from the clock.
func (e *Estimator) Seed() uint64 { return e.seed }

// RunTrial performs one trial on a fresh grid using rng and returns the
// fraction of sites open when the grid first percolated.
// Re-drawing an already open site is allowed and simply makes no progress.
func (e *Estimator) RunTrial(rng *rand.Rand) (float64, error) {
	return e.runTrial(e.opts.Ctx, rng)
}

func (e *Estimator) runTrial(ctx context.Context, rng *rand.Rand) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	g, err := percolation.New(e.n)
	if err != nil {
		return 0, err
	}
	// A 1×1 grid percolates before any open: both sentinels share its site.
	for draws := 1; g.NumberOfOpenSites() == 0 || !g.Percolates(); draws++ {
		if draws%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if err := g.Open(rng.IntN(e.n)+1, rng.IntN(e.n)+1); err != nil {
			return 0, err
		}
	}

	return g.OpenFraction(), nil
}

// Run executes all trials, at most Options.Workers at a time, and returns
// their aggregated Result. Trial i draws from its own PCG(seed, i) stream
// and writes only its own slot, so no state is shared between trials.
// The Result is built only after every trial has finished.
// Returns the context error if Options.Ctx is cancelled mid-run.
func (e *Estimator) Run() (*Result, error) {
	e.logger.Info("starting percolation trials",
		zap.Int("size", e.n),
		zap.String("sites", humanize.Comma(int64(e.n)*int64(e.n))),
		zap.Int("trials", e.trials),
		zap.Int("workers", e.opts.Workers),
		zap.Uint64("seed", e.seed),
	)

	thresholds := make([]float64, e.trials)
	start := time.Now()
	g, ctx := errgroup.WithContext(e.opts.Ctx)
	g.SetLimit(e.opts.Workers)
	for i := 0; i < e.trials; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(e.seed, uint64(i)))
			t0 := time.Now()
			p, err := e.runTrial(ctx, rng)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			thresholds[i] = p
			e.metrics.observe(p, time.Since(t0))
			e.logger.Debug("trial finished", zap.Int("trial", i), zap.Float64("threshold", p))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Warn("percolation trials aborted", zap.Error(err))
		return nil, err
	}
	if err := e.opts.Ctx.Err(); err != nil {
		return nil, err
	}

	res, err := NewResult(thresholds, time.Since(start))
	if err != nil {
		return nil, err
	}
	e.logger.Info("percolation trials finished",
		zap.Int("trials", e.trials),
		zap.Float64("mean", res.Mean()),
		zap.Float64("stddev", res.StdDev()),
		zap.Duration("elapsed", res.Elapsed()),
	)

	return res, nil
}
