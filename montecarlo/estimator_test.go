package montecarlo_test

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/percolate/montecarlo"
)

func testOptions(t *testing.T, seed uint64, workers int) montecarlo.Options {
	opts := montecarlo.DefaultOptions()
	opts.Seed = seed
	opts.Workers = workers
	opts.Logger = zaptest.NewLogger(t)
	return opts
}

// TestNew_InvalidArguments verifies that non-positive n or T are rejected.
func TestNew_InvalidArguments(t *testing.T) {
	cases := []struct {
		name      string
		n, trials int
		err       error
	}{
		{"ZeroSize", 0, 10, montecarlo.ErrInvalidSize},
		{"NegativeSize", -3, 10, montecarlo.ErrInvalidSize},
		{"ZeroTrials", 10, 0, montecarlo.ErrInvalidTrials},
		{"NegativeTrials", 10, -1, montecarlo.ErrInvalidTrials},
		{"BothBad", 0, 0, montecarlo.ErrInvalidSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			est, err := montecarlo.New(tc.n, tc.trials, montecarlo.DefaultOptions())
			require.Nil(t, est)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_ZeroOptions checks that a zero Options value is normalized.
func TestNew_ZeroOptions(t *testing.T) {
	est, err := montecarlo.New(3, 2, montecarlo.Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, est.Size())
	assert.Equal(t, 2, est.Trials())
	assert.NotZero(t, est.Seed(), "a zero seed is replaced by a clock-derived one")

	res, err := est.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, res.Trials())
}

// TestRunTrial_SingleSite checks that a 1×1 trial always yields 1.0.
func TestRunTrial_SingleSite(t *testing.T) {
	est, err := montecarlo.New(1, 1, testOptions(t, 1, 1))
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 10; i++ {
		p, err := est.RunTrial(rng)
		require.NoError(t, err)
		assert.Equal(t, 1.0, p)
	}
}

// TestRunTrial_Range checks that thresholds are whole-site fractions in
// [1/n, 1] for a range of grid sizes.
func TestRunTrial_Range(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for n := 2; n <= 12; n++ {
		est, err := montecarlo.New(n, 1, testOptions(t, 5, 1))
		require.NoError(t, err)

		p, err := est.RunTrial(rng)
		require.NoError(t, err)
		assert.Greater(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		assert.GreaterOrEqual(t, p, 1/float64(n), "a path needs at least n open sites")

		opened := p * float64(n*n)
		assert.InDelta(t, math.Round(opened), opened, 1e-9, "threshold must count whole sites")
	}
}

// TestRun_SingleSiteGrid checks the degenerate n=1 estimator for several T
// and worker counts. A fresh 1×1 grid already percolates, so every trial
// must still open its only site and report exactly 1.0.
func TestRun_SingleSiteGrid(t *testing.T) {
	for _, trials := range []int{1, 2, 10, 64} {
		est, err := montecarlo.New(1, trials, testOptions(t, 9, 4))
		require.NoError(t, err)

		res, err := est.Run()
		require.NoError(t, err)
		require.Equal(t, trials, res.Trials())
		for i, p := range res.Thresholds() {
			assert.Greater(t, p, 0.0, "T=%d trial %d", trials, i)
			assert.LessOrEqual(t, p, 1.0, "T=%d trial %d", trials, i)
		}
		assert.Equal(t, 1.0, res.Mean(), "T=%d", trials)
		assert.Equal(t, 0.0, res.StdDev(), "T=%d", trials)
		assert.Equal(t, 1.0, res.ConfidenceLo(), "T=%d", trials)
		assert.Equal(t, 1.0, res.ConfidenceHi(), "T=%d", trials)
		for _, p := range res.Thresholds() {
			assert.Equal(t, 1.0, p)
		}
	}
}

// TestRun_ThresholdsAndInterval checks ranges and interval ordering on a
// moderate grid.
func TestRun_ThresholdsAndInterval(t *testing.T) {
	est, err := montecarlo.New(20, 50, testOptions(t, 2024, 4))
	require.NoError(t, err)

	res, err := est.Run()
	require.NoError(t, err)
	require.Equal(t, 50, res.Trials())
	for i, p := range res.Thresholds() {
		assert.Greater(t, p, 0.0, "trial %d", i)
		assert.LessOrEqual(t, p, 1.0, "trial %d", i)
	}
	assert.LessOrEqual(t, res.ConfidenceLo(), res.Mean())
	assert.LessOrEqual(t, res.Mean(), res.ConfidenceHi())
	assert.Greater(t, res.StdDev(), 0.0)
	// The 2D site threshold is ≈ 0.5927; small grids stay in a loose band.
	assert.InDelta(t, 0.59, res.Mean(), 0.1)
	assert.True(t, res.Elapsed() > 0, "elapsed must be measured")
}

// TestRun_SmallGridsInRange runs several workers over tiny grids, where a
// trial can finish after very few opens, and checks every threshold.
func TestRun_SmallGridsInRange(t *testing.T) {
	for n := 1; n <= 4; n++ {
		est, err := montecarlo.New(n, 40, testOptions(t, uint64(100+n), 8))
		require.NoError(t, err)

		res, err := est.Run()
		require.NoError(t, err)
		for i, p := range res.Thresholds() {
			assert.GreaterOrEqual(t, p, 1/float64(n), "n=%d trial %d", n, i)
			assert.LessOrEqual(t, p, 1.0, "n=%d trial %d", n, i)
		}
		assert.LessOrEqual(t, res.ConfidenceLo(), res.Mean(), "n=%d", n)
		assert.LessOrEqual(t, res.Mean(), res.ConfidenceHi(), "n=%d", n)
	}
}

// TestRun_Reproducible checks that a fixed seed yields identical thresholds
// regardless of the number of workers.
func TestRun_Reproducible(t *testing.T) {
	run := func(workers int) []float64 {
		est, err := montecarlo.New(15, 24, testOptions(t, 77, workers))
		require.NoError(t, err)
		res, err := est.Run()
		require.NoError(t, err)
		return res.Thresholds()
	}

	serial := run(1)
	assert.Equal(t, serial, run(3))
	assert.Equal(t, serial, run(16))
}

// TestRun_DifferentSeeds checks that distinct seeds give distinct samples.
func TestRun_DifferentSeeds(t *testing.T) {
	a, err := montecarlo.New(30, 10, testOptions(t, 1, 2))
	require.NoError(t, err)
	b, err := montecarlo.New(30, 10, testOptions(t, 2, 2))
	require.NoError(t, err)

	ra, err := a.Run()
	require.NoError(t, err)
	rb, err := b.Run()
	require.NoError(t, err)
	assert.NotEqual(t, ra.Thresholds(), rb.Thresholds())
}

// TestRun_Cancelled checks that a cancelled context aborts the run.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := testOptions(t, 5, 2)
	opts.Ctx = ctx
	est, err := montecarlo.New(50, 100, opts)
	require.NoError(t, err)

	res, err := est.Run()
	require.Nil(t, res)
	require.ErrorIs(t, err, context.Canceled)

	_, err = est.RunTrial(rand.New(rand.NewPCG(1, 1)))
	require.ErrorIs(t, err, context.Canceled)
}
