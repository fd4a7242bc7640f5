// Package montecarlo estimates the site-percolation threshold of an n×n
// grid by repeated randomized trials.
//
// 🚀 What is a trial?
//
//	Start from an all-closed percolation.Grid and open uniformly random
//	sites (with replacement) until the system percolates. The fraction of
//	open sites at that moment is the trial's threshold, a value in (0, 1].
//
// ✨ Key features:
//   - trials run in parallel on a bounded errgroup, each with its own Grid
//     and its own PCG stream derived from (seed, trial index);
//   - a fixed seed reproduces the same thresholds for any worker count;
//   - aggregates (mean, stddev = Σ(tᵢ-mean)²/(T-1), 95% confidence
//     interval mean ∓ 1.96·stddev/√T) are computed once, after every
//     trial finished;
//   - optional Prometheus collectors and zap logging.
//
// ⚙️ Usage:
//
//	opts := montecarlo.DefaultOptions()
//	opts.Seed = 42
//	est, err := montecarlo.New(200, 100, opts)
//	if err != nil {
//	  // ErrInvalidSize or ErrInvalidTrials
//	}
//	res, err := est.Run()
//	fmt.Println(res.Mean(), res.StdDev(), res.ConfidenceLo(), res.ConfidenceHi())
//
// Single-trial policy: with T = 1 the (T-1) divisor is zero, so
// StdDev reports 0 and both confidence bounds equal the mean.
//
// Performance:
//
//   - Time:   O(T · n² log n) expected draws, spread over Workers goroutines.
//   - Memory: O(Workers · n²) for live grids plus O(T) thresholds.
package montecarlo
