// Command percolation estimates the percolation threshold of an n×n grid by
// Monte Carlo simulation.
//
// Usage:
//
//	percolation [--seed S] [--workers W] [--log-level LEVEL] [--metrics-file PATH] N T
//
// It prints the sample mean, the stddev statistic Σ(tᵢ-mean)²/(T-1), the 95%
// confidence interval and the wall-clock time of the trial phase.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "percolation:", err)
		os.Exit(1)
	}
}
