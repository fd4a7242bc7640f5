package main

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/percolate/montecarlo"
)

const longHelp = `Estimate the site-percolation threshold of an N×N grid with T Monte Carlo trials.

Flags must precede N and T. Everything after the first positional argument is
positional, so a negative T is passed through to validation; a negative N
needs a leading "--" (percolation -- -5 10).`

// config collects the command's flags.
type config struct {
	seed        uint64
	workers     int
	logLevel    string
	metricsFile string
}

func newRootCmd() *cobra.Command {
	var (
		cfg    config
		logger *zap.Logger
	)
	cmd := &cobra.Command{
		Use:           "percolation [flags] N T",
		Short:         "Estimate the site-percolation threshold of an N×N grid with T Monte Carlo trials",
		Long:          longHelp,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := zapcore.ParseLevel(cfg.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			logger = newLogger(cmd, lvl)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer func() { _ = logger.Sync() }()
			return run(cmd, args, cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.Uint64Var(&cfg.seed, "seed", 0, "master random seed (0 derives one from the clock)")
	flags.IntVar(&cfg.workers, "workers", 0, "maximum concurrent trials (0 means GOMAXPROCS)")
	flags.StringVar(&cfg.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file after the run")

	return cmd
}

// newLogger writes console-encoded logs to the command's stderr.
func newLogger(cmd *cobra.Command, lvl zapcore.Level) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(cmd.ErrOrStderr()), lvl)
	return zap.New(core).Named("percolation")
}

func run(cmd *cobra.Command, args []string, cfg config, logger *zap.Logger) error {
	n, err := parseCount("grid size", args[0])
	if err != nil {
		return err
	}
	trials, err := parseCount("trial count", args[1])
	if err != nil {
		return err
	}

	opts := montecarlo.DefaultOptions()
	opts.Ctx = cmd.Context()
	opts.Seed = cfg.seed
	if cfg.workers > 0 {
		opts.Workers = cfg.workers
	}
	opts.Logger = logger
	var reg *prometheus.Registry
	if cfg.metricsFile != "" {
		reg = prometheus.NewRegistry()
		opts.Registerer = reg
	}

	est, err := montecarlo.New(n, trials, opts)
	if err != nil {
		return err
	}
	res, err := est.Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mean                    = %f\n", res.Mean())
	fmt.Fprintf(out, "stddev                  = %f\n", res.StdDev())
	fmt.Fprintf(out, "95%% confidence interval = [%f, %f]\n", res.ConfidenceLo(), res.ConfidenceHi())
	fmt.Fprintf(out, "elapsed                 = %s\n", res.Elapsed())

	if reg != nil {
		if err := prometheus.WriteToTextfile(cfg.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", zap.String("path", cfg.metricsFile))
	}

	return nil
}

// parseCount parses a decimal integer argument. Range checks are left to
// montecarlo.New so that both layers report the same error.
func parseCount(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}
