package montecarlo

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the optional per-trial collectors. A nil *metrics is valid
// and records nothing.
type metrics struct {
	trials    prometheus.Counter
	threshold prometheus.Histogram
	duration  prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}
	m := &metrics{
		trials: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "percolation",
			Name:      "trials_total",
			Help:      "Total number of completed percolation trials.",
		}),
		threshold: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "percolation",
			Name:      "threshold",
			Help:      "Fraction of open sites at the moment each trial first percolated.",
			Buckets:   prometheus.LinearBuckets(0.05, 0.05, 20),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "percolation",
			Name:      "trial_duration_seconds",
			Help:      "Wall-clock time spent in a single trial.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		}),
	}

	var err error
	if m.trials, err = register(reg, m.trials); err != nil {
		return nil, err
	}
	if m.threshold, err = register(reg, m.threshold); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg, reusing an identical collector that an earlier
// Estimator already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, err
}

func (m *metrics) observe(threshold float64, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.trials.Inc()
	m.threshold.Observe(threshold)
	m.duration.Observe(elapsed.Seconds())
}
