// Package metrics exposes trial statistics as Prometheus collectors.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/knapsack/trial"
)

var _ trial.Observer = (*Metrics)(nil)

// DurationBuckets spans sub-millisecond solves (n ≈ 10) to multi-minute
// ones (n ≈ 34).
var DurationBuckets = prometheus.ExponentialBuckets(0.0001, 4, 12)

// Metrics records every finished trial.
type Metrics struct {
	trials        prometheus.Counter
	subsets       prometheus.Counter
	duration      prometheus.Histogram
	bestValue     prometheus.Gauge
	itemsPerTrial prometheus.Gauge
}

// New creates the collectors under namespace and registers them on reg.
func New(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		trials: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trials_total",
			Help:      "Number of finished trials",
		}),
		subsets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subsets_visited_total",
			Help:      "Number of subsets evaluated across all trials",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trial_duration_seconds",
			Help:      "Wall-clock time of one solve in seconds",
			Buckets:   DurationBuckets,
		}),
		bestValue: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_value",
			Help:      "Best value found by the most recently finished trial",
		}),
		itemsPerTrial: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "items",
			Help:      "Item count of the most recently finished trial",
		}),
	}

	errs := []error{
		register(reg, "trials", m.trials),
		register(reg, "subsets visited", m.subsets),
		register(reg, "trial duration", m.duration),
		register(reg, "best value", m.bestValue),
		register(reg, "items", m.itemsPerTrial),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}

func register(reg prometheus.Registerer, what string, c prometheus.Collector) error {
	if err := reg.Register(c); err != nil {
		return fmt.Errorf("failed to register %s statistics due to %w", what, err)
	}
	return nil
}

// ObserveTrial implements trial.Observer.
func (m *Metrics) ObserveTrial(o trial.Outcome) {
	m.trials.Inc()
	m.subsets.Add(float64(o.Result.Visited))
	m.duration.Observe(o.Elapsed.Seconds())
	m.bestValue.Set(float64(o.Result.Value))
	m.itemsPerTrial.Set(float64(o.Instance.Len()))
}
