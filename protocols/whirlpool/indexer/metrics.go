package indexer

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the prometheus collectors for window assembly.
type Metrics struct {
	windowBuilds       *prometheus.CounterVec
	missingTickArrays  prometheus.Counter
	windowBuildSeconds prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		windowBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "whirlpool",
			Subsystem: "tick_window",
			Name:      "builds_total",
			Help:      "Tick windows assembled, partitioned by result.",
		}, []string{"result"}),
		missingTickArrays: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "whirlpool",
			Subsystem: "tick_window",
			Name:      "missing_tick_arrays_total",
			Help:      "Tick arrays absent from the index and replaced by empty arrays.",
		}),
		windowBuildSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "whirlpool",
			Subsystem: "tick_window",
			Name:      "build_duration_seconds",
			Help:      "Time spent assembling a tick window.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}

	reg.MustRegister(m.windowBuilds, m.missingTickArrays, m.windowBuildSeconds)
	return m
}
