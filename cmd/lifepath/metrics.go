package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lifepath/search"
)

const metricsNamespace = "lifepath"

// runMetrics collects per-run search metrics on a private registry and
// writes them in the node_exporter textfile format.
type runMetrics struct {
	registry    *prometheus.Registry
	searches    *prometheus.CounterVec
	generations prometheus.Histogram
	visited     prometheus.Histogram
	pathLength  prometheus.Histogram
	duration    prometheus.Gauge
}

func newRunMetrics() *runMetrics {
	m := &runMetrics{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "searches_total",
				Help:      "Searches run, by strategy and termination",
			},
			[]string{"strategy", "termination"},
		),
		generations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "generations",
			Help:      "Generations computed per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 9),
		}),
		visited: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "visited_cells",
			Help:      "Reached lattice cells per search",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 9),
		}),
		pathLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "path_length",
			Help:      "Moves in the returned path",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 9),
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of all searches of the run",
		}),
	}
	m.registry.MustRegister(m.searches, m.generations, m.visited, m.pathLength, m.duration)
	return m
}

func (m *runMetrics) observe(res *search.Result) {
	m.searches.WithLabelValues(res.Strategy.String(), res.Termination.String()).Inc()
	m.generations.Observe(float64(res.Generations))
	m.visited.Observe(float64(res.Visited))
	m.pathLength.Observe(float64(len(res.Path)))
}

func (m *runMetrics) observeDuration(d time.Duration) {
	m.duration.Set(d.Seconds())
}

func (m *runMetrics) write(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
