package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "gameai"
	subsystem = "search"
)

// PromCollector exports search metrics labelled by algorithm.
type PromCollector struct {
	Searches        *prometheus.CounterVec
	Expansions      *prometheus.CounterVec
	Rounds          *prometheus.CounterVec
	Accepted        *prometheus.CounterVec
	Deadlines       *prometheus.CounterVec
	DurationSeconds *prometheus.HistogramVec
}

// NewPromCollector registers the search metrics on reg.
func NewPromCollector(reg prometheus.Registerer) *PromCollector {
	factory := promauto.With(reg)
	labels := []string{"algorithm"}
	return &PromCollector{
		Searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "searches_total",
			Help:      "Completed search calls",
		}, labels),
		Expansions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "expansions_total",
			Help:      "Nodes expanded by tree searches",
		}, labels),
		Rounds: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "rounds_total",
			Help:      "Chokudai rounds or local search iterations",
		}, labels),
		Accepted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "accepted_total",
			Help:      "Candidates accepted by local search",
		}, labels),
		Deadlines: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "deadline_stops_total",
			Help:      "Searches stopped by their time budget",
		}, labels),
		DurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Wall-clock time per search call",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, labels),
	}
}

func (p *PromCollector) Observe(metric SearchMetric) {
	algorithm := metric.Algorithm
	p.Searches.WithLabelValues(algorithm).Inc()
	p.Expansions.WithLabelValues(algorithm).Add(float64(metric.Expansions))
	p.Rounds.WithLabelValues(algorithm).Add(float64(metric.Rounds))
	p.Accepted.WithLabelValues(algorithm).Add(float64(metric.Accepted))
	if metric.Deadline {
		p.Deadlines.WithLabelValues(algorithm).Inc()
	}
	p.DurationSeconds.WithLabelValues(algorithm).Observe(metric.Duration.Seconds())
}
