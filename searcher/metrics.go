package searcher

import (
	"time"

	"gameai/experiments/metrics"
	"gameai/timekeeper"

	"github.com/rs/zerolog/log"
)

// tally counts one search call and reports it when done. It is owned by a
// single search and needs no synchronization.
type tally struct {
	metric metrics.SearchMetric
	start  time.Time
	sink   metrics.Collector
}

func (o *options) begin(algorithm string, width, depth int) *tally {
	return &tally{
		metric: metrics.SearchMetric{Algorithm: algorithm, Width: width, Depth: depth},
		start:  time.Now(),
		sink:   o.metrics,
	}
}

func (t *tally) expand() { t.metric.Expansions++ }
func (t *tally) round()  { t.metric.Rounds++ }
func (t *tally) accept() { t.metric.Accepted++ }

// expire records that tk stopped the search.
func (t *tally) expire(tk timekeeper.TimeKeeper) {
	t.metric.Deadline = true
	log.Debug().
		Str("algorithm", t.metric.Algorithm).
		Dur("elapsed", tk.Elapsed()).
		Dur("threshold", tk.Threshold()).
		Int("expansions", t.metric.Expansions).
		Msg("deadline reached")
}

func (t *tally) done() {
	t.metric.Duration = time.Since(t.start)
	t.sink.Observe(t.metric)
}
