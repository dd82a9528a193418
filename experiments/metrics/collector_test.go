package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestAggregator(t *testing.T) {
	t.Run("sums concurrent observations", func(t *testing.T) {
		c := NewCollector()
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Observe(SearchMetric{Algorithm: "beam", Expansions: 3, Rounds: 1, Duration: time.Millisecond})
			}()
		}
		wg.Wait()

		s := c.Summary()
		require.Equal(t, 8, s.Searches)
		require.Equal(t, 24, s.Expansions)
		require.Equal(t, 8, s.Rounds)
		require.Equal(t, 8*time.Millisecond, s.Duration)
		require.Zero(t, s.Deadlines)
	})

	t.Run("counts deadline stops", func(t *testing.T) {
		c := NewCollector()
		c.Observe(SearchMetric{Deadline: true})
		c.Observe(SearchMetric{})
		require.Equal(t, 1, c.Summary().Deadlines)
	})
}

func TestPromCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPromCollector(reg)
	agg := NewCollector()
	c := Fanout{p, agg}

	c.Observe(SearchMetric{Algorithm: "chokudai", Expansions: 5, Rounds: 2, Deadline: true})
	c.Observe(SearchMetric{Algorithm: "chokudai", Expansions: 4, Rounds: 1})
	c.Observe(SearchMetric{Algorithm: "annealing", Rounds: 10, Accepted: 3})

	require.InDelta(t, 9, testutil.ToFloat64(p.Expansions.WithLabelValues("chokudai")), 0.001)
	require.InDelta(t, float64(agg.Summary().Expansions), testutil.ToFloat64(p.Expansions.WithLabelValues("chokudai")), 0.001,
		"Prometheus and aggregate expansion counts should agree")
	require.InDelta(t, 1, testutil.ToFloat64(p.Deadlines.WithLabelValues("chokudai")), 0.001)
	require.InDelta(t, 3, testutil.ToFloat64(p.Accepted.WithLabelValues("annealing")), 0.001)
	require.InDelta(t, 2, testutil.ToFloat64(p.Searches.WithLabelValues("chokudai")), 0.001)

	require.Panics(t, func() {
		NewPromCollector(reg)
	}, "Registering twice on one registry should panic")
}
