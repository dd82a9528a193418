package searcher

import (
	"testing"
	"time"

	"gameai/experiments/metrics"
	"gameai/game"

	"github.com/stretchr/testify/require"
)

func TestChokudaiSearchAction(t *testing.T) {
	t.Run("deepest level wins over a better shallow node", func(t *testing.T) {
		root := branch(0, branch(9), branch(1, branch(2)))
		a, ok := ChokudaiSearchAction[int](&mockState{at: root}, 2, 3, 5)
		require.True(t, ok)
		require.Equal(t, 1, a, "Depth two is only reachable through the second branch")
	})

	t.Run("levels persist across rounds", func(t *testing.T) {
		// Width one: the first round follows the best child down, the second
		// round expands the runner-up left on level one.
		root := branch(0, branch(5, branch(0)), branch(4, branch(7)))
		l := newLevels[int](&mockState{at: root}, 2)
		tl := newOptions(nil).begin("test", 1, 2)

		require.True(t, round(l, 1, tl))
		require.Equal(t, 1, l[1].Len(), "Runner-up stays on level one")
		require.Equal(t, 1, l[2].Len())
		a, _ := l.deepest()
		require.Equal(t, 0, a)

		require.True(t, round(l, 1, tl))
		require.Zero(t, l[1].Len())
		require.Equal(t, 2, l[2].Len())
		a, _ = l.deepest()
		require.Equal(t, 1, a, "Second round finds the better grandchild")

		require.False(t, round(l, 1, tl), "Nothing left to expand")
	})

	t.Run("done nodes are kept but not expanded", func(t *testing.T) {
		root := branch(0, leaf(3), branch(1, branch(2)))
		l := newLevels[int](&mockState{at: root}, 3)
		tl := newOptions(nil).begin("test", 1, 3)
		round(l, 1, tl)
		round(l, 1, tl)

		require.Equal(t, 2, l[1].Len())
		require.True(t, l[1].best().state.IsDone(), "Done node stays on its level")
		require.Zero(t, l[2].Len(), "Width one is spent on the done node")
	})

	t.Run("a done root is still expanded", func(t *testing.T) {
		root := &script{done: true, children: []*script{leaf(1), leaf(4)}}
		a, ok := ChokudaiSearchAction[int](&mockState{at: root}, 2, 1, 1)
		require.True(t, ok)
		require.Equal(t, 1, a)

		a, ok = ChokudaiSearchActionWithTimeThreshold[int](&mockState{at: root}, 2, 1, time.Hour)
		require.True(t, ok)
		require.Equal(t, 1, a)
	})

	t.Run("zero rounds leaves only the root", func(t *testing.T) {
		_, ok := ChokudaiSearchAction[game.Action](squareGrid(t), 2, 2, 0)
		require.False(t, ok, "The root has no first action")
	})
}

func TestChokudaiSearchActionWithTimeThreshold(t *testing.T) {
	t.Run("stops within one round of the deadline", func(t *testing.T) {
		g := game.NewGrid(5)
		collector := metrics.NewCollector()
		threshold := 20 * time.Millisecond
		start := time.Now()
		a, ok := ChokudaiSearchActionWithTimeThreshold[game.Action](g, 50, game.EndTurn, threshold, WithMetrics(collector))
		elapsed := time.Since(start)

		require.True(t, ok)
		require.Contains(t, g.LegalActions(), a)
		require.Less(t, elapsed, threshold+500*time.Millisecond)

		s := collector.Summary()
		if s.Deadlines == 1 {
			require.GreaterOrEqual(t, elapsed, time.Duration(float64(threshold)*0.8))
		}
	})

	t.Run("runs at least one round", func(t *testing.T) {
		collector := metrics.NewCollector()
		a, ok := ChokudaiSearchActionWithTimeThreshold[game.Action](squareGrid(t), 2, 2, 0, WithMetrics(collector))
		require.True(t, ok)
		require.Equal(t, game.Right, a)
		require.Equal(t, 1, collector.Summary().Rounds)
		require.Equal(t, 1, collector.Summary().Deadlines)
	})
}
