package searcher

import (
	"time"

	"gameai/game"
	"gameai/timekeeper"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// RandomAction picks a legal action uniformly. It returns false when there is
// none.
func RandomAction[A any, S game.State[A, S]](state S, rng *rand.Rand) (A, bool) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		var none A
		return none, false
	}
	return actions[rng.Intn(len(actions))], true
}

// GreedyAction picks the action with the best evaluation one move ahead. The
// first action wins ties.
func GreedyAction[A any, S game.State[A, S]](state S) (A, bool) {
	var best A
	bestScore, found := 0, false
	for _, action := range state.LegalActions() {
		next := state.Clone()
		next.Advance(action)
		if score := next.Evaluate(); !found || score > bestScore {
			best, bestScore, found = action, score, true
		}
	}
	return best, found
}

// BeamSearchAction expands the best width nodes of each frontier for depth
// levels and returns the root action leading to the best final node. The
// root is always expanded; below it the search stops early when the best node
// of a frontier is done. It returns false only when the root has no legal
// action.
func BeamSearchAction[A any, S game.State[A, S]](state S, width, depth int, opts ...Option) (A, bool) {
	width, depth = atLeastOne("beam width", width), atLeastOne("beam depth", depth)
	t := newOptions(opts).begin("beam", width, depth)
	defer t.done()

	best := rootNode[A](state)
	current := frontier[A, S]{best}
	for d := 0; d < depth && (d == 0 || !best.state.IsDone()); d++ {
		next := frontier[A, S]{}
		for i := 0; i < width && current.Len() > 0; i++ {
			expand(current.pop(), &next)
			t.expand()
		}
		if next.Len() == 0 {
			break
		}
		current = next
		best = current.best()
	}
	return best.first, best.hasFirst
}

// BeamSearchActionWithTimeThreshold runs beam search without a depth limit
// until the horizon or the threshold. The deadline is checked before each
// expansion below the root, so a legal action is returned whenever the root
// has one. On expiry the best node of the last completed level is used.
func BeamSearchActionWithTimeThreshold[A any, S game.State[A, S]](state S, width int, threshold time.Duration, opts ...Option) (A, bool) {
	tk := timekeeper.New(threshold)
	width = atLeastOne("beam width", width)
	t := newOptions(opts).begin("beam_timed", width, 0)
	defer t.done()

	best := rootNode[A](state)
	current := frontier[A, S]{best}
	for d := 0; d == 0 || !best.state.IsDone(); d++ {
		next := frontier[A, S]{}
		for i := 0; i < width && current.Len() > 0; i++ {
			if d > 0 && tk.IsTimeOver() {
				t.expire(tk)
				return best.first, best.hasFirst
			}
			expand(current.pop(), &next)
			t.expand()
		}
		if next.Len() == 0 {
			break
		}
		current = next
		best = current.best()
		t.metric.Depth = d + 1
	}
	return best.first, best.hasFirst
}

func atLeastOne(name string, value int) int {
	if value < 1 {
		log.Warn().Msgf("%s %d is below 1, using 1", name, value)
		return 1
	}
	return value
}
