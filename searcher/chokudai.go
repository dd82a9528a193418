package searcher

import (
	"time"

	"gameai/game"
	"gameai/timekeeper"
)

// levels holds one frontier per relative depth. Frontiers persist across
// rounds.
type levels[A any, S any] []frontier[A, S]

func newLevels[A any, S game.State[A, S]](state S, depth int) levels[A, S] {
	l := make(levels[A, S], depth+1)
	l[0].push(rootNode[A](state))
	return l
}

// round pops up to width nodes from each level above the last, in order of
// depth, and expands them into the level below. Done nodes below the root and
// dead-end nodes go back to their level so they still count as progress at
// that depth. It reports whether any node was expanded.
func round[A any, S game.State[A, S]](l levels[A, S], width int, t *tally) bool {
	expanded := false
	for d := 0; d < len(l)-1; d++ {
		var kept []node[A, S]
		for i := 0; i < width && l[d].Len() > 0; i++ {
			n := l[d].pop()
			if (d > 0 && n.state.IsDone()) || expand(n, &l[d+1]) == 0 {
				kept = append(kept, n)
				continue
			}
			expanded = true
			t.expand()
		}
		for _, n := range kept {
			l[d].push(n)
		}
	}
	t.round()
	return expanded
}

// deepest returns the root action of the best node on the deepest non-empty
// level.
func (l levels[A, S]) deepest() (A, bool) {
	for d := len(l) - 1; d >= 0; d-- {
		if l[d].Len() > 0 {
			n := l[d].best()
			return n.first, n.hasFirst
		}
	}
	var none A
	return none, false
}

// ChokudaiSearchAction runs number rounds of level-synchronized beam search
// over depth levels. Searching stops early once a round expands nothing.
func ChokudaiSearchAction[A any, S game.State[A, S]](state S, width, depth, number int, opts ...Option) (A, bool) {
	width, depth = atLeastOne("beam width", width), atLeastOne("beam depth", depth)
	t := newOptions(opts).begin("chokudai", width, depth)
	defer t.done()

	l := newLevels[A](state, depth)
	for r := 0; r < number; r++ {
		if !round(l, width, t) {
			break
		}
	}
	return l.deepest()
}

// ChokudaiSearchActionWithTimeThreshold runs rounds until the threshold is
// reached. The deadline is checked between rounds, so at least one round runs.
func ChokudaiSearchActionWithTimeThreshold[A any, S game.State[A, S]](state S, width, depth int, threshold time.Duration, opts ...Option) (A, bool) {
	tk := timekeeper.New(threshold)
	width, depth = atLeastOne("beam width", width), atLeastOne("beam depth", depth)
	t := newOptions(opts).begin("chokudai_timed", width, depth)
	defer t.done()

	l := newLevels[A](state, depth)
	for round(l, width, t) {
		if tk.IsTimeOver() {
			t.expire(tk)
			break
		}
	}
	return l.deepest()
}
