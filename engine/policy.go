package engine

import (
	"time"

	"gameai/game"
	"gameai/searcher"

	"golang.org/x/exp/rand"
)

func RandomPolicy[A any, S game.State[A, S]](rng *rand.Rand) Policy[A, S] {
	return func(state S) (A, bool) {
		return searcher.RandomAction[A](state, rng)
	}
}

func GreedyPolicy[A any, S game.State[A, S]]() Policy[A, S] {
	return func(state S) (A, bool) {
		return searcher.GreedyAction[A](state)
	}
}

func BeamPolicy[A any, S game.State[A, S]](width, depth int, opts ...searcher.Option) Policy[A, S] {
	return func(state S) (A, bool) {
		return searcher.BeamSearchAction[A](state, width, depth, opts...)
	}
}

// TimedBeamPolicy gives every move its own threshold.
func TimedBeamPolicy[A any, S game.State[A, S]](width int, threshold time.Duration, opts ...searcher.Option) Policy[A, S] {
	return func(state S) (A, bool) {
		return searcher.BeamSearchActionWithTimeThreshold[A](state, width, threshold, opts...)
	}
}

func ChokudaiPolicy[A any, S game.State[A, S]](width, depth, number int, opts ...searcher.Option) Policy[A, S] {
	return func(state S) (A, bool) {
		return searcher.ChokudaiSearchAction[A](state, width, depth, number, opts...)
	}
}

func TimedChokudaiPolicy[A any, S game.State[A, S]](width, depth int, threshold time.Duration, opts ...searcher.Option) Policy[A, S] {
	return func(state S) (A, bool) {
		return searcher.ChokudaiSearchActionWithTimeThreshold[A](state, width, depth, threshold, opts...)
	}
}
