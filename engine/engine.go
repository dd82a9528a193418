package engine

import (
	"math"

	"gameai/game"
)

// DeadEnd is the score of a game in which the policy found no legal action.
const DeadEnd = -(math.MaxInt / 2)

// Episode is a state that can be played turn by turn and reports its
// accumulated game score.
type Episode[A any, S any] interface {
	game.State[A, S]
	game.Scored
}

// Policy chooses the next action. It returns false when state has no legal
// action.
type Policy[A any, S any] func(state S) (A, bool)
