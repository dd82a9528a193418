package game

import "golang.org/x/exp/rand"

// State is a snapshot of a single-agent problem at some turn. Searchers only
// ever mutate clones, so Clone must return a copy that shares no mutable data
// with the receiver.
type State[A any, S any] interface {
	IsDone() bool
	// LegalActions may return an empty slice, which means the agent is stuck.
	LegalActions() []A
	// Advance moves to the next turn. Passing an action that LegalActions did
	// not return is a contract violation and panics.
	Advance(action A)
	// Evaluate must be deterministic for a given state.
	Evaluate() int
	Clone() S
}

// Scored is implemented by states that track the accumulated game score
// separately from their search evaluation.
type Scored interface {
	Score() int
}

// Rollout is a problem whose full solution is perturbed and then replayed to
// the end, rather than searched turn by turn.
type Rollout[S any] interface {
	// Init randomizes the mutable component and resets turn and score.
	Init(rng *rand.Rand)
	// Transition restores the committed board, resets turn and score and
	// perturbs exactly one component.
	Transition(rng *rand.Rand)
	IsDone() bool
	Step()
	Score() int
	Clone() S
}
