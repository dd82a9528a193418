package searcher

import (
	"math"

	"gameai/game"

	"golang.org/x/exp/rand"
)

// MinTemperature is the floor applied to every annealing temperature.
const MinTemperature = 1e-9

// Schedule decays the temperature linearly from StartTemp to EndTemp over
// Iterations.
type Schedule struct {
	StartTemp  float64
	EndTemp    float64
	Iterations int
}

func (s Schedule) Temperature(i int) float64 {
	if s.Iterations <= 0 {
		return max(s.StartTemp, MinTemperature)
	}
	t := s.StartTemp + (s.EndTemp-s.StartTemp)*float64(i)/float64(s.Iterations)
	return max(t, MinTemperature)
}

// Walk plays state to the end and returns its score.
func Walk[S game.Rollout[S]](state S) int {
	for !state.IsDone() {
		state.Step()
	}
	return state.Score()
}

// RandomRestart returns a fresh random solution played to the end. state is
// not modified.
func RandomRestart[S game.Rollout[S]](state S, rng *rand.Rand, opts ...Option) (S, int) {
	t := newOptions(opts).begin("random_restart", 0, 0)
	defer t.done()

	t.round()
	return restart(state, rng)
}

func restart[S game.Rollout[S]](state S, rng *rand.Rand) (S, int) {
	s := state.Clone()
	s.Init(rng)
	return s, Walk(s)
}

// HillClimb starts from a random solution and keeps a neighbor only when it
// scores strictly higher.
func HillClimb[S game.Rollout[S]](state S, iterations int, rng *rand.Rand, opts ...Option) (S, int) {
	t := newOptions(opts).begin("hill_climb", 0, iterations)
	defer t.done()

	best, bestScore := restart(state, rng)
	for range iterations {
		next := best.Clone()
		next.Transition(rng)
		score := Walk(next)
		t.round()
		if score > bestScore {
			best, bestScore = next, score
			t.accept()
		}
	}
	return best, bestScore
}

// SimulatedAnnealing is HillClimb that also accepts a worse neighbor with
// probability exp(delta/temperature). A neighbor of equal score is rejected,
// as in HillClimb. Neighbors come from rng and acceptance draws from a
// separate source, so for the same rng both searches visit the same neighbors.
func SimulatedAnnealing[S game.Rollout[S]](state S, schedule Schedule, rng *rand.Rand, opts ...Option) (S, int) {
	o := newOptions(opts)
	t := o.begin("annealing", 0, schedule.Iterations)
	defer t.done()

	best, bestScore := restart(state, rng)
	for i := range schedule.Iterations {
		next := best.Clone()
		next.Transition(rng)
		score := Walk(next)
		t.round()
		accept := score > bestScore
		if score < bestScore {
			probability := math.Exp(float64(score-bestScore) / schedule.Temperature(i))
			accept = probability > o.draw(o.acceptance)
		}
		if accept {
			best, bestScore = next, score
			t.accept()
		}
	}
	return best, bestScore
}
