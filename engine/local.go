package engine

import (
	"time"

	"gameai/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// Play drives a clone of state with policy until the game is done or the
// policy gives up. The caller's state is not modified.
func Play[A any, S Episode[A, S]](state S, policy Policy[A, S]) metrics.GameMetric {
	gm := metrics.GameMetric{StartTime: time.Now()}
	s := state.Clone()

	for !s.IsDone() {
		action, ok := policy(s)
		if !ok {
			log.Debug().Int("turn", gm.Turns).Msg("no legal action, game lost")
			gm.DeadEnd = true
			break
		}
		s.Advance(action)
		gm.Turns++
		log.Debug().Int("turn", gm.Turns).Interface("action", action).Int("score", s.Score()).Msg("advanced")
	}

	gm.EndTime = time.Now()
	gm.Duration = gm.EndTime.Sub(gm.StartTime)
	gm.Score = s.Score()
	if gm.DeadEnd {
		gm.Score = DeadEnd
	}
	return gm
}

// PlayGame returns the final score of the game, or DeadEnd.
func PlayGame[A any, S Episode[A, S]](state S, policy Policy[A, S]) int {
	return Play(state, policy).Score
}
