package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ThroughputPoint is the outcome of one time budget.
type ThroughputPoint struct {
	Threshold         time.Duration
	Mean              float64
	ExpansionsPerMove float64
	Deadlines         int
}

// RunThroughputExperiment benchmarks the timed strategy of base once per
// threshold, on the same seeds, to show how search throughput and score grow
// with the budget.
func RunThroughputExperiment(ctx context.Context, base Config, thresholds []time.Duration) ([]ThroughputPoint, error) {
	if base.Strategy != BeamTimed && base.Strategy != ChokudaiTimed {
		return nil, fmt.Errorf("%w: throughput needs a timed strategy, got %q", ErrInvalidConfig, base.Strategy)
	}

	log.Info().Msgf("starting throughput experiment for %s over %d thresholds...", base.Strategy, len(thresholds))
	points := make([]ThroughputPoint, 0, len(thresholds))
	for i, threshold := range thresholds {
		cfg := base
		cfg.Threshold = threshold
		log.Info().Msgf("starting threshold %d of %d: %s", i+1, len(thresholds), threshold)

		result, err := Run(ctx, cfg, nil)
		if err != nil {
			return points, fmt.Errorf("threshold %s: %w", threshold, err)
		}
		point := ThroughputPoint{Threshold: threshold, Mean: result.Mean, Deadlines: result.Summary.Deadlines}
		if result.Summary.Searches > 0 {
			point.ExpansionsPerMove = float64(result.Summary.Expansions) / float64(result.Summary.Searches)
		}
		points = append(points, point)

		log.Info().Msgf("completed threshold %s with mean %.3f and %.1f expansions per move", threshold, point.Mean, point.ExpansionsPerMove)
	}
	log.Info().Msg("completed throughput experiment")
	return points, nil
}
