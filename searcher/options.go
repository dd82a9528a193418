package searcher

import (
	"gameai/experiments/metrics"

	"golang.org/x/exp/rand"
)

// Draw returns a uniform value in [0, 1] for the annealing acceptance test.
type Draw func(rng *rand.Rand) float64

// ByteDraw has 256 levels and can return exactly 1.
// TODO: switch the default to FullPrecisionDraw once annealing scores are
// rebenchmarked with it.
func ByteDraw(rng *rand.Rand) float64 {
	return float64(uint8(rng.Uint32())) / 255
}

func FullPrecisionDraw(rng *rand.Rand) float64 {
	return rng.Float64()
}

type options struct {
	metrics    metrics.Collector
	acceptance *rand.Rand
	draw       Draw
}

type Option func(o *options)

func WithMetrics(collector metrics.Collector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

// WithAcceptanceSource sets the random source for annealing acceptance
// draws. Neighbors are still generated from the rng passed to the search.
func WithAcceptanceSource(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.acceptance = rng
		}
	}
}

func WithDraw(draw Draw) Option {
	return func(o *options) {
		if draw != nil {
			o.draw = draw
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{ // Default values
		metrics: metrics.NewDummyCollector(),
		draw:    ByteDraw,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.acceptance == nil {
		o.acceptance = rand.New(rand.NewSource(0))
	}
	return o
}
