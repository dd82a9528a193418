package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// SearchMetric describes one search call.
type SearchMetric struct {
	Algorithm  string
	Width      int
	Depth      int // beam depth, or iterations for local search
	Duration   time.Duration
	Expansions int
	Rounds     int
	Accepted   int
	Deadline   bool // stopped because the time budget ran out
}

type MoveMetric struct {
	Turn int
	SearchMetric
}

type GameMetric struct {
	Seed      uint64
	Score     int
	DeadEnd   bool
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Turns     int
}

// Collector receives a SearchMetric for every completed search. It may be
// shared between goroutines.
type Collector interface {
	Observe(metric SearchMetric)
}

// Summary aggregates every observed search.
type Summary struct {
	Searches   int
	Expansions int
	Rounds     int
	Accepted   int
	Deadlines  int
	Duration   time.Duration
}

// Aggregator is a Collector that keeps running totals.
type Aggregator struct {
	searches   atomic.Int64
	expansions atomic.Int64
	rounds     atomic.Int64
	accepted   atomic.Int64
	deadlines  atomic.Int64
	duration   atomic.Int64
}

func NewCollector() *Aggregator {
	return &Aggregator{}
}

func (m *Aggregator) Observe(metric SearchMetric) {
	m.searches.Add(1)
	m.expansions.Add(int64(metric.Expansions))
	m.rounds.Add(int64(metric.Rounds))
	m.accepted.Add(int64(metric.Accepted))
	m.duration.Add(int64(metric.Duration))
	if metric.Deadline {
		m.deadlines.Add(1)
	}
}

func (m *Aggregator) Summary() Summary {
	return Summary{
		Searches:   int(m.searches.Load()),
		Expansions: int(m.expansions.Load()),
		Rounds:     int(m.rounds.Load()),
		Accepted:   int(m.accepted.Load()),
		Deadlines:  int(m.deadlines.Load()),
		Duration:   time.Duration(m.duration.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Observe(metric SearchMetric) {}

// Recorder keeps every observed metric in order. Used per game, each
// observation is one move.
type Recorder struct {
	mu      sync.Mutex
	metrics []SearchMetric
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Observe(metric SearchMetric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics = append(r.metrics, metric)
}

func (r *Recorder) Moves() []MoveMetric {
	r.mu.Lock()
	defer r.mu.Unlock()
	moves := make([]MoveMetric, len(r.metrics))
	for i, m := range r.metrics {
		moves[i] = MoveMetric{Turn: i + 1, SearchMetric: m}
	}
	return moves
}

// Fanout forwards every metric to each collector in turn.
type Fanout []Collector

func (f Fanout) Observe(metric SearchMetric) {
	for _, c := range f {
		c.Observe(metric)
	}
}
