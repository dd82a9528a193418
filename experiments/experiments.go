package experiments

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"gameai/engine"
	"gameai/experiments/metrics"
	"gameai/game"
	"gameai/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one benchmark run.
type Result struct {
	Config  Config
	Mean    float64
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Summary metrics.Summary
	Dir     string // where records were written, if anywhere
}

// Seeds draws count game seeds from seed.
func Seeds(count int, seed uint64) []uint64 {
	rng := rand.New(rand.NewSource(seed))
	seeds := make([]uint64, count)
	for i := range seeds {
		seeds[i] = rng.Uint64()
	}
	return seeds
}

// TestAIScore plays gameCount games with seeds drawn from seed, on up to
// workers goroutines, and returns the mean score. Dead ends count as
// engine.DeadEnd.
func TestAIScore(gameCount int, seed uint64, workers int, play func(seed uint64) int) float64 {
	records, _ := playGames(context.Background(), Seeds(gameCount, seed), workers, func(_ int, seed uint64) metrics.GameMetric {
		return metrics.GameMetric{Seed: seed, Score: play(seed)}
	})
	return mean(records)
}

// gamePlayer plays game id, counted from zero, from seed.
type gamePlayer func(id int, seed uint64) metrics.GameMetric

func playGames(ctx context.Context, seeds []uint64, workers int, play gamePlayer) ([]metrics.GameRecord, error) {
	records := make([]metrics.GameRecord, len(seeds))
	var completed atomic.Int32

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records[i] = metrics.GameRecord{ID: i + 1, GameMetric: play(i, seed)}
			n := completed.Add(1)
			log.Debug().Msgf("completed game %d of %d (seed %d) with score %d", n, len(seeds), seed, records[i].Score)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func mean(records []metrics.GameRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	// float64 so that several dead ends cannot overflow
	sum := 0.0
	for _, r := range records {
		sum += float64(r.Score)
	}
	return sum / float64(len(records))
}

// Run benchmarks the configured strategy. Every search reports to collector,
// which may be nil.
func Run(ctx context.Context, cfg Config, collector metrics.Collector) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	aggregate := metrics.NewCollector()
	sink := metrics.Fanout{aggregate}
	if collector != nil {
		sink = append(sink, collector)
	}

	// Each game writes only its own slot.
	perGame := make([][]metrics.MoveMetric, cfg.Games)
	play, err := newGamePlayer(cfg, sink, func(id int, m []metrics.MoveMetric) { perGame[id] = m })
	if err != nil {
		return Result{}, err
	}

	log.Info().Msgf("starting %s benchmark with %d games on %d workers...", cfg.Strategy, cfg.Games, cfg.Workers)
	start := time.Now()
	records, err := playGames(ctx, Seeds(cfg.Games, cfg.Seed), cfg.Workers, play)
	if err != nil {
		return Result{}, fmt.Errorf("benchmark interrupted: %w", err)
	}

	result := Result{Config: cfg, Mean: mean(records), Games: records, Summary: aggregate.Summary()}
	for i, gameMoves := range perGame {
		for _, m := range gameMoves {
			result.Moves = append(result.Moves, metrics.MoveRecord{Game: i + 1, MoveMetric: m})
		}
	}
	log.Info().
		Str("strategy", cfg.Strategy).
		Float64("mean", result.Mean).
		Int("searches", result.Summary.Searches).
		Int("deadlines", result.Summary.Deadlines).
		Dur("elapsed", time.Since(start)).
		Msg("completed benchmark")

	if cfg.OutputDir != "" {
		if result.Dir, err = store(cfg, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func store(cfg Config, result Result) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Strategy)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err = writer.WriteConfig(cfg); err != nil {
		return "", fmt.Errorf("failed to store config: %w", err)
	}
	if err = writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	if err = writer.WriteMoveRecords(result.Moves); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return writer.Dir(), nil
}

func newGamePlayer(cfg Config, sink metrics.Collector, report func(id int, moves []metrics.MoveMetric)) (gamePlayer, error) {
	var board []byte
	if cfg.Board != "" {
		data, err := os.ReadFile(cfg.Board)
		if err != nil {
			return nil, fmt.Errorf("failed to read board file: %w", err)
		}
		board = data
	}

	if cfg.IsLocal() {
		newWalkers := func(seed uint64) *game.Walkers { return game.NewWalkers(seed) }
		if board != nil {
			w, err := game.LoadWalkers(board)
			if err != nil {
				return nil, fmt.Errorf("failed to load board %s: %w", cfg.Board, err)
			}
			newWalkers = func(uint64) *game.Walkers { return w.Clone() }
		}
		return func(id int, seed uint64) metrics.GameMetric {
			recorder := metrics.NewRecorder()
			gm := PlayWalkersGame(cfg, newWalkers(seed), seed, searcher.WithMetrics(metrics.Fanout{sink, recorder}))
			report(id, recorder.Moves())
			return gm
		}, nil
	}

	newGrid := game.NewGrid
	if board != nil {
		g, err := game.LoadGrid(board)
		if err != nil {
			return nil, fmt.Errorf("failed to load board %s: %w", cfg.Board, err)
		}
		newGrid = func(uint64) *game.Grid { return g.Clone() }
	}
	return func(id int, seed uint64) metrics.GameMetric {
		recorder := metrics.NewRecorder()
		policy, err := Policy(cfg, seed, searcher.WithMetrics(metrics.Fanout{sink, recorder}))
		if err != nil {
			panic(err) // strategy was validated
		}
		gm := engine.Play(newGrid(seed), policy)
		gm.Seed = seed
		report(id, recorder.Moves())
		return gm
	}, nil
}

// Policy builds the tree search policy named by cfg.Strategy. Random play is
// seeded by seed.
func Policy(cfg Config, seed uint64, opts ...searcher.Option) (engine.Policy[game.Action, *game.Grid], error) {
	switch cfg.Strategy {
	case Random:
		return engine.RandomPolicy[game.Action, *game.Grid](rand.New(rand.NewSource(seed))), nil
	case Greedy:
		return engine.GreedyPolicy[game.Action, *game.Grid](), nil
	case Beam:
		return engine.BeamPolicy[game.Action, *game.Grid](cfg.BeamWidth, cfg.BeamDepth, opts...), nil
	case BeamTimed:
		return engine.TimedBeamPolicy[game.Action, *game.Grid](cfg.BeamWidth, cfg.Threshold, opts...), nil
	case Chokudai:
		return engine.ChokudaiPolicy[game.Action, *game.Grid](cfg.BeamWidth, cfg.BeamDepth, cfg.BeamNumber, opts...), nil
	case ChokudaiTimed:
		return engine.TimedChokudaiPolicy[game.Action, *game.Grid](cfg.BeamWidth, cfg.BeamDepth, cfg.Threshold, opts...), nil
	}
	return nil, fmt.Errorf("%w: %q is not a tree search", ErrUnknownStrategy, cfg.Strategy)
}

// PlayGridGame plays one grid game from seed with the configured tree search.
func PlayGridGame(cfg Config) func(seed uint64) int {
	return func(seed uint64) int {
		policy, err := Policy(cfg, seed)
		if err != nil {
			panic(err)
		}
		return engine.PlayGame(game.NewGrid(seed), policy)
	}
}

// PlayWalkersGame searches start positions for w with the configured local
// search. Neighbors are drawn from seed.
func PlayWalkersGame(cfg Config, w *game.Walkers, seed uint64, opts ...searcher.Option) metrics.GameMetric {
	gm := metrics.GameMetric{Seed: seed, StartTime: time.Now()}
	rng := rand.New(rand.NewSource(seed))
	if cfg.FullDraw {
		opts = append(opts, searcher.WithDraw(searcher.FullPrecisionDraw))
	}

	switch cfg.Strategy {
	case RandomRestart:
		_, gm.Score = searcher.RandomRestart(w, rng, opts...)
		gm.Turns = 1
	case Annealing:
		schedule := searcher.Schedule{StartTemp: cfg.StartTemp, EndTemp: cfg.EndTemp, Iterations: cfg.Iterations}
		_, gm.Score = searcher.SimulatedAnnealing(w, schedule, rng, opts...)
		gm.Turns = cfg.Iterations
	default:
		_, gm.Score = searcher.HillClimb(w, cfg.Iterations, rng, opts...)
		gm.Turns = cfg.Iterations
	}
	gm.EndTime = time.Now()
	gm.Duration = gm.EndTime.Sub(gm.StartTime)
	return gm
}
