package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"gameai/experiments"
	"gameai/experiments/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	logLevel    string
	pretty      bool
	metricsFile string
	overrides   experiments.Config
	thresholds  []time.Duration

	rootCmd = &cobra.Command{
		Use:   "gameai",
		Short: "Benchmark single-agent search strategies",
		Long: `gameai plays seeded games with tree search (random, greedy, beam,
chokudai) or local search (hill climbing, simulated annealing) and reports the
mean score.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
	}
	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Run a benchmark from a config file and flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, "")
		},
	}
	annealCmd = &cobra.Command{
		Use:   "anneal",
		Short: "Run simulated annealing on the walkers problem",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, experiments.Annealing)
		},
	}
	sweepCmd = &cobra.Command{
		Use:   "sweep",
		Short: "Benchmark a timed strategy over several time budgets",
		RunE:  runSweep,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML experiment file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "zerolog level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Human readable console logs")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "Write search metrics in Prometheus text format to this file")

	for _, cmd := range []*cobra.Command{benchCmd, annealCmd, sweepCmd} {
		flags := cmd.Flags()
		flags.IntVar(&overrides.Games, "games", 0, "Number of games")
		flags.Uint64Var(&overrides.Seed, "seed", 0, "Seed for the game seeds")
		flags.IntVar(&overrides.Workers, "workers", 0, "Games played concurrently")
		flags.IntVar(&overrides.Iterations, "iterations", 0, "Local search iterations")
		flags.StringVar(&overrides.Board, "board", "", "JSON problem instance to play instead of generated boards")
		flags.StringVarP(&overrides.OutputDir, "out", "o", "", "Directory for config and CSV records")
		flags.BoolVar(&overrides.FullDraw, "full-precision-draw", false, "Use full precision annealing acceptance draws")
	}
	for _, cmd := range []*cobra.Command{benchCmd, sweepCmd} {
		flags := cmd.Flags()
		flags.StringVarP(&overrides.Strategy, "strategy", "s", "", "random, greedy, beam, beam_timed, chokudai, chokudai_timed, random_restart, hill_climb or annealing")
		flags.IntVarP(&overrides.BeamWidth, "width", "w", 0, "Beam width")
		flags.IntVarP(&overrides.BeamDepth, "depth", "d", 0, "Beam depth")
		flags.IntVarP(&overrides.BeamNumber, "rounds", "n", 0, "Chokudai rounds")
	}
	benchCmd.Flags().DurationVarP(&overrides.Threshold, "threshold", "t", 0, "Time budget per move")
	sweepCmd.Flags().DurationSliceVar(&thresholds, "thresholds", []time.Duration{time.Millisecond, 5 * time.Millisecond, 10 * time.Millisecond}, "Time budgets per move")
	annealCmd.Flags().Float64Var(&overrides.StartTemp, "start-temp", 0, "Starting temperature")
	annealCmd.Flags().Float64Var(&overrides.EndTemp, "end-temp", 0, "Final temperature, floored above zero")

	rootCmd.AddCommand(benchCmd, annealCmd, sweepCmd)
}

func setupLogging() error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	zerolog.SetGlobalLevel(level)
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	return nil
}

// loadConfig applies the flags the user set over the config file, or over
// the defaults when there is no file.
func loadConfig(cmd *cobra.Command, strategy string) (experiments.Config, error) {
	cfg := experiments.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = experiments.LoadConfig(configPath); err != nil {
			return cfg, err
		}
	}
	if strategy != "" {
		cfg.Strategy = strategy
	}

	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("strategy", func() { cfg.Strategy = overrides.Strategy })
	set("games", func() { cfg.Games = overrides.Games })
	set("seed", func() { cfg.Seed = overrides.Seed })
	set("workers", func() { cfg.Workers = overrides.Workers })
	set("iterations", func() { cfg.Iterations = overrides.Iterations })
	set("board", func() { cfg.Board = overrides.Board })
	set("out", func() { cfg.OutputDir = overrides.OutputDir })
	set("full-precision-draw", func() { cfg.FullDraw = overrides.FullDraw })
	set("width", func() { cfg.BeamWidth = overrides.BeamWidth })
	set("depth", func() { cfg.BeamDepth = overrides.BeamDepth })
	set("rounds", func() { cfg.BeamNumber = overrides.BeamNumber })
	set("threshold", func() { cfg.Threshold = overrides.Threshold })
	set("start-temp", func() { cfg.StartTemp = overrides.StartTemp })
	set("end-temp", func() { cfg.EndTemp = overrides.EndTemp })

	return cfg, cfg.Validate()
}

func runBench(cmd *cobra.Command, strategy string) error {
	cfg, err := loadConfig(cmd, strategy)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reg := prometheus.NewRegistry()
	result, err := experiments.Run(ctx, cfg, metrics.NewPromCollector(reg))
	if err != nil {
		return err
	}
	if metricsFile != "" {
		if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
			return fmt.Errorf("failed to write metrics file: %w", err)
		}
		log.Info().Msgf("wrote metrics to %s", metricsFile)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: mean score %.3f over %d games\n", cfg.Strategy, result.Mean, cfg.Games)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	points, err := experiments.RunThroughputExperiment(ctx, cfg, thresholds)
	if err != nil {
		return err
	}
	for _, p := range points {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: mean score %.3f, %.1f expansions per move, %d deadlines\n",
			cfg.Strategy, p.Threshold, p.Mean, p.ExpansionsPerMove, p.Deadlines)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("gameai failed")
		os.Exit(1)
	}
}
