package experiments

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gameai/meta"

	"gopkg.in/yaml.v3"
)

const (
	Random        = "random"
	Greedy        = "greedy"
	Beam          = "beam"
	BeamTimed     = "beam_timed"
	Chokudai      = "chokudai"
	ChokudaiTimed = "chokudai_timed"
	RandomRestart = "random_restart"
	HillClimb     = "hill_climb"
	Annealing     = "annealing"
)

var (
	TreeStrategies  = []string{Random, Greedy, Beam, BeamTimed, Chokudai, ChokudaiTimed}
	LocalStrategies = []string{RandomRestart, HillClimb, Annealing}
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Config describes one benchmark run. Zero values in a YAML file keep the
// defaults.
type Config struct {
	Strategy   string        `yaml:"strategy"`
	BeamWidth  int           `yaml:"beam_width"`
	BeamDepth  int           `yaml:"beam_depth"`
	BeamNumber int           `yaml:"beam_number"`
	Threshold  time.Duration `yaml:"time_threshold"`
	Iterations int           `yaml:"iterations"`
	StartTemp  float64       `yaml:"start_temp"`
	EndTemp    float64       `yaml:"end_temp"`
	FullDraw   bool          `yaml:"full_precision_draw"`
	Games      int           `yaml:"games"`
	Seed       uint64        `yaml:"seed"`
	Workers    int           `yaml:"workers"`
	Board      string        `yaml:"board,omitempty"`
	OutputDir  string        `yaml:"output_dir,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Strategy:   meta.STRATEGY,
		BeamWidth:  meta.BEAM_WIDTH,
		BeamDepth:  meta.BEAM_DEPTH,
		BeamNumber: meta.BEAM_NUMBER,
		Threshold:  meta.TIME_THRESHOLD,
		Iterations: meta.ITERATIONS,
		StartTemp:  meta.START_TEMP,
		EndTemp:    meta.END_TEMP,
		Games:      meta.GAMES,
		Workers:    meta.WORKERS,
	}
}

// LoadConfig reads a YAML file over the defaults and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if !slices.Contains(TreeStrategies, c.Strategy) && !slices.Contains(LocalStrategies, c.Strategy) {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, c.Strategy)
	}
	if c.Games < 1 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.BeamWidth < 1 || c.BeamDepth < 1 {
		return fmt.Errorf("%w: beam width and depth must be positive, got %d and %d", ErrInvalidConfig, c.BeamWidth, c.BeamDepth)
	}
	if (c.Strategy == BeamTimed || c.Strategy == ChokudaiTimed) && c.Threshold <= 0 {
		return fmt.Errorf("%w: %s needs a positive time threshold", ErrInvalidConfig, c.Strategy)
	}
	if c.Iterations < 0 || c.StartTemp < 0 || c.EndTemp < 0 {
		return fmt.Errorf("%w: iterations and temperatures must not be negative", ErrInvalidConfig)
	}
	return nil
}

// IsLocal reports whether the strategy searches full solutions rather than
// moves.
func (c Config) IsLocal() bool {
	return slices.Contains(LocalStrategies, c.Strategy)
}
