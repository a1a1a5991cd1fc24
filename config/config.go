package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/keywalk/keywalk/corpus"
	"github.com/keywalk/keywalk/fitness"
	"github.com/keywalk/keywalk/genetic"
	"github.com/keywalk/keywalk/keygraph"
	"github.com/keywalk/keywalk/layout"
)

// Sentinel errors for configuration validation.
var (
	// ErrUnknownConnectivity indicates Graph.Connectivity is neither "4" nor "8".
	ErrUnknownConnectivity = errors.New("config: connectivity must be \"4\" or \"8\"")

	// ErrNonPositiveWeight indicates a graph edge weight ≤ 0.
	ErrNonPositiveWeight = errors.New("config: edge weights must be positive")

	// ErrUnknownName indicates an unrecognized operator or preset name.
	ErrUnknownName = errors.New("config: unknown name")
)

// GraphConfig controls keygraph construction.
type GraphConfig struct {
	StepWeight      int64  `yaml:"step_weight"`
	ModeShiftWeight int64  `yaml:"mode_shift_weight"`
	Connectivity    string `yaml:"connectivity"`
}

// CorpusConfig controls training-text scanning.
type CorpusConfig struct {
	FoldCase   bool `yaml:"fold_case"`
	MaxLineLen int  `yaml:"max_line_len"`
}

// GeneticConfig controls the evolutionary run. Operator names use the
// String() spellings of the genetic package ("tournament", "ox", "swap", …).
type GeneticConfig struct {
	PopulationSize int     `yaml:"population"`
	Generations    int     `yaml:"generations"`
	CrossoverRate  float64 `yaml:"crossover_rate"`
	MutationRate   float64 `yaml:"mutation_rate"`
	Elitism        int     `yaml:"elitism"`
	TournamentSize int     `yaml:"tournament_size"`
	Workers        int     `yaml:"workers"`
	Seed           int64   `yaml:"seed"`
	StallLimit     int     `yaml:"stall_limit"`
	Selection      string  `yaml:"selection"`
	Crossover      string  `yaml:"crossover"`
	Mutation       string  `yaml:"mutation"`
}

// Config is the full run configuration.
type Config struct {
	Layout  string          `yaml:"layout"`
	Graph   GraphConfig     `yaml:"graph"`
	Corpus  CorpusConfig    `yaml:"corpus"`
	Weights fitness.Weights `yaml:"weights"`
	Genetic GeneticConfig   `yaml:"genetic"`
}

// Default mirrors the defaults of the domain packages.
func Default() Config {
	gopts := keygraph.DefaultOptions()
	copts := corpus.DefaultOptions()
	eopts := genetic.DefaultOptions()

	return Config{
		Layout: layout.PresetQWERTY,
		Graph: GraphConfig{
			StepWeight:      gopts.StepWeight,
			ModeShiftWeight: gopts.ModeShiftWeight,
			Connectivity:    "4",
		},
		Corpus: CorpusConfig{
			FoldCase:   copts.FoldCase,
			MaxLineLen: copts.MaxLineLen,
		},
		Weights: fitness.DefaultWeights(),
		Genetic: GeneticConfig{
			PopulationSize: eopts.PopulationSize,
			Generations:    eopts.Generations,
			CrossoverRate:  eopts.CrossoverRate,
			MutationRate:   eopts.MutationRate,
			Elitism:        eopts.Elitism,
			TournamentSize: eopts.TournamentSize,
			Workers:        eopts.Workers,
			Seed:           eopts.Seed,
			StallLimit:     eopts.StallLimit,
			Selection:      eopts.Selection.String(),
			Crossover:      eopts.Crossover.String(),
			Mutation:       eopts.Mutation.String(),
		},
	}
}

// Load reads a YAML file over the defaults. Unknown keys fail the load so
// typos surface immediately.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks everything that can be checked without building the run:
// preset, connectivity, weights, operator names. Numeric GA parameters are
// validated by genetic.NewEngine.
func (c Config) Validate() error {
	if _, err := layout.Preset(c.Layout); err != nil {
		return fmt.Errorf("config: layout: %w", err)
	}
	if c.Graph.StepWeight <= 0 || c.Graph.ModeShiftWeight <= 0 {
		return ErrNonPositiveWeight
	}
	if _, err := c.connectivity(); err != nil {
		return err
	}
	if _, err := ParseSelection(c.Genetic.Selection); err != nil {
		return err
	}
	if _, err := ParseCrossover(c.Genetic.Crossover); err != nil {
		return err
	}
	if _, err := ParseMutation(c.Genetic.Mutation); err != nil {
		return err
	}

	return nil
}

func (c Config) connectivity() (keygraph.Connectivity, error) {
	switch c.Graph.Connectivity {
	case "4":
		return keygraph.Conn4, nil
	case "8":
		return keygraph.Conn8, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownConnectivity, c.Graph.Connectivity)
	}
}

// GraphOptions translates the graph section into keygraph options.
func (c Config) GraphOptions() ([]keygraph.Option, error) {
	conn, err := c.connectivity()
	if err != nil {
		return nil, err
	}
	if c.Graph.StepWeight <= 0 || c.Graph.ModeShiftWeight <= 0 {
		return nil, ErrNonPositiveWeight
	}

	return []keygraph.Option{
		keygraph.WithStepWeight(c.Graph.StepWeight),
		keygraph.WithModeShiftWeight(c.Graph.ModeShiftWeight),
		keygraph.WithConnectivity(conn),
	}, nil
}

// CorpusOptions translates the corpus section.
func (c Config) CorpusOptions() corpus.Options {
	return corpus.Options{
		FoldCase:   c.Corpus.FoldCase,
		MaxLineLen: c.Corpus.MaxLineLen,
	}
}

// GeneticOptions translates the genetic section. Operator names are parsed
// here; numeric bounds are left to genetic.NewEngine.
func (c Config) GeneticOptions() (genetic.Options, error) {
	sel, err := ParseSelection(c.Genetic.Selection)
	if err != nil {
		return genetic.Options{}, err
	}
	cx, err := ParseCrossover(c.Genetic.Crossover)
	if err != nil {
		return genetic.Options{}, err
	}
	mut, err := ParseMutation(c.Genetic.Mutation)
	if err != nil {
		return genetic.Options{}, err
	}

	return genetic.Options{
		PopulationSize: c.Genetic.PopulationSize,
		Generations:    c.Genetic.Generations,
		CrossoverRate:  c.Genetic.CrossoverRate,
		MutationRate:   c.Genetic.MutationRate,
		Elitism:        c.Genetic.Elitism,
		TournamentSize: c.Genetic.TournamentSize,
		Workers:        c.Genetic.Workers,
		Seed:           c.Genetic.Seed,
		StallLimit:     c.Genetic.StallLimit,
		Selection:      sel,
		Crossover:      cx,
		Mutation:       mut,
	}, nil
}

// ParseSelection maps a config/CLI spelling to a SelectionMethod.
func ParseSelection(s string) (genetic.SelectionMethod, error) {
	switch s {
	case "tournament":
		return genetic.SelectTournament, nil
	case "roulette":
		return genetic.SelectRoulette, nil
	default:
		return 0, fmt.Errorf("%w: selection %q", ErrUnknownName, s)
	}
}

// ParseCrossover maps a config/CLI spelling to a CrossoverMethod.
func ParseCrossover(s string) (genetic.CrossoverMethod, error) {
	switch s {
	case "ox":
		return genetic.CrossoverOX, nil
	case "pmx":
		return genetic.CrossoverPMX, nil
	default:
		return 0, fmt.Errorf("%w: crossover %q", ErrUnknownName, s)
	}
}

// ParseMutation maps a config/CLI spelling to a MutationMethod.
func ParseMutation(s string) (genetic.MutationMethod, error) {
	switch s {
	case "swap":
		return genetic.MutateSwap, nil
	case "inversion":
		return genetic.MutateInversion, nil
	default:
		return 0, fmt.Errorf("%w: mutation %q", ErrUnknownName, s)
	}
}
