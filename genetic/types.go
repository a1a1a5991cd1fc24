package genetic

import (
	"errors"
	"runtime"
)

// Sentinel errors. Callers match with errors.Is.
var (
	// ErrNilEvaluator indicates NewEngine received a nil Evaluator.
	ErrNilEvaluator = errors.New("genetic: evaluator is nil")

	// ErrPopulationSize indicates PopulationSize < 2.
	ErrPopulationSize = errors.New("genetic: population size must be at least 2")

	// ErrGenerations indicates Generations < 1.
	ErrGenerations = errors.New("genetic: generation count must be at least 1")

	// ErrRate indicates a probability outside [0,1].
	ErrRate = errors.New("genetic: rate outside [0,1]")

	// ErrElitism indicates Elitism < 0 or Elitism >= PopulationSize.
	ErrElitism = errors.New("genetic: elitism must be in [0, population)")

	// ErrTournamentSize indicates TournamentSize < 1.
	ErrTournamentSize = errors.New("genetic: tournament size must be at least 1")

	// ErrUnknownOperator indicates an unrecognized selection, crossover,
	// or mutation method.
	ErrUnknownOperator = errors.New("genetic: unknown operator")

	// ErrEmptyGenome indicates Run received an empty seed genome.
	ErrEmptyGenome = errors.New("genetic: seed genome is empty")
)

// Evaluator scores a genome. Higher is better. Implementations must be
// safe for concurrent use; the engine calls Evaluate from worker
// goroutines.
type Evaluator interface {
	Evaluate(genome []rune) float64
}

// SelectionMethod picks parents from the current population.
type SelectionMethod uint8

const (
	// SelectTournament samples TournamentSize individuals uniformly and
	// keeps the fittest. Robust default.
	SelectTournament SelectionMethod = iota

	// SelectRoulette draws fitness-proportionally. Assumes strictly
	// positive fitness, which 1/(1+cost) scoring guarantees.
	SelectRoulette
)

// String returns the CLI/config spelling of the method.
func (m SelectionMethod) String() string {
	switch m {
	case SelectTournament:
		return "tournament"
	case SelectRoulette:
		return "roulette"
	default:
		return "unknown"
	}
}

// CrossoverMethod recombines two parent genomes into one child.
type CrossoverMethod uint8

const (
	// CrossoverOX is order crossover: a slice of parent A, the rest in
	// parent B's order.
	CrossoverOX CrossoverMethod = iota

	// CrossoverPMX is partially mapped crossover: a slice of parent A
	// plus B's genes remapped through the slice.
	CrossoverPMX
)

func (m CrossoverMethod) String() string {
	switch m {
	case CrossoverOX:
		return "ox"
	case CrossoverPMX:
		return "pmx"
	default:
		return "unknown"
	}
}

// MutationMethod perturbs a genome in place.
type MutationMethod uint8

const (
	// MutateSwap exchanges two random positions.
	MutateSwap MutationMethod = iota

	// MutateInversion reverses a random segment.
	MutateInversion
)

func (m MutationMethod) String() string {
	switch m {
	case MutateSwap:
		return "swap"
	case MutateInversion:
		return "inversion"
	default:
		return "unknown"
	}
}

// Individual is one candidate: a genome and its cached fitness.
type Individual struct {
	Genome  []rune
	Fitness float64
}

// Clone deep-copies the individual so offspring never alias parents.
func (in Individual) Clone() Individual {
	g := make([]rune, len(in.Genome))
	copy(g, in.Genome)

	return Individual{Genome: g, Fitness: in.Fitness}
}

// Population implements sort.Interface with descending fitness order.
// Use sort.Stable so equal-fitness individuals keep their relative order
// and runs stay reproducible.
type Population []Individual

func (p Population) Len() int           { return len(p) }
func (p Population) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }
func (p Population) Less(i, j int) bool { return p[i].Fitness > p[j].Fitness }

// Options configures one evolutionary run.
type Options struct {
	// PopulationSize is the number of individuals per generation (≥2).
	PopulationSize int

	// Generations is the maximum number of breeding rounds (≥1).
	Generations int

	// CrossoverRate is the probability that a child is recombined from
	// two parents rather than cloned from the first.
	CrossoverRate float64

	// MutationRate is the per-child mutation probability.
	MutationRate float64

	// Elitism is the number of top individuals copied unchanged into the
	// next generation. Must be less than PopulationSize.
	Elitism int

	// TournamentSize is the sample size for SelectTournament (≥1).
	TournamentSize int

	// Workers caps concurrent fitness evaluations. 0 ⇒ GOMAXPROCS.
	Workers int

	// Seed drives all randomness. 0 ⇒ fixed default stream.
	Seed int64

	// StallLimit stops the run after this many consecutive generations
	// without fitness improvement. 0 disables the early stop.
	StallLimit int

	Selection SelectionMethod
	Crossover CrossoverMethod
	Mutation  MutationMethod

	// OnGeneration, when non-nil, is invoked after each generation with
	// the generation number (1-based) and the current best individual.
	// Called from the run goroutine; keep it cheap.
	OnGeneration func(gen int, best Individual)
}

// DefaultOptions returns a conservative configuration that converges on
// small corpora within a few hundred generations.
func DefaultOptions() Options {
	return Options{
		PopulationSize: 120,
		Generations:    300,
		CrossoverRate:  0.85,
		MutationRate:   0.15,
		Elitism:        4,
		TournamentSize: 5,
		Workers:        0,
		Seed:           0,
		StallLimit:     60,
		Selection:      SelectTournament,
		Crossover:      CrossoverOX,
		Mutation:       MutateSwap,
	}
}

// validate checks internal consistency. Sentinels only.
//
// Complexity: O(1).
func (o Options) validate() error {
	if o.PopulationSize < 2 {
		return ErrPopulationSize
	}
	if o.Generations < 1 {
		return ErrGenerations
	}
	if o.CrossoverRate < 0 || o.CrossoverRate > 1 {
		return ErrRate
	}
	if o.MutationRate < 0 || o.MutationRate > 1 {
		return ErrRate
	}
	if o.Elitism < 0 || o.Elitism >= o.PopulationSize {
		return ErrElitism
	}
	if o.TournamentSize < 1 {
		return ErrTournamentSize
	}
	if o.StallLimit < 0 {
		return ErrGenerations
	}
	switch o.Selection {
	case SelectTournament, SelectRoulette:
	default:
		return ErrUnknownOperator
	}
	switch o.Crossover {
	case CrossoverOX, CrossoverPMX:
	default:
		return ErrUnknownOperator
	}
	switch o.Mutation {
	case MutateSwap, MutateInversion:
	default:
		return ErrUnknownOperator
	}

	return nil
}

// workers resolves the effective worker count.
func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// Result is the outcome of one run.
type Result struct {
	// Best is the fittest individual observed across all generations.
	Best Individual

	// Generations is the number of breeding rounds actually executed.
	Generations int

	// Stalled reports whether the run stopped early via StallLimit.
	Stalled bool

	// History holds the best fitness after each generation, for
	// convergence reporting.
	History []float64
}
