// Package genetic - the evolutionary engine.
package genetic

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine runs evolutionary searches. Construct once, Run per optimization;
// a single Engine may serve sequential runs but not concurrent ones.
type Engine struct {
	eval Evaluator
	opts Options
	log  *zap.Logger
}

// NewEngine validates opts and binds the evaluator. log may be nil, in
// which case the engine stays silent.
func NewEngine(eval Evaluator, opts Options, log *zap.Logger) (*Engine, error) {
	if eval == nil {
		return nil, ErrNilEvaluator
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{eval: eval, opts: opts, log: log}, nil
}

// Run evolves a population seeded from genome and returns the best
// individual found. The seed genome itself enters the initial population
// unshuffled, so the result is never worse than the starting layout.
//
// Cancellation: ctx is honored between generations and inside parallel
// evaluation; a canceled run returns ctx.Err().
//
// Complexity: O(G · P · (E + n)) where E is one evaluation and n the
// genome length.
func (e *Engine) Run(ctx context.Context, genome []rune) (Result, error) {
	if len(genome) == 0 {
		return Result{}, ErrEmptyGenome
	}

	rng := rngFromSeed(e.opts.Seed)
	pop := e.initialPopulation(genome, rng)

	if err := e.evaluateAll(ctx, pop); err != nil {
		return Result{}, err
	}
	sort.Stable(pop)

	var (
		res   = Result{Best: pop[0].Clone(), History: make([]float64, 0, e.opts.Generations)}
		stall int
	)

	for gen := 1; gen <= e.opts.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("genetic: run canceled: %w", err)
		}

		next := e.breed(pop, rng)
		if err := e.evaluateAll(ctx, next); err != nil {
			return Result{}, err
		}
		sort.Stable(next)
		pop = next

		res.Generations = gen
		res.History = append(res.History, pop[0].Fitness)

		if pop[0].Fitness > res.Best.Fitness {
			res.Best = pop[0].Clone()
			stall = 0
		} else {
			stall++
		}

		e.log.Debug("generation complete",
			zap.Int("generation", gen),
			zap.Float64("best_fitness", pop[0].Fitness),
			zap.Int("stall", stall))

		if e.opts.OnGeneration != nil {
			e.opts.OnGeneration(gen, pop[0])
		}

		if e.opts.StallLimit > 0 && stall >= e.opts.StallLimit {
			res.Stalled = true
			e.log.Info("converged, stopping early",
				zap.Int("generation", gen),
				zap.Int("stall_limit", e.opts.StallLimit))

			break
		}
	}

	return res, nil
}

// initialPopulation seeds individual 0 with the reference genome verbatim
// and fills the rest with independent shuffles of it.
func (e *Engine) initialPopulation(genome []rune, rng *rand.Rand) Population {
	pop := make(Population, e.opts.PopulationSize)
	for i := range pop {
		g := make([]rune, len(genome))
		copy(g, genome)
		if i > 0 {
			shuffleRunesInPlace(g, rng)
		}
		pop[i] = Individual{Genome: g}
	}

	return pop
}

// breed produces the next generation: elites first, then offspring from
// selection, crossover, and mutation. pop must already be sorted.
func (e *Engine) breed(pop Population, rng *rand.Rand) Population {
	next := make(Population, 0, len(pop))
	for i := 0; i < e.opts.Elitism; i++ {
		next = append(next, pop[i].Clone())
	}

	for len(next) < len(pop) {
		p1 := selectParent(pop, e.opts, rng)

		var child []rune
		if rng.Float64() < e.opts.CrossoverRate {
			p2 := selectParent(pop, e.opts, rng)
			child = crossover(p1.Genome, p2.Genome, e.opts, rng)
		} else {
			child = p1.Clone().Genome
		}

		if rng.Float64() < e.opts.MutationRate {
			mutate(child, e.opts, rng)
		}

		next = append(next, Individual{Genome: child})
	}

	return next
}

// evaluateAll scores every individual, fanning out across opts.Workers
// goroutines. Evaluation is pure, so parallelism does not perturb
// determinism.
func (e *Engine) evaluateAll(ctx context.Context, pop Population) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.workers())

	for i := range pop {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pop[i].Fitness = e.eval.Evaluate(pop[i].Genome)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("genetic: evaluating population: %w", err)
	}

	return nil
}
