// Package genetic implements the evolutionary search that drives layout
// optimization.
//
// Genomes are permutations of a fixed character set over the typeable slots
// of a keyboard geometry. Every operator in this package (selection,
// crossover, mutation) preserves the permutation property, so a population
// never needs repair.
//
// # Pipeline
//
// Engine.Run seeds a population from one reference genome, evaluates it,
// and iterates:
//
//  1. sort the population by fitness, descending (stable),
//  2. copy the top Elitism individuals unchanged,
//  3. breed the remainder: select two parents, recombine with probability
//     CrossoverRate, mutate with probability MutationRate,
//  4. evaluate the offspring in parallel.
//
// The loop stops after Generations rounds, after StallLimit rounds without
// improvement, or when the context is canceled.
//
// # Determinism
//
// All stochastic choices flow from Options.Seed through a single
// deterministic stream; parallel fitness evaluation is pure, so the same
// seed, evaluator, and genome reproduce the same result bit for bit.
// Seed==0 selects a fixed default stream, never the clock.
//
// # Errors
//
// Construction and Run return sentinel errors only:
// ErrNilEvaluator, ErrPopulationSize, ErrGenerations, ErrRate,
// ErrElitism, ErrTournamentSize, ErrUnknownOperator, ErrEmptyGenome.
package genetic
