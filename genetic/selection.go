// Package genetic - parent selection operators.
package genetic

import "math/rand"

// selectParent dispatches on the configured method. pop must be non-empty;
// the engine guarantees that.
func selectParent(pop Population, opts Options, rng *rand.Rand) Individual {
	switch opts.Selection {
	case SelectRoulette:
		return selectRoulette(pop, rng)
	default:
		return selectTournament(pop, opts.TournamentSize, rng)
	}
}

// selectTournament samples k individuals uniformly with replacement and
// returns the fittest. Larger k raises selection pressure.
//
// Complexity: O(k).
func selectTournament(pop Population, k int, rng *rand.Rand) Individual {
	best := pop[rng.Intn(len(pop))]
	for i := 1; i < k; i++ {
		c := pop[rng.Intn(len(pop))]
		if c.Fitness > best.Fitness {
			best = c
		}
	}

	return best
}

// selectRoulette draws one individual with probability proportional to its
// fitness. Fitness scores are strictly positive (1/(1+cost)), so the total
// mass is nonzero for any non-empty population.
//
// Complexity: O(n).
func selectRoulette(pop Population, rng *rand.Rand) Individual {
	var total float64
	for i := range pop {
		total += pop[i].Fitness
	}

	// Degenerate mass: fall back to uniform choice.
	if total <= 0 {
		return pop[rng.Intn(len(pop))]
	}

	spin := rng.Float64() * total
	for i := range pop {
		spin -= pop[i].Fitness
		if spin <= 0 {
			return pop[i]
		}
	}

	// Floating-point residue: the wheel overshot by a hair.
	return pop[len(pop)-1]
}
