// Package genetic - in-place mutation operators.
package genetic

import "math/rand"

// mutate dispatches on the configured method. The genome is modified in
// place; both operators preserve the permutation property.
func mutate(g []rune, opts Options, rng *rand.Rand) {
	if len(g) < 2 {
		return
	}
	switch opts.Mutation {
	case MutateInversion:
		mutateInversion(g, rng)
	default:
		mutateSwap(g, rng)
	}
}

// mutateSwap exchanges two distinct random positions.
//
// Complexity: O(1).
func mutateSwap(g []rune, rng *rand.Rand) {
	i := rng.Intn(len(g))
	j := rng.Intn(len(g) - 1)
	if j >= i {
		j++ // guarantee j != i
	}
	g[i], g[j] = g[j], g[i]
}

// mutateInversion reverses a random segment. Adjacent keys stay adjacent
// inside the segment, which makes this a gentler step than repeated swaps.
//
// Complexity: O(n).
func mutateInversion(g []rune, rng *rand.Rand) {
	i, j := cutPoints(len(g), rng)
	for i < j {
		g[i], g[j] = g[j], g[i]
		i++
		j--
	}
}
