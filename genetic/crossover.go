// Package genetic - permutation-preserving crossover operators.
//
// Both operators assume the parents are permutations of the same character
// set; the child is then a permutation of that set as well. Layouts
// guarantee uniqueness of typeable characters, so no repair pass exists.
package genetic

import "math/rand"

// crossover dispatches on the configured method and returns a fresh child
// genome. Parents are never modified.
func crossover(a, b []rune, opts Options, rng *rand.Rand) []rune {
	switch opts.Crossover {
	case CrossoverPMX:
		return crossoverPMX(a, b, rng)
	default:
		return crossoverOX(a, b, rng)
	}
}

// cutPoints returns two indices i ≤ j in [0,n). The segment [i,j] is the
// inherited slice.
func cutPoints(n int, rng *rand.Rand) (int, int) {
	i, j := rng.Intn(n), rng.Intn(n)
	if i > j {
		i, j = j, i
	}

	return i, j
}

// crossoverOX implements order crossover (OX1): the child inherits the
// segment a[i..j] in place, then the remaining positions are filled with
// b's genes in b's order, skipping genes already present.
//
// Complexity: O(n) time, O(n) space.
func crossoverOX(a, b []rune, rng *rand.Rand) []rune {
	n := len(a)
	child := make([]rune, n)
	i, j := cutPoints(n, rng)

	used := make(map[rune]struct{}, j-i+1)
	for k := i; k <= j; k++ {
		child[k] = a[k]
		used[a[k]] = struct{}{}
	}

	// Fill the circular order j+1 … n-1, 0 … i-1 with b's genes, starting
	// b's scan just past the segment as well. pos==i means every position
	// outside the segment is filled.
	pos := (j + 1) % n
	for k := 0; k < n && pos != i; k++ {
		g := b[(j+1+k)%n]
		if _, ok := used[g]; ok {
			continue
		}
		child[pos] = g
		pos = (pos + 1) % n
	}

	return child
}

// crossoverPMX implements partially mapped crossover: the child inherits
// a[i..j], and every other position takes b's gene, chased through the
// segment mapping until it lands on a gene outside the segment.
//
// Complexity: O(n) expected time, O(n) space.
func crossoverPMX(a, b []rune, rng *rand.Rand) []rune {
	n := len(a)
	child := make([]rune, n)
	i, j := cutPoints(n, rng)

	// mapping: gene of a in the segment → gene of b at the same position.
	mapping := make(map[rune]rune, j-i+1)
	inSegment := make(map[rune]struct{}, j-i+1)
	for k := i; k <= j; k++ {
		child[k] = a[k]
		mapping[a[k]] = b[k]
		inSegment[a[k]] = struct{}{}
	}

	for k := 0; k < n; k++ {
		if k >= i && k <= j {
			continue
		}
		g := b[k]
		for {
			if _, ok := inSegment[g]; !ok {
				break
			}
			g = mapping[g]
		}
		child[k] = g
	}

	return child
}
