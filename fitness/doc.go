// Package fitness scores keyboard layouts against a training corpus using
// all-pairs travel costs from the keygraph package.
//
// The evaluator is built once per run: it binds the cost matrix (a property
// of the fixed key geometry), the genome slots of the layout, and the corpus
// statistics. Each candidate layout is then just a permutation of characters
// over those slots, so a single evaluation is a pass over the corpus bigram
// table with O(1) cost lookups.
//
// Raw cost of a genome:
//
//	travel = Σ freq(a,b) · cost(pos(a), pos(b)) / Σ freq(a,b)
//	reach  = Σ freq(c)   · cost(home, pos(c))   / Σ freq(c)
//	raw    = Weights.Travel·travel + Weights.Reach·reach
//
// where home is the central key of the middle row of the first mode.
// Bigrams with characters absent from the layout are skipped; position
// pairs without a route contribute a large finite penalty instead of +Inf.
//
// The fitness score is 1 / (1 + raw): strictly positive, higher is better,
// and deterministic for a given genome and corpus.
package fitness
