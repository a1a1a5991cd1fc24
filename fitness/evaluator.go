// Package fitness — corpus-weighted travel-cost evaluation.
package fitness

import (
	"errors"
	"fmt"
	"math"

	"github.com/keywalk/keywalk/corpus"
	"github.com/keywalk/keywalk/keygraph"
	"github.com/keywalk/keywalk/layout"
)

// Sentinel errors for evaluator construction.
var (
	// ErrNilGraph indicates a nil *keygraph.Graph.
	ErrNilGraph = errors.New("fitness: graph is nil")

	// ErrNilStats indicates nil corpus statistics.
	ErrNilStats = errors.New("fitness: corpus stats are nil")
)

// unreachablePenalty replaces +Inf travel costs so one disconnected pair
// degrades a score without destroying the whole ordering.
const unreachablePenalty = 1e3

// Weights balances the cost components.
//
// Travel – weight of the bigram travel term.
// Reach  – weight of the unigram home-distance term.
type Weights struct {
	Travel float64 `yaml:"travel"`
	Reach  float64 `yaml:"reach"`
}

// DefaultWeights emphasizes bigram travel; reach is a light tiebreaker that
// pulls frequent characters toward the home key.
func DefaultWeights() Weights {
	return Weights{Travel: 1.0, Reach: 0.25}
}

// Evaluator scores genomes (character permutations over a fixed geometry).
// It is immutable after construction and safe for concurrent use.
type Evaluator struct {
	costs   *keygraph.CostMatrix
	slots   []int // flat position index per genome slot
	home    int   // flat index of the home anchor
	stats   *corpus.Stats
	weights Weights
}

// NewEvaluator binds a position graph and corpus statistics.
//
// Validation (in order): non-nil graph (ErrNilGraph), non-nil stats
// (ErrNilStats), non-empty corpus (corpus.ErrEmptyCorpus, wrapped).
//
// The all-pairs cost matrix is materialized here, so construction carries
// the one-time O(K³) closure cost.
func NewEvaluator(g *keygraph.Graph, stats *corpus.Stats, w Weights) (*Evaluator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if stats == nil {
		return nil, ErrNilStats
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("fitness: %w", err)
	}

	lay := g.Layout()

	return &Evaluator{
		costs:   g.CostMatrix(),
		slots:   lay.Slots(),
		home:    homeIndex(g),
		stats:   stats,
		weights: w,
	}, nil
}

// homeIndex picks the home anchor: the central key of the middle row of the
// first mode. Touch typists rest on the middle row, so reach is measured
// from there.
func homeIndex(g *keygraph.Graph) int {
	lay := g.Layout()
	modes := lay.Modes()
	rows := modes[0].Rows
	r := len(rows) / 2
	c := len(rows[r]) / 2
	idx, ok := lay.FlatIndex(layout.Position{Mode: 0, Row: r, Col: c})
	if !ok {
		return 0
	}

	return idx
}

// Evaluate returns the fitness score of a genome: 1 / (1 + raw cost).
// Genomes whose length does not match the slot count score zero.
//
// Complexity: O(B + C) over distinct bigrams and characters.
func (e *Evaluator) Evaluate(genome []rune) float64 {
	if len(genome) != len(e.slots) {
		return 0
	}

	return 1.0 / (1.0 + e.Cost(genome))
}

// Cost returns the raw weighted average travel cost of a genome.
// Lower is better. Exposed separately so callers can report interpretable
// cost numbers alongside the normalized fitness.
func (e *Evaluator) Cost(genome []rune) float64 {
	// Slot lookup: character → flat position index.
	pos := make(map[rune]int, len(genome))
	for i, ch := range genome {
		pos[ch] = e.slots[i]
	}

	var (
		travelSum  float64
		travelFreq int
		reachSum   float64
		reachFreq  int
		c          float64
	)

	for bg, freq := range e.stats.Bigrams {
		p1, ok1 := pos[bg[0]]
		p2, ok2 := pos[bg[1]]
		if !ok1 || !ok2 {
			continue // character not on this layout
		}
		c = e.costs.Cost(p1, p2)
		if math.IsInf(c, 1) {
			c = unreachablePenalty
		}
		travelSum += c * float64(freq)
		travelFreq += freq
	}

	for ch, freq := range e.stats.Chars {
		p, ok := pos[ch]
		if !ok {
			continue
		}
		c = e.costs.Cost(e.home, p)
		if math.IsInf(c, 1) {
			c = unreachablePenalty
		}
		reachSum += c * float64(freq)
		reachFreq += freq
	}

	var travel, reach float64
	if travelFreq > 0 {
		travel = travelSum / float64(travelFreq)
	}
	if reachFreq > 0 {
		reach = reachSum / float64(reachFreq)
	}

	return e.weights.Travel*travel + e.weights.Reach*reach
}
