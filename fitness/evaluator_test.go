// Package fitness_test checks evaluator construction and score ordering.
package fitness_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keywalk/keywalk/corpus"
	"github.com/keywalk/keywalk/fitness"
	"github.com/keywalk/keywalk/keygraph"
	"github.com/keywalk/keywalk/layout"
)

// gridEvaluator builds a 2×3 single-mode geometry
//
//	a b c
//	d e f
//
// and an evaluator over the given training text.
func gridEvaluator(t *testing.T, text string) (*fitness.Evaluator, *layout.Layout) {
	t.Helper()

	l, err := layout.New([]layout.Mode{{
		Name: "default",
		Rows: [][]string{{"a", "b", "c"}, {"d", "e", "f"}},
	}})
	require.NoError(t, err)

	g, err := keygraph.Build(l)
	require.NoError(t, err)

	stats, err := corpus.Scan(strings.NewReader(text), corpus.DefaultOptions())
	require.NoError(t, err)

	ev, err := fitness.NewEvaluator(g, stats, fitness.DefaultWeights())
	require.NoError(t, err)

	return ev, l
}

func TestNewEvaluator_Validation(t *testing.T) {
	l := layout.MustPreset(layout.PresetQWERTY)
	g, err := keygraph.Build(l)
	require.NoError(t, err)

	stats, err := corpus.Scan(strings.NewReader("hello"), corpus.DefaultOptions())
	require.NoError(t, err)

	_, err = fitness.NewEvaluator(nil, stats, fitness.DefaultWeights())
	require.ErrorIs(t, err, fitness.ErrNilGraph)

	_, err = fitness.NewEvaluator(g, nil, fitness.DefaultWeights())
	require.ErrorIs(t, err, fitness.ErrNilStats)

	_, err = fitness.NewEvaluator(g, corpus.NewStats(), fitness.DefaultWeights())
	require.ErrorIs(t, err, corpus.ErrEmptyCorpus)
}

func TestEvaluate_PrefersAdjacentFrequentBigrams(t *testing.T) {
	ev, l := gridEvaluator(t, "abababab")

	near := l.Chars() // a,b occupy adjacent slots
	far := []rune{'a', 'f', 'c', 'd', 'e', 'b'}

	assert.Less(t, ev.Cost(near), ev.Cost(far))
	assert.Greater(t, ev.Evaluate(near), ev.Evaluate(far))
}

func TestEvaluate_Deterministic(t *testing.T) {
	ev, l := gridEvaluator(t, "the quick brown fox abc def")

	genome := l.Chars()
	first := ev.Evaluate(genome)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ev.Evaluate(genome))
	}
}

func TestEvaluate_ScoreRange(t *testing.T) {
	ev, l := gridEvaluator(t, "fedcba abcdef")

	score := ev.Evaluate(l.Chars())
	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestEvaluate_WrongGenomeLength(t *testing.T) {
	ev, _ := gridEvaluator(t, "abc")

	assert.Zero(t, ev.Evaluate([]rune{'a', 'b'}))
}

func TestEvaluate_SkipsUnknownCharacters(t *testing.T) {
	// Corpus contains 'z', which the 6-key grid cannot place.
	ev, l := gridEvaluator(t, "azb")

	score := ev.Evaluate(l.Chars())
	assert.Greater(t, score, 0.0)
}
