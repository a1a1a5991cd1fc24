// Package keygraph_test validates graph construction, Dijkstra queries, the
// Floyd–Warshall cost matrix, and agreement between the two query paths.
package keygraph_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keywalk/keywalk/keygraph"
	"github.com/keywalk/keywalk/layout"
)

// gridLayout returns a single-mode 2×3 layout:
//
//	a b c
//	d e f
func gridLayout(t *testing.T) *layout.Layout {
	t.Helper()
	l, err := layout.New([]layout.Mode{
		{Name: "default", Rows: [][]string{
			{"a", "b", "c"},
			{"d", "e", "f"},
		}},
	})
	require.NoError(t, err)

	return l
}

// twoModeLayout returns two 1×2 modes stacked: "a b" / "A B".
func twoModeLayout(t *testing.T) *layout.Layout {
	t.Helper()
	l, err := layout.New([]layout.Mode{
		{Name: "default", Rows: [][]string{{"a", "b"}}},
		{Name: "shifted", Rows: [][]string{{"A", "B"}}},
	})
	require.NoError(t, err)

	return l
}

func mustIndex(t *testing.T, l *layout.Layout, ch rune) int {
	t.Helper()
	pos, ok := l.IndexOf(ch)
	require.True(t, ok, "IndexOf(%q)", ch)
	idx, ok := l.FlatIndex(pos)
	require.True(t, ok)

	return idx
}

func TestBuild_NilLayout(t *testing.T) {
	_, err := keygraph.Build(nil)
	require.ErrorIs(t, err, keygraph.ErrNilLayout)
}

func TestBuild_BadOptionPanics(t *testing.T) {
	assert.Panics(t, func() { keygraph.WithStepWeight(0)(&keygraph.Options{}) })
	assert.Panics(t, func() { keygraph.WithModeShiftWeight(-1)(&keygraph.Options{}) })
}

func TestShortestPath_InRowAndAcrossRows(t *testing.T) {
	l := gridLayout(t)
	g, err := keygraph.Build(l)
	require.NoError(t, err)

	a := mustIndex(t, l, 'a')
	c := mustIndex(t, l, 'c')
	f := mustIndex(t, l, 'f')

	// a→c: two horizontal steps.
	cost, path, err := g.ShortestPath(a, c)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cost)
	assert.Len(t, path, 3)
	assert.Equal(t, a, path[0])
	assert.Equal(t, c, path[len(path)-1])

	// a→f: down + two right (or right twice + down) = 3 unit steps.
	cost, path, err = g.ShortestPath(a, f)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cost)
	assert.Len(t, path, 4)
}

func TestShortestPath_SelfAndValidation(t *testing.T) {
	l := gridLayout(t)
	g, err := keygraph.Build(l)
	require.NoError(t, err)

	cost, path, err := g.ShortestPath(2, 2)
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Equal(t, []int{2}, path)

	_, _, err = g.ShortestPath(-1, 0)
	require.ErrorIs(t, err, keygraph.ErrIndexOutOfRange)
	_, _, err = g.ShortestPath(0, l.NumKeys())
	require.ErrorIs(t, err, keygraph.ErrIndexOutOfRange)
}

func TestShortestPath_ModeSwitchWeight(t *testing.T) {
	l := twoModeLayout(t)
	g, err := keygraph.Build(l, keygraph.WithModeShiftWeight(5))
	require.NoError(t, err)

	a := mustIndex(t, l, 'a')
	upperA := mustIndex(t, l, 'A')
	upperB := mustIndex(t, l, 'B')

	// a→A: one mode switch.
	cost, _, err := g.ShortestPath(a, upperA)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cost)

	// a→B: cheaper to step right first (1), then switch (5).
	cost, path, err := g.ShortestPath(a, upperB)
	require.NoError(t, err)
	assert.Equal(t, int64(6), cost)
	assert.Len(t, path, 3)
}

func TestConn8_DiagonalShortcut(t *testing.T) {
	l := gridLayout(t)

	g4, err := keygraph.Build(l, keygraph.WithConnectivity(keygraph.Conn4))
	require.NoError(t, err)
	g8, err := keygraph.Build(l, keygraph.WithConnectivity(keygraph.Conn8))
	require.NoError(t, err)

	a := mustIndex(t, l, 'a')
	e := mustIndex(t, l, 'e')

	cost4, _, err := g4.ShortestPath(a, e)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cost4)

	cost8, _, err := g8.ShortestPath(a, e)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cost8, "diagonal link should shortcut a→e")
}

func TestCostMatrix_DiagonalAndSymmetry(t *testing.T) {
	l := layout.MustPreset(layout.PresetQWERTY)
	g, err := keygraph.Build(l)
	require.NoError(t, err)

	m := g.CostMatrix()
	require.Equal(t, l.NumKeys(), m.Rows())

	for i := 0; i < m.Rows(); i++ {
		d, err := m.At(i, i)
		require.NoError(t, err)
		assert.Zero(t, d, "diagonal must be zero at %d", i)
	}

	// Undirected geometry ⇒ symmetric closure. Spot-check a band.
	for i := 0; i < m.Rows(); i += 7 {
		for j := 0; j < m.Rows(); j += 11 {
			assert.Equal(t, m.Cost(i, j), m.Cost(j, i), "cost(%d,%d) asymmetric", i, j)
		}
	}
}

func TestCostMatrix_AllReachable(t *testing.T) {
	// A preset keyboard is fully connected: no +Inf anywhere.
	l := layout.MustPreset(layout.PresetQWERTY)
	g, err := keygraph.Build(l)
	require.NoError(t, err)

	m := g.CostMatrix()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Rows(); j++ {
			assert.False(t, math.IsInf(m.Cost(i, j), 1), "unreachable pair (%d,%d)", i, j)
		}
	}
}

func TestCostMatrix_AgreesWithDijkstra(t *testing.T) {
	l := twoModeLayout(t)
	g, err := keygraph.Build(l)
	require.NoError(t, err)

	m := g.CostMatrix()
	for i := 0; i < g.NumKeys(); i++ {
		for j := 0; j < g.NumKeys(); j++ {
			cost, _, err := g.ShortestPath(i, j)
			require.NoError(t, err)
			assert.Equal(t, float64(cost), m.Cost(i, j), "pair (%d,%d)", i, j)
		}
	}
}

func TestCostMatrix_Cached(t *testing.T) {
	l := gridLayout(t)
	g, err := keygraph.Build(l)
	require.NoError(t, err)

	assert.Same(t, g.CostMatrix(), g.CostMatrix())
}

func TestCostMatrix_BoundsChecked(t *testing.T) {
	l := gridLayout(t)
	g, err := keygraph.Build(l)
	require.NoError(t, err)

	_, err = g.CostMatrix().At(-1, 0)
	require.ErrorIs(t, err, keygraph.ErrIndexOutOfRange)
	_, err = g.CostMatrix().At(0, l.NumKeys())
	require.ErrorIs(t, err, keygraph.ErrIndexOutOfRange)
}

func TestDegree(t *testing.T) {
	l := gridLayout(t)
	g, err := keygraph.Build(l)
	require.NoError(t, err)

	// Corner 'a' has right + down neighbors under Conn4.
	a := mustIndex(t, l, 'a')
	deg, err := g.Degree(a)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	_, err = g.Degree(99)
	require.ErrorIs(t, err, keygraph.ErrIndexOutOfRange)
}

func TestDOT_Output(t *testing.T) {
	l := twoModeLayout(t)
	g, err := keygraph.Build(l, keygraph.WithModeShiftWeight(5))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, g.DOT(&sb))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "graph keywalk {"))
	assert.Contains(t, out, `n0 [label="a"]`)
	assert.Contains(t, out, "[weight=5]")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))

	// Each undirected edge appears exactly once: a—b, A—B, a—A, b—B.
	assert.Equal(t, 4, strings.Count(out, " -- "))
}
