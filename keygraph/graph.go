// Package keygraph — graph construction from a layout.
package keygraph

import (
	"sync"

	"github.com/keywalk/keywalk/layout"
)

// halfEdge is one direction of an undirected edge in the adjacency list.
type halfEdge struct {
	to int   // destination position index
	w  int64 // travel cost
}

// Graph is an immutable weighted, undirected graph over the key positions of
// a single layout geometry. Build it once; it is safe for concurrent reads.
type Graph struct {
	n    int
	adj  [][]halfEdge
	lay  *layout.Layout
	opts Options

	costOnce sync.Once
	costs    *CostMatrix
}

// Build constructs the position graph for l.
//
// Edge rules (all undirected):
//  1. Within a row: (r, c) — (r, c+1), weight StepWeight.
//  2. Between adjacent rows of the same mode: (r, c) — (r+1, c), weight
//     StepWeight; with Conn8 also (r, c) — (r+1, c±1).
//  3. Between adjacent modes: same (row, col) on mode m and m+1, weight
//     ModeShiftWeight, provided the coordinate exists on both.
//
// Complexity: O(K·d) time and memory for K keys.
func Build(l *layout.Layout, opts ...Option) (*Graph, error) {
	if l == nil {
		return nil, ErrNilLayout
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		n:    l.NumKeys(),
		adj:  make([][]halfEdge, l.NumKeys()),
		lay:  l,
		opts: cfg,
	}

	modes := l.Modes()
	var m, r, c int
	for m = 0; m < len(modes); m++ {
		rows := modes[m].Rows
		for r = 0; r < len(rows); r++ {
			for c = 0; c < len(rows[r]); c++ {
				from := layout.Position{Mode: m, Row: r, Col: c}

				// In-row neighbor to the right.
				g.link(l, from, layout.Position{Mode: m, Row: r, Col: c + 1}, cfg.StepWeight)

				// Next-row neighbors: straight down, plus diagonals for Conn8.
				g.link(l, from, layout.Position{Mode: m, Row: r + 1, Col: c}, cfg.StepWeight)
				if cfg.Conn == Conn8 {
					g.link(l, from, layout.Position{Mode: m, Row: r + 1, Col: c - 1}, cfg.StepWeight)
					g.link(l, from, layout.Position{Mode: m, Row: r + 1, Col: c + 1}, cfg.StepWeight)
				}

				// Mode switch at the same coordinate.
				g.link(l, from, layout.Position{Mode: m + 1, Row: r, Col: c}, cfg.ModeShiftWeight)
			}
		}
	}

	return g, nil
}

// link adds an undirected edge between two structural positions if both
// exist. Missing coordinates (ragged rows, last mode) are silently skipped.
func (g *Graph) link(l *layout.Layout, from, to layout.Position, w int64) {
	u, ok := l.FlatIndex(from)
	if !ok {
		return
	}
	v, ok := l.FlatIndex(to)
	if !ok {
		return
	}
	g.adj[u] = append(g.adj[u], halfEdge{to: v, w: w})
	g.adj[v] = append(g.adj[v], halfEdge{to: u, w: w})
}

// NumKeys returns the number of vertices (key positions).
func (g *Graph) NumKeys() int { return g.n }

// Layout returns the layout this graph was built from.
func (g *Graph) Layout() *layout.Layout { return g.lay }

// Options returns the options the graph was built with.
func (g *Graph) Options() Options { return g.opts }

// Degree returns the number of incident half-edges at position idx.
// Returns ErrIndexOutOfRange for invalid indices.
func (g *Graph) Degree(idx int) (int, error) {
	if idx < 0 || idx >= g.n {
		return 0, ErrIndexOutOfRange
	}

	return len(g.adj[idx]), nil
}
