// Package keygraph — dense all-pairs travel costs.
//
// CostMatrix is a row-major dense matrix of float64 travel costs between
// key positions. +Inf means "no route"; the diagonal is always 0. The
// Floyd–Warshall closure runs in a fixed k → i → j loop order so repeated
// builds accumulate identically.
package keygraph

import "math"

// CostMatrix holds all-pairs shortest travel costs over position indices.
type CostMatrix struct {
	n    int
	data []float64 // flat row-major buffer, length n*n
}

// Rows returns the matrix order (number of key positions).
func (m *CostMatrix) Rows() int { return m.n }

// At returns the travel cost between positions i and j, bounds-checked.
func (m *CostMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexOutOfRange
	}

	return m.data[i*m.n+j], nil
}

// Cost returns the travel cost between positions i and j without bounds
// checks. Callers on hot paths must validate indices beforehand; this is
// the accessor the fitness evaluator uses per bigram.
func (m *CostMatrix) Cost(i, j int) float64 { return m.data[i*m.n+j] }

// CostMatrix computes (once) and returns the all-pairs travel costs for the
// graph. Subsequent calls return the cached matrix: the geometry of a graph
// never changes, only the characters placed on it do, so one closure serves
// every layout permutation of the run.
//
// Complexity: O(K³) on first call, O(1) afterwards.
func (g *Graph) CostMatrix() *CostMatrix {
	g.costOnce.Do(func() {
		g.costs = g.buildCostMatrix()
	})

	return g.costs
}

// buildCostMatrix initializes the distance matrix from adjacency and runs
// the in-place Floyd–Warshall closure.
func (g *Graph) buildCostMatrix() *CostMatrix {
	n := g.n
	data := make([]float64, n*n)

	// 1) Init: diagonal 0, +Inf elsewhere.
	inf := math.Inf(1)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				data[i*n+j] = inf
			}
		}
	}

	// 2) Seed direct edges; parallel half-edges keep the minimum.
	var w float64
	for i = 0; i < n; i++ {
		for _, e := range g.adj[i] {
			w = float64(e.w)
			if w < data[i*n+e.to] {
				data[i*n+e.to] = w
			}
		}
	}

	// 3) Closure with fixed loop order (k → i → j) for determinism.
	var (
		k            int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k; no path via k can improve i→j
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return &CostMatrix{n: n, data: data}
}
