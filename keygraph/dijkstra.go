// Package keygraph — single-pair shortest path.
//
// The implementation is textbook Dijkstra with a lazy-decrease-key strategy:
// improved distances push duplicate heap entries, and stale entries are
// skipped when popped. Weights are validated positive at Build time, so no
// negative-weight scan is needed here.
package keygraph

import (
	"container/heap"
	"math"
)

// ShortestPath computes the minimum travel cost between two position
// indices and the sequence of positions along it (inclusive of endpoints).
//
// Returns:
//
//   - cost: total edge weight of the cheapest route.
//   - path: position indices from `from` to `to`; for from==to it is the
//     single-element path with cost 0.
//   - err:  ErrIndexOutOfRange for invalid indices, ErrNoPath if `to` is
//     unreachable.
//
// Complexity: O((K + E) log K) time, O(K + E) space.
func (g *Graph) ShortestPath(from, to int) (int64, []int, error) {
	// 1) Validate both endpoints before touching any state.
	if from < 0 || from >= g.n {
		return 0, nil, ErrIndexOutOfRange
	}
	if to < 0 || to >= g.n {
		return 0, nil, ErrIndexOutOfRange
	}

	// 2) Trivial query: a position reaches itself for free.
	if from == to {
		return 0, []int{from}, nil
	}

	// 3) Standard state: dist, predecessor, finalized set, min-heap.
	dist := make([]int64, g.n)
	prev := make([]int, g.n)
	done := make([]bool, g.n)
	for i := range dist {
		dist[i] = math.MaxInt64
		prev[i] = -1
	}
	dist[from] = 0

	pq := make(posPQ, 0, g.n)
	heap.Init(&pq)
	heap.Push(&pq, &posItem{idx: from, dist: 0})

	// 4) Main loop; stop as soon as `to` is finalized.
	var u int
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*posItem)
		u = item.idx
		if done[u] {
			continue // stale lazy-decrease-key entry
		}
		done[u] = true
		if u == to {
			break
		}

		for _, e := range g.adj[u] {
			if done[e.to] {
				continue
			}
			cand := dist[u] + e.w
			if cand >= dist[e.to] {
				continue
			}
			dist[e.to] = cand
			prev[e.to] = u
			heap.Push(&pq, &posItem{idx: e.to, dist: cand})
		}
	}

	// 5) Unreachable target.
	if dist[to] == math.MaxInt64 {
		return 0, nil, ErrNoPath
	}

	// 6) Reconstruct the path by walking predecessors backwards.
	path := []int{to}
	for v := prev[to]; v != -1; v = prev[v] {
		path = append(path, v)
	}
	// Reverse in place: we collected to→from.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return dist[to], path, nil
}

// posItem is a heap entry: a position index with its tentative distance.
type posItem struct {
	idx  int
	dist int64
}

// posPQ is a min-heap of *posItem ordered by distance ascending.
type posPQ []*posItem

func (pq posPQ) Len() int            { return len(pq) }
func (pq posPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq posPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *posPQ) Push(x interface{}) { *pq = append(*pq, x.(*posItem)) }
func (pq *posPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
