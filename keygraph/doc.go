// Package keygraph turns a keyboard layout into a weighted, undirected graph
// of key positions and answers travel-cost queries over it.
//
// Vertices are the flat position indices of a layout.Layout (every key,
// control keys included: fingers travel over them too). Edges connect
//
//   - horizontal neighbors within a row,
//   - vertical (and, under Conn8, diagonal) neighbors between rows,
//   - identical (row, col) coordinates of adjacent modes, weighted by the
//     mode-switch cost.
//
// Two query paths are provided:
//
//   - ShortestPath — single-pair Dijkstra with a lazy-decrease-key min-heap;
//     returns the cost and the position path, or ErrNoPath.
//   - CostMatrix — all-pairs travel costs via Floyd–Warshall on a dense
//     matrix; +Inf encodes "no route". The matrix is computed once per
//     graph and cached, since the geometry never changes during a run —
//     only the characters on top of it do.
//
// Complexity:
//
//   - Build:        O(K·d) for K keys and degree d.
//   - ShortestPath: O((K + E) log K).
//   - CostMatrix:   O(K³) once, O(1) per lookup afterwards.
//
// Errors (sentinel):
//
//   - ErrNilLayout       if the layout pointer is nil.
//   - ErrIndexOutOfRange if a queried position index is outside [0, K).
//   - ErrNoPath          if no route exists between two positions.
//   - ErrBadWeight       if an option sets a non-positive edge weight.
package keygraph
