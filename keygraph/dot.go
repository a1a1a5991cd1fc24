// Package keygraph — DOT export of the position graph.
package keygraph

import (
	"fmt"
	"io"
	"strings"
)

// DOT writes the position graph in Graphviz dot format. Vertices are
// labeled with their key label and structural position; each undirected
// edge is emitted once with its weight.
//
// Complexity: O(K + E).
func (g *Graph) DOT(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "graph keywalk {"); err != nil {
		return err
	}

	var (
		idx int
		err error
	)
	for idx = 0; idx < g.n; idx++ {
		pos, _ := g.lay.PositionAt(idx)
		label := g.lay.At(pos)
		_, err = fmt.Fprintf(w, "  n%d [label=\"%s\"]; // mode=%d row=%d col=%d\n",
			idx, escapeLabel(label), pos.Mode, pos.Row, pos.Col)
		if err != nil {
			return err
		}
	}

	// Emit each undirected edge once: the adjacency stores both directions,
	// so keep only u < v.
	for idx = 0; idx < g.n; idx++ {
		for _, e := range g.adj[idx] {
			if idx >= e.to {
				continue
			}
			if _, err = fmt.Fprintf(w, "  n%d -- n%d [weight=%d];\n", idx, e.to, e.w); err != nil {
				return err
			}
		}
	}

	_, err = fmt.Fprintln(w, "}")

	return err
}

// escapeLabel makes a key label safe inside a quoted DOT string.
func escapeLabel(label string) string {
	label = strings.ReplaceAll(label, `\`, `\\`)

	return strings.ReplaceAll(label, `"`, `\"`)
}
