// File: print.go
// Role: Human-readable dump of the graph for debugging and logs.
// Not a compatibility contract: the format may change between releases.

package core

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes one line per vertex, in vertex order:
//
//	A: [A -> B (5), A -> C (3)]
//	D: []
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - Any error returned by w.
//
// Complexity: O(V + E).
func Fprint[V comparable, W Weight](w io.Writer, g *Graph[V, W]) error {
	if g == nil {
		return ErrNilGraph
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	for p := g.vertices.Oldest(); p != nil; p = p.Next() {
		fmt.Fprintf(&sb, "%v: [", p.Key)
		for i, e := range g.edges[p.Key] {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.String())
		}
		sb.WriteString("]\n")
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// String returns the Fprint dump as a string.
func (g *Graph[V, W]) String() string {
	var sb strings.Builder
	_ = Fprint(&sb, g)

	return sb.String()
}
