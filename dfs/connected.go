package dfs

import "github.com/katalvlaran/multigraph/core"

// Reachable returns the set of vertices reachable from start along
// outgoing edges, start included. A missing start or nil graph yields an
// empty set.
//
// It uses an explicit stack instead of recursion so long chains cannot
// exhaust the goroutine stack.
// Complexity: O(V + E).
func Reachable[V comparable, W core.Weight](g *core.Graph[V, W], start V) map[V]struct{} {
	seen := make(map[V]struct{})
	if g == nil || !g.HasVertex(start) {
		return seen
	}

	stack := []V{start}
	seen[start] = struct{}{}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.OutEdges(v) {
			if _, ok := seen[e.To]; ok {
				continue
			}
			seen[e.To] = struct{}{}
			stack = append(stack, e.To)
		}
	}

	return seen
}

// IsConnected reports whether every vertex of g can reach every other
// vertex along directed edges, i.e. whether g is strongly connected.
// The empty graph and a nil graph are connected.
//
// Each vertex is explored in turn and the check stops at the first one
// that misses some vertex.
// Complexity: O(V * (V + E)).
func IsConnected[V comparable, W core.Weight](g *core.Graph[V, W]) bool {
	if g == nil {
		return true
	}
	vertices := g.Vertices()
	for _, v := range vertices {
		if len(Reachable(g, v)) != len(vertices) {
			return false
		}
	}

	return true
}
