package dfs

import "github.com/katalvlaran/multigraph/core"

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[V comparable, W core.Weight] struct {
	graph *core.Graph[V, W]
	state map[V]int // White, Gray or Black
	order []V       // post-order
}

// TopologicalSort computes an ordering of all vertices in g such that for
// every edge u→v, u appears before v. Roots are tried in vertex insertion
// order and neighbors in edge order, so the result is deterministic.
//
// Self-loops and any other directed cycle yield ErrCycleDetected.
// Complexity: O(V + E).
func TopologicalSort[V comparable, W core.Weight](g *core.Graph[V, W]) ([]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vertices := g.Vertices()
	t := &topoSorter[V, W]{
		graph: g,
		state: make(map[V]int, len(vertices)),
		order: make([]V, 0, len(vertices)),
	}
	for _, v := range vertices {
		if t.state[v] != White {
			continue
		}
		if err := t.visit(v); err != nil {
			return nil, err
		}
	}

	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

func (t *topoSorter[V, W]) visit(v V) error {
	switch t.state[v] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	t.state[v] = Gray

	for _, e := range t.graph.OutEdges(v) {
		if err := t.visit(e.To); err != nil {
			return err
		}
	}

	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}
