package dfs

import (
	"fmt"

	"github.com/katalvlaran/multigraph/core"
)

// walker encapsulates state during DFS.
type walker[V comparable, W core.Weight] struct {
	graph *core.Graph[V, W]
	opts  Options[V]
	res   *Result[V]
}

// DFS performs depth-first search on g following outgoing edges only.
// With WithFullTraversal it covers every vertex, restarting from each
// unvisited one in insertion order; otherwise it starts only from start.
// Neighbors are explored in g.OutEdges order.
func DFS[V comparable, W core.Weight](g *core.Graph[V, W], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&o)
	}

	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	w := &walker[V, W]{
		graph: g,
		opts:  o,
		res: &Result[V]{
			Order:   make([]V, 0, len(vertices)),
			Depth:   make(map[V]int, len(vertices)),
			Parent:  make(map[V]V, len(vertices)),
			Visited: make(map[V]bool, len(vertices)),
		},
	}

	if !o.FullTraversal {
		return w.res, w.traverse(start, 0)
	}
	for _, v := range vertices {
		if w.res.Visited[v] {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits v at the given depth and recurses into its neighbors.
func (w *walker[V, W]) traverse(v V, depth int) error {
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	for _, e := range w.graph.OutEdges(v) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e.To) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[e.To] {
			continue
		}
		w.res.Parent[e.To] = v
		if err := w.traverse(e.To, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}

	w.res.Order = append(w.res.Order, v)

	return nil
}
