package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/multigraph/core"
)

// BellmanFord computes shortest distances from source to every vertex
// reachable from it, allowing negative edge weights.
//
// Edges are relaxed in g.AllEdges order for |V|-1 rounds, then one more
// pass looks for an edge that still relaxes. Such an edge proves a negative
// cycle reachable from source and yields ErrNegativeCycle wrapped with the
// offending edge. Relaxation is strict, so among equal-weight paths the
// first one found in edge order is kept.
//
// Preconditions (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O(V * E)
//   - Space: O(V + E)
func BellmanFord[V comparable, W core.Weight](g *core.Graph[V, W], source V, opts ...Option) (*Result[V, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %v", ErrVertexNotFound, source)
	}

	n := g.Order()
	r := &runner[V, W]{
		edges: g.AllEdges(),
		res: &Result[V, W]{
			Source: source,
			Dist:   make(map[V]W, n),
			Pred:   make(map[V]core.Edge[V, W], n),
		},
	}
	r.res.Dist[source] = 0

	for round := 1; round < n; round++ {
		if !r.relaxAll() && cfg.EarlyStop {
			break
		}
	}

	if e, ok := r.stillRelaxes(); ok {
		return nil, fmt.Errorf("%w: edge %v", ErrNegativeCycle, e)
	}

	return r.res, nil
}

// ShortestPath returns the minimum-total-weight path from → to as a
// sequence of edges in traversal order.
//
// No path is not an error: the result is then an empty slice. A path from
// a vertex to itself is also empty. Unknown endpoints yield
// ErrVertexNotFound and a reachable negative cycle ErrNegativeCycle.
func ShortestPath[V comparable, W core.Weight](g *core.Graph[V, W], from, to V) ([]core.Edge[V, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(to) {
		return nil, fmt.Errorf("%w: target %v", ErrVertexNotFound, to)
	}
	res, err := BellmanFord(g, from)
	if err != nil {
		return nil, err
	}

	return res.PathTo(to), nil
}

// PathWeight sums the weights of path. The empty path weighs zero.
func PathWeight[V comparable, W core.Weight](path []core.Edge[V, W]) W {
	var total W
	for _, e := range path {
		total += e.Weight
	}

	return total
}

// Reached reports whether v has a finite distance from the source.
func (r *Result[V, W]) Reached(v V) bool {
	_, ok := r.Dist[v]

	return ok
}

// DistanceTo returns the shortest distance to v and whether v was reached.
func (r *Result[V, W]) DistanceTo(v V) (W, bool) {
	d, ok := r.Dist[v]

	return d, ok
}

// PathTo rebuilds the shortest path to v by following predecessor edges
// back to the source. Unreached vertices and the source itself give an
// empty, non-nil slice.
func (r *Result[V, W]) PathTo(v V) []core.Edge[V, W] {
	path := []core.Edge[V, W]{}
	if !r.Reached(v) {
		return path
	}
	// Without a reachable negative cycle the predecessor chain is a tree
	// rooted at Source, so it has fewer than len(Dist) links.
	for cur := v; cur != r.Source && len(path) < len(r.Dist); {
		e, ok := r.Pred[cur]
		if !ok {
			break
		}
		path = append(path, e)
		cur = e.From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Bellman–Ford execution.
type runner[V comparable, W core.Weight] struct {
	edges []core.Edge[V, W] // snapshot in relaxation order
	res   *Result[V, W]
}

// relaxAll performs one relaxation round and reports whether any distance improved.
func (r *runner[V, W]) relaxAll() bool {
	changed := false
	for _, e := range r.edges {
		du, ok := r.res.Dist[e.From]
		if !ok {
			continue
		}
		cand := du + e.Weight
		if isPosInf(cand) {
			continue
		}
		if dv, seen := r.res.Dist[e.To]; seen && cand >= dv {
			continue
		}
		r.res.Dist[e.To] = cand
		r.res.Pred[e.To] = e
		changed = true
	}

	return changed
}

// stillRelaxes returns the first edge that could still shorten a distance.
func (r *runner[V, W]) stillRelaxes() (core.Edge[V, W], bool) {
	for _, e := range r.edges {
		du, ok := r.res.Dist[e.From]
		if !ok {
			continue
		}
		cand := du + e.Weight
		if isPosInf(cand) {
			continue
		}
		if dv, seen := r.res.Dist[e.To]; !seen || cand < dv {
			return e, true
		}
	}

	return core.Edge[V, W]{}, false
}

// isPosInf reports whether w is +Inf. An infinite total is no path, so such
// a candidate never reaches Dist. Always false for integer weights.
func isPosInf[W core.Weight](w W) bool {
	return math.IsInf(float64(w), 1)
}
