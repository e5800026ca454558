// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in insertion order.
//
// Concurrency:
//   - All methods take g.mu; mutators take the write lock.

package core

// AddVertex inserts v if it is absent.
//
// Returns:
//   - bool: true if v was inserted, false if it was already present.
//
// Adding an existing vertex is a reported no-op, never an error.
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddVertex(v V) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices.Get(v); ok {
		return false
	}
	g.vertices.Set(v, struct{}{})

	return true
}

// HasVertex reports whether v is in the vertex set.
// Complexity: O(1).
func (g *Graph[V, W]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices.Get(v)

	return ok
}

// RemoveVertex deletes v together with every edge that has v as its source
// or destination.
//
// Returns:
//   - bool: true if v was present.
//
// Complexity: O(E) for the scan of incoming edges.
func (g *Graph[V, W]) RemoveVertex(v V) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices.Delete(v); !ok {
		return false
	}

	// Outgoing bucket goes first; it may hold self-loops too.
	g.edgeCount -= len(g.edges[v])
	delete(g.edges, v)

	// Incoming edges live in other sources' buckets.
	for from, bucket := range g.edges {
		kept := bucket[:0]
		for _, e := range bucket {
			if e.To != v {
				kept = append(kept, e)
			}
		}
		g.edgeCount -= len(bucket) - len(kept)
		g.setBucket(from, kept)
	}

	return true
}

// Vertices returns the vertex set in insertion order.
// The slice is a fresh copy; mutating it does not affect the graph.
// Complexity: O(V).
func (g *Graph[V, W]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, 0, g.vertices.Len())
	for p := g.vertices.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

// Order returns the number of vertices.
// Complexity: O(1).
func (g *Graph[V, W]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.Len()
}

// Degree returns the out-degree of v: the number of edges whose source is v,
// counting parallel edges and self-loops once each. Unknown vertices have
// degree 0.
// Complexity: O(1).
func (g *Graph[V, W]) Degree(v V) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges[v])
}
