// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdges/RemoveEdge/HasEdge/
//       HasExactEdge/OutEdges/AllEdges/EdgeCount.
// Determinism:
//   - OutEdges(v) returns edges in the order they were added.
//   - AllEdges() groups edges by source, sources in vertex insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "fmt"

// AddEdge appends a new edge from→to with weight w under key from.
//
// Both endpoints must already exist; the graph never creates vertices
// implicitly, so no dangling edge can be stored. Self-loops and parallel
// edges are accepted.
//
// Errors:
//   - ErrVertexNotFound (wrapped with the missing endpoint) if from or to is absent.
//
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddEdge(from, to V, w W) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices.Get(from); !ok {
		return fmt.Errorf("%w: source %v", ErrVertexNotFound, from)
	}
	if _, ok := g.vertices.Get(to); !ok {
		return fmt.Errorf("%w: destination %v", ErrVertexNotFound, to)
	}

	g.edges[from] = append(g.edges[from], Edge[V, W]{From: from, To: to, Weight: w})
	g.edgeCount++

	return nil
}

// RemoveEdges deletes every edge from→to, whatever its weight.
//
// Returns:
//   - bool: true if at least one edge was removed.
//
// Complexity: O(deg(from)).
func (g *Graph[V, W]) RemoveEdges(from, to V) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	bucket, ok := g.edges[from]
	if !ok {
		return false
	}
	kept := bucket[:0]
	for _, e := range bucket {
		if e.To != to {
			kept = append(kept, e)
		}
	}
	removed := len(bucket) - len(kept)
	g.edgeCount -= removed
	g.setBucket(from, kept)

	return removed > 0
}

// RemoveEdge deletes the first edge equal to e (same From, To and Weight).
// At most one edge is removed even when several identical edges exist.
//
// Returns:
//   - bool: true if an edge was removed.
//
// Complexity: O(deg(e.From)).
func (g *Graph[V, W]) RemoveEdge(e Edge[V, W]) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	bucket := g.edges[e.From]
	for i := range bucket {
		if bucket[i] == e {
			g.setBucket(e.From, append(bucket[:i], bucket[i+1:]...))
			g.edgeCount--

			return true
		}
	}

	return false
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(deg(from)).
func (g *Graph[V, W]) HasEdge(from, to V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// HasExactEdge reports whether an edge equal to e exists, weight included.
// Complexity: O(deg(e.From)).
func (g *Graph[V, W]) HasExactEdge(e Edge[V, W]) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, cur := range g.edges[e.From] {
		if cur == e {
			return true
		}
	}

	return false
}

// OutEdges returns the edges whose source is v, in insertion order.
// Unknown vertices and vertices without outgoing edges yield an empty slice.
// The slice is a copy and may be modified freely.
// Complexity: O(deg(v)).
func (g *Graph[V, W]) OutEdges(v V) []Edge[V, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket := g.edges[v]
	out := make([]Edge[V, W], len(bucket))
	copy(out, bucket)

	return out
}

// AllEdges returns every edge, grouped by source. Sources follow vertex
// insertion order and each group keeps its insertion order.
// Complexity: O(V + E).
func (g *Graph[V, W]) AllEdges() []Edge[V, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[V, W], 0, g.edgeCount)
	for p := g.vertices.Oldest(); p != nil; p = p.Next() {
		out = append(out, g.edges[p.Key]...)
	}

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph[V, W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// setBucket stores bucket under from, dropping the key once it is empty so
// that the index only holds sources with outgoing edges.
// Caller must hold the write lock.
func (g *Graph[V, W]) setBucket(from V, bucket []Edge[V, W]) {
	if len(bucket) == 0 {
		delete(g.edges, from)
		return
	}
	g.edges[from] = bucket
}
