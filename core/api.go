// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Whole-graph helpers: Stats snapshot, Clone, Clear.
// Policy:
//   - No algorithms here; traversal and path logic live in sibling packages.
//   - Every exported function documents complexity.

package core

// Stats produces a read-only snapshot of vertex and edge counts, including
// self-loops and parallel edges.
//
// Complexity: Time O(V + E), Space O(max out-degree) for the per-source pair set.
func (g *Graph[V, W]) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: g.vertices.Len(),
		EdgeCount:   g.edgeCount,
		Sources:     len(g.edges),
	}
	for _, bucket := range g.edges {
		if len(bucket) > stats.MaxOutDegree {
			stats.MaxOutDegree = len(bucket)
		}
		seen := make(map[V]struct{}, len(bucket))
		for _, e := range bucket {
			if e.From == e.To {
				stats.SelfLoops++
			}
			if _, dup := seen[e.To]; dup {
				stats.ParallelEdges++
				continue
			}
			seen[e.To] = struct{}{}
		}
	}

	return stats
}

// Clone returns a deep copy of g: same vertices in the same order, same
// edges in the same per-source order. The copy shares no storage with g.
// Complexity: O(V + E).
func (g *Graph[V, W]) Clone() *Graph[V, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph[V, W]()
	for p := g.vertices.Oldest(); p != nil; p = p.Next() {
		clone.vertices.Set(p.Key, struct{}{})
	}
	for from, bucket := range g.edges {
		cp := make([]Edge[V, W], len(bucket))
		copy(cp, bucket)
		clone.edges[from] = cp
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear removes every vertex and edge, leaving an empty usable graph.
// Complexity: O(1).
func (g *Graph[V, W]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = newVertexSet[V]()
	g.edges = make(map[V][]Edge[V, W])
	g.edgeCount = 0
}
