// Package core provides an in-memory, directed, weighted multigraph with
// arbitrary comparable vertex identifiers.
//
// The Graph G = (V, E) is made of two parts:
//
//   - a vertex set, kept in insertion order so that every enumeration
//     (Vertices, AllEdges, Fprint, the traversal packages) is reproducible;
//   - an edge index: a multi-valued mapping from source vertex to the
//     append-ordered sequence of edges leaving it.
//
// Edges are (From, To, Weight) triples and are not unique: two edges with the
// same endpoints, and even the same weight, may coexist. Self-loops are
// permitted.
//
// Vertex lifecycle:
//
//	AddVertex(v V) bool        // O(1); false if v already present
//	HasVertex(v V) bool        // O(1)
//	RemoveVertex(v V) bool     // O(E); drops every edge touching v
//
// Edge lifecycle:
//
//	AddEdge(from, to V, w W) error     // ErrVertexNotFound if an endpoint is missing
//	RemoveEdges(from, to V) bool       // removes ALL from→to edges
//	RemoveEdge(e Edge[V, W]) bool      // removes at most one exact match
//	HasEdge(from, to V) bool           // O(deg(from))
//	HasExactEdge(e Edge[V, W]) bool    // O(deg(from)), weight must match too
//
// Queries:
//
//	OutEdges(v V) []Edge[V, W]  // insertion order; empty for unknown v
//	Order() int                 // |V|
//	Degree(v V) int             // out-degree, parallel edges counted separately
//	Vertices() []V              // insertion order
//	AllEdges() []Edge[V, W]     // grouped by source in vertex order
//
// Weights:
//
//	W is any built-in integer or floating-point type (see Weight). Algorithms
//	rely only on +, <, the zero value and division by a count.
//
// Concurrency:
//
//	Every public method runs under a single sync.RWMutex, so individual calls
//	are safe from multiple goroutines. Algorithms in sibling packages make
//	several calls per run; mutating the graph while an algorithm is running is
//	the caller's responsibility to prevent and yields unspecified results.
//
// Errors:
//
//	ErrVertexNotFound - AddEdge referenced an endpoint that is not in the graph.
package core
