// Package core defines the central Graph and Edge types, the Weight
// constraint, and the sentinel errors shared by the algorithm packages.
//
// Graph keeps its vertex set in an insertion-ordered map so membership stays
// O(1) while enumeration remains deterministic. The edge index maps a source
// vertex to the slice of edges leaving it, in the order they were added.
package core

import (
	"errors"
	"fmt"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/exp/constraints"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates that an edge referenced a vertex missing from the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Weight is the set of edge-weight types: totally ordered, additive, with a
// zero value and division by an edge count.
//
// Sums are computed in W itself. Integer weights wrap on overflow, so path
// totals must fit in W; a positive cycle whose running total overflows can
// look negative to bellmanford. Pick a wide enough type (int64, float64).
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge is a directed, weighted connection From→To.
//
// Edges are plain values; two Edges are equal when all three fields are equal.
type Edge[V comparable, W Weight] struct {
	// From is the source vertex.
	From V

	// To is the destination vertex.
	To V

	// Weight is the cost of traversing the edge.
	Weight W
}

// String renders the edge as "from -> to (weight)".
func (e Edge[V, W]) String() string {
	return fmt.Sprintf("%v -> %v (%v)", e.From, e.To, e.Weight)
}

// Graph is a directed weighted multigraph over comparable vertices.
//
// The zero value is not usable; create graphs with NewGraph.
type Graph[V comparable, W Weight] struct {
	mu sync.RWMutex // guards every field below

	// vertices holds the vertex set in insertion order.
	vertices *orderedmap.OrderedMap[V, struct{}]

	// edges[from] lists edges leaving from, in insertion order.
	// A key is present only while its slice is non-empty.
	edges map[V][]Edge[V, W]

	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[V comparable, W Weight]() *Graph[V, W] {
	return &Graph[V, W]{
		vertices: newVertexSet[V](),
		edges:    make(map[V][]Edge[V, W]),
	}
}

// newVertexSet allocates an empty insertion-ordered vertex set.
func newVertexSet[V comparable]() *orderedmap.OrderedMap[V, struct{}] {
	return orderedmap.New[V, struct{}]()
}

// GraphStats is a read-only snapshot of graph sizes.
type GraphStats struct {
	VertexCount   int // |V|
	EdgeCount     int // |E|, parallel edges counted separately
	SelfLoops     int // edges with From == To
	ParallelEdges int // edges whose (From, To) pair already appeared earlier
	Sources       int // vertices with at least one outgoing edge
	MaxOutDegree  int
}
