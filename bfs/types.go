package bfs

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned by BFS when start is not a vertex of
	// the graph. Walk swallows it and returns an empty order.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation wraps a rejected Option argument.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option adjusts a single BFS run. A bad argument is remembered and
// reported by BFS before any vertex is visited.
type Option[V comparable] func(*Options[V])

// Options controls one traversal. Hooks receive the vertex and its hop
// count from start; parallel edges and self-loops never fire them twice.
type Options[V comparable] struct {
	OnEnqueue func(v V, depth int)       // vertex first discovered
	OnDequeue func(v V, depth int)       // vertex about to be visited
	OnVisit   func(v V, depth int) error // non-nil error stops the walk

	// MaxDepth bounds the hop count of discovered vertices. Zero means
	// unbounded.
	MaxDepth int

	// FilterNeighbor is asked once per outgoing edge curr→neighbor of an
	// undiscovered neighbor; false ignores that edge.
	FilterNeighbor func(curr, neighbor V) bool

	err error
}

// DefaultOptions follows every outgoing edge to any depth with no-op hooks.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		OnEnqueue:      func(V, int) {},
		OnDequeue:      func(V, int) {},
		OnVisit:        func(V, int) error { return nil },
		FilterNeighbor: func(V, V) bool { return true },
	}
}

// WithOnEnqueue sets the discovery hook. A nil fn keeps the default.
func WithOnEnqueue[V comparable](fn func(v V, depth int)) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue sets the pre-visit hook. A nil fn keeps the default.
func WithOnDequeue[V comparable](fn func(v V, depth int)) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit sets the visit hook. The first error it returns ends the
// walk; Result.Order then ends with the vertex that failed.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits discovery to d hops from start; 0 lifts the limit.
// Negative d fails with ErrOptionViolation.
func WithMaxDepth[V comparable](d int) Option[V] {
	return func(o *Options[V]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs an edge filter. A nil fn keeps the default.
func WithFilterNeighbor[V comparable](fn func(curr, neighbor V) bool) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is a breadth-first tree rooted at the start vertex.
type Result[V comparable] struct {
	Order  []V       // visit sequence, start first
	Depth  map[V]int // hop count of every discovered vertex
	Parent map[V]V   // discoverer of every vertex except start
}

// PathTo follows Parent links back from dest and returns the vertices from
// start to dest. An undiscovered dest is an error.
func (r *Result[V]) PathTo(dest V) ([]V, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	path := make([]V, d+1)
	cur := dest
	for i := d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
