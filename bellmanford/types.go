package bellmanford

import (
	"errors"

	"github.com/katalvlaran/multigraph/core"
)

// Sentinel errors returned by the Bellman–Ford implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the graph.
	ErrVertexNotFound = errors.New("bellmanford: vertex not found in graph")

	// ErrNegativeCycle indicates that a negative-weight cycle is reachable
	// from the source, so shortest paths are undefined.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")
)

// Options configures the behavior of BellmanFord.
type Options struct {
	// EarlyStop ends the relaxation rounds as soon as one full round
	// changes nothing. The result is identical; only the work differs.
	EarlyStop bool
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// WithEarlyStop enables stopping after the first round without updates.
func WithEarlyStop() Option {
	return func(o *Options) {
		o.EarlyStop = true
	}
}

// DefaultOptions runs all |V|-1 rounds unconditionally.
func DefaultOptions() Options {
	return Options{}
}

// Result holds single-source shortest-path distances and the predecessor
// edge of every reached vertex.
//
// A vertex absent from Dist is at infinite distance (unreachable).
type Result[V comparable, W core.Weight] struct {
	// Source is the vertex the distances are measured from.
	Source V

	// Dist maps each reached vertex to its minimum total weight from Source.
	Dist map[V]W

	// Pred maps each reached vertex other than Source to the last edge of
	// its shortest path.
	Pred map[V]core.Edge[V, W]
}
