// SPDX-License-Identifier: MIT
//
// File: stats.go
// Role: Per-vertex aggregates over outgoing edge weights.
// Policy:
//   - Read-only: the graph is never mutated.
//   - A vertex without outgoing edges averages to the zero Weight.

package stats

import (
	"errors"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/multigraph/core"
)

var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("stats: graph is nil")

	// ErrEmptyGraph indicates the graph has no vertices to choose from.
	ErrEmptyGraph = errors.New("stats: graph has no vertices")
)

// AverageEdgeLength returns the arithmetic mean of the weights of all edges
// leaving v. Missing vertices, vertices with no outgoing edges and a nil
// graph all yield the zero Weight. For integer weights the mean is
// truncated by integer division.
//
// Complexity: O(out-degree(v)).
func AverageEdgeLength[V comparable, W core.Weight](g *core.Graph[V, W], v V) W {
	if g == nil {
		return 0
	}

	return mean(g.OutEdges(v))
}

// Averages returns AverageEdgeLength for every vertex, keyed in vertex
// insertion order.
//
// Complexity: O(V + E).
func Averages[V comparable, W core.Weight](g *core.Graph[V, W]) (*orderedmap.OrderedMap[V, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := orderedmap.New[V, W]()
	for _, v := range g.Vertices() {
		out.Set(v, mean(g.OutEdges(v)))
	}

	return out, nil
}

// MaxAverageVertex returns the vertex whose AverageEdgeLength is greatest.
// Ties go to the vertex met first in insertion order, since a later vertex
// must be strictly greater to take over.
//
// Errors: ErrNilGraph, ErrEmptyGraph.
// Complexity: O(V + E).
func MaxAverageVertex[V comparable, W core.Weight](g *core.Graph[V, W]) (V, error) {
	var best V
	avgs, err := Averages(g)
	if err != nil {
		return best, err
	}
	pair := avgs.Oldest()
	if pair == nil {
		return best, ErrEmptyGraph
	}

	best, bestAvg := pair.Key, pair.Value
	for pair = pair.Next(); pair != nil; pair = pair.Next() {
		if pair.Value > bestAvg {
			best, bestAvg = pair.Key, pair.Value
		}
	}

	return best, nil
}

func mean[V comparable, W core.Weight](edges []core.Edge[V, W]) W {
	if len(edges) == 0 {
		return 0
	}
	var sum W
	for _, e := range edges {
		sum += e.Weight
	}

	return sum / W(len(edges))
}
