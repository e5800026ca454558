// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"github.com/katalvlaran/multigraph/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common concurrency sizes (avoid magic numbers in test bodies).
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

type edge = core.Edge[string, float64]

// newDiamond builds the four-vertex reference graph:
//
//	A→B(5) A→C(3) B→C(2) B→D(7) C→D(1) D→A(4)
func newDiamond() *core.Graph[string, float64] {
	g := core.NewGraph[string, float64]()
	for _, v := range []string{VertexA, VertexB, VertexC, VertexD} {
		g.AddVertex(v)
	}
	for _, e := range []edge{
		{From: VertexA, To: VertexB, Weight: 5},
		{From: VertexA, To: VertexC, Weight: 3},
		{From: VertexB, To: VertexC, Weight: 2},
		{From: VertexB, To: VertexD, Weight: 7},
		{From: VertexC, To: VertexD, Weight: 1},
		{From: VertexD, To: VertexA, Weight: 4},
	} {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			panic(err)
		}
	}

	return g
}

// touches reports whether e references v at either end.
func touches(e edge, v string) bool {
	return e.From == v || e.To == v
}
