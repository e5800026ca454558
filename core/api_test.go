package core_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multigraph/core"
)

func TestGraph_Stats(t *testing.T) {
	g := newDiamond()
	_ = g.AddEdge(VertexA, VertexB, 8) // parallel
	_ = g.AddEdge(VertexD, VertexD, 1) // loop

	got := g.Stats()
	assert.Equal(t, core.GraphStats{
		VertexCount:   4,
		EdgeCount:     8,
		SelfLoops:     1,
		ParallelEdges: 1,
		Sources:       4,
		MaxOutDegree:  3,
	}, got)
}

func TestGraph_Clone_IsIndependent(t *testing.T) {
	g := newDiamond()
	clone := g.Clone()

	assert.Equal(t, g.Vertices(), clone.Vertices())
	assert.Equal(t, g.AllEdges(), clone.AllEdges())

	require.True(t, clone.RemoveEdges(VertexA, VertexB))
	clone.AddVertex(VertexX)

	assert.True(t, g.HasEdge(VertexA, VertexB), "original untouched")
	assert.False(t, g.HasVertex(VertexX))
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, 5, clone.EdgeCount())
}

func TestGraph_Clear(t *testing.T) {
	g := newDiamond()
	g.Clear()

	assert.Zero(t, g.Order())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.AllEdges())

	assert.True(t, g.AddVertex(VertexA), "graph stays usable")
}

func TestFprint(t *testing.T) {
	g := newDiamond()
	g.AddVertex(VertexX)

	var buf bytes.Buffer
	require.NoError(t, core.Fprint(&buf, g))

	want := "A: [A -> B (5), A -> C (3)]\n" +
		"B: [B -> C (2), B -> D (7)]\n" +
		"C: [C -> D (1)]\n" +
		"D: [D -> A (4)]\n" +
		"X: []\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, want, g.String())
}

func TestFprint_NilGraph(t *testing.T) {
	var buf bytes.Buffer
	err := core.Fprint[string, int](&buf, nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestFprint_WriterError(t *testing.T) {
	err := core.Fprint(failingWriter{}, newDiamond())
	assert.ErrorIs(t, err, errWrite)
}

func TestEdge_String(t *testing.T) {
	e := core.Edge[string, int]{From: "u", To: "v", Weight: -3}
	assert.Equal(t, "u -> v (-3)", e.String())
}
