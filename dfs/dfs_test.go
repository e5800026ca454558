package dfs_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multigraph/core"
	"github.com/katalvlaran/multigraph/dfs"
)

// newGraph builds a string/int graph from vertices and "from>to" edge specs.
func newGraph(t *testing.T, vertices []string, edges ...string) *core.Graph[string, int] {
	t.Helper()
	g := core.NewGraph[string, int]()
	for _, v := range vertices {
		g.AddVertex(v)
	}
	for _, spec := range edges {
		from, to, ok := strings.Cut(spec, ">")
		require.True(t, ok, "bad edge spec %q", spec)
		require.NoError(t, g.AddEdge(from, to, 1))
	}

	return g
}

// newDiamond builds A→B A→C B→C B→D C→D D→A.
func newDiamond(t *testing.T) *core.Graph[string, int] {
	return newGraph(t, []string{"A", "B", "C", "D"},
		"A>B", "A>C", "B>C", "B>D", "C>D", "D>A")
}

// buildChain creates N0→N1→…→N(n-1).
func buildChain(t *testing.T, n int) *core.Graph[string, int] {
	vertices := make([]string, n)
	edges := make([]string, 0, n)
	for i := range vertices {
		vertices[i] = "N" + strconv.Itoa(i)
		if i > 0 {
			edges = append(edges, vertices[i-1]+">"+vertices[i])
		}
	}

	return newGraph(t, vertices, edges...)
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS[string, int](nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(newGraph(t, nil), "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertexWithSelfLoop(t *testing.T) {
	g := newGraph(t, []string{"A"}, "A>A")

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	_, hasParent := res.Parent["A"]
	assert.False(t, hasParent, "start vertex should have no parent")
}

func TestDFS_DiamondPostOrder(t *testing.T) {
	res, err := dfs.DFS(newDiamond(t), "A")
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"D", "C", "B", "A"}, res.Order); diff != "" {
		t.Fatalf("Order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}, res.Depth)
	assert.Equal(t, map[string]string{"B": "A", "C": "B", "D": "C"}, res.Parent)
}

func TestDFS_OnlyReachable(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, "A>B", "C>A")

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.False(t, res.Visited["C"], "edges are followed forward only")
}

func TestDFS_FullTraversal(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, "B>A")

	res, err := dfs.DFS(g, "ignored", dfs.WithFullTraversal[string]())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	assert.Empty(t, res.Parent)
}

func TestDFS_MaxDepth(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, "A>B", "B>C")

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth[string](0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.False(t, res.Visited["B"])

	res, err = dfs.DFS(g, "A", dfs.WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, "A>B", "A>C")

	res, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(v string) bool {
		return v != "C"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.False(t, res.Visited["C"], "filtered neighbor should not be visited")
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_OnExitError(t *testing.T) {
	g := newGraph(t, []string{"A", "B"}, "A>B")

	res, err := dfs.DFS(g, "A", dfs.WithOnExit(func(v string) error {
		if v == "B" {
			return errors.New("halt at B on exit")
		}

		return nil
	}))
	require.NotNil(t, res)
	assert.ErrorContains(t, err, "OnExit hook for B")
	assert.Empty(t, res.Order, "no post-order on hook error")
}

func TestDFS_Hooks(t *testing.T) {
	var pre, post []string

	_, err := dfs.DFS(newDiamond(t), "A",
		dfs.WithOnVisit(func(v string) error { pre = append(pre, v); return nil }),
		dfs.WithOnExit(func(v string) error { post = append(post, v); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, pre)
	assert.Equal(t, []string{"D", "C", "B", "A"}, post)
}

func TestDFS_LongChain(t *testing.T) {
	const n = 10
	res, err := dfs.DFS(buildChain(t, n), "N0")
	require.NoError(t, err)

	want := make([]string, n)
	for i := range want {
		want[i] = "N" + strconv.Itoa(n-1-i)
	}
	assert.Equal(t, want, res.Order)
	assert.Equal(t, n-1, res.Depth["N9"])
	assert.Equal(t, "N8", res.Parent["N9"])
}
