package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/multigraph/core"
	"github.com/katalvlaran/multigraph/dfs"
)

func TestReachable(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C", "D"}, "A>B", "B>C", "D>A")

	assert.Equal(t, map[string]struct{}{"A": {}, "B": {}, "C": {}}, dfs.Reachable(g, "A"))
	assert.Equal(t, map[string]struct{}{"C": {}}, dfs.Reachable(g, "C"))
	assert.Empty(t, dfs.Reachable(g, "missing"))
	assert.Empty(t, dfs.Reachable[string, int](nil, "A"))
}

// TestReachable_DeepChain walks a chain far longer than a recursive
// traversal would comfortably handle.
func TestReachable_DeepChain(t *testing.T) {
	const n = 100000
	g := core.NewGraph[int, int]()
	for i := 0; i < n; i++ {
		g.AddVertex(i)
		if i > 0 {
			assert.NoError(t, g.AddEdge(i-1, i, 1))
		}
	}

	assert.Len(t, dfs.Reachable(g, 0), n)
	assert.Len(t, dfs.Reachable(g, n-1), 1)
}

func TestIsConnected(t *testing.T) {
	cases := []struct {
		name  string
		graph *core.Graph[string, int]
		want  bool
	}{
		{"empty", newGraph(t, nil), true},
		{"single vertex", newGraph(t, []string{"A"}), true},
		{"self-loop", newGraph(t, []string{"A"}, "A>A"), true},
		{"diamond with back edge", newDiamond(t), true},
		{"two-cycle", newGraph(t, []string{"A", "B"}, "A>B", "B>A"), true},
		{"one-way pair", newGraph(t, []string{"A", "B"}, "A>B"), false},
		{"isolated vertex", newGraph(t, []string{"A", "B", "C"}, "A>B", "B>A"), false},
		{"chain", newGraph(t, []string{"A", "B", "C"}, "A>B", "B>C"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dfs.IsConnected(tc.graph))
		})
	}
}

func TestIsConnected_NilGraph(t *testing.T) {
	assert.True(t, dfs.IsConnected[string, int](nil))
}

func TestIsConnected_AfterRemovingEdge(t *testing.T) {
	g := newDiamond(t)
	assert.True(t, dfs.IsConnected(g))

	assert.True(t, g.RemoveEdges("D", "A"))
	assert.False(t, dfs.IsConnected(g))
}
