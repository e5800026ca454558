package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/multigraph/core"
	"github.com/katalvlaran/multigraph/dfs"
)

// ExampleIsConnected checks a ring of hospitals before and after one road
// is closed.
func ExampleIsConnected() {
	g := core.NewGraph[string, float64]()
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("C", "A", 2)

	fmt.Println(dfs.IsConnected(g))
	g.RemoveEdges("C", "A")
	fmt.Println(dfs.IsConnected(g))

	// Output:
	// true
	// false
}

// ExampleTopologicalSort orders build steps with a shared dependency.
func ExampleTopologicalSort() {
	g := core.NewGraph[string, int]()
	for _, v := range []string{"fetch", "compile", "lint", "package"} {
		g.AddVertex(v)
	}
	_ = g.AddEdge("fetch", "compile", 1)
	_ = g.AddEdge("fetch", "lint", 1)
	_ = g.AddEdge("compile", "package", 1)
	_ = g.AddEdge("lint", "package", 1)

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)

	// Output:
	// [fetch lint compile package]
}
