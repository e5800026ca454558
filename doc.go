// Package multigraph is an in-memory engine for directed weighted
// multigraphs: arbitrary comparable vertex IDs, parallel edges and
// self-loops, with connectivity, traversal, shortest-path and edge-weight
// statistics layered on one shared store.
//
// Packages:
//
//	core/        Graph, Edge and Weight: the thread-safe store
//	bfs/         breadth-first search and Walk
//	dfs/         depth-first search, Reachable, IsConnected, TopologicalSort
//	bellmanford/ shortest paths with negative weights and cycle detection
//	stats/       average outgoing edge weight and its arg-max
//	builder/     deterministic fixture graphs
//	cmd/mgraph/  command-line front end over YAML graph files
//
// Quick example:
//
//	g := core.NewGraph[string, float64]()
//	g.AddVertex("A")
//	g.AddVertex("B")
//	_ = g.AddEdge("A", "B", 5)
//	path, _ := bellmanford.ShortestPath(g, "A", "B")
package multigraph
