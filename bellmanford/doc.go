// Package bellmanford implements single-source shortest paths by repeated
// edge relaxation (Bellman–Ford) on a core.Graph, including graphs with
// negative edge weights.
//
// Unlike Dijkstra's algorithm, relaxation makes no assumption about the
// sign of weights. After |V|-1 rounds every shortest path is settled unless
// a negative cycle is reachable from the source; one extra pass detects it.
//
// Distances:
//
//	Result.Dist holds only reached vertices. Absence from the map stands for
//	an infinite distance, so every Weight type works without a sentinel.
//	An edge of weight +Inf never reaches a vertex: a total of +Inf is no path.
//	Integer totals must fit in the weight type (see core.Weight).
//
// Complexity:
//
//   - Time:  O(V * E), fewer rounds with WithEarlyStop on easy inputs.
//   - Space: O(V + E) for the edge snapshot, distances and predecessors.
//
// Errors (sentinel):
//
//   - ErrNilGraph        if the graph pointer is nil.
//   - ErrVertexNotFound  if the source or target vertex is missing.
//   - ErrNegativeCycle   if a negative cycle is reachable from the source.
//
// Example usage:
//
//	path, err := bellmanford.ShortestPath(g, "A", "D")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(path, bellmanford.PathWeight(path))
package bellmanford
