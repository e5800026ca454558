// Package dfs implements depth-first traversal, reachability, strong
// connectivity and topological sort on a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre-order and post-order hooks, depth limiting,
//     neighbor filtering and forest traversal.
//   - Reachable: the set of vertices reachable from a start vertex.
//   - IsConnected: true when every vertex reaches every other vertex
//     (the empty graph counts as connected).
//   - TopologicalSort: a linear ordering of a DAG, or ErrCycleDetected.
//
// All functions follow outgoing edges only; weights are ignored.
//
// Complexity:
//
//   - DFS, Reachable, TopologicalSort: Time O(V+E), Memory O(V)
//   - IsConnected:                     Time O(V*(V+E)), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - hook errors             propagated from OnVisit or OnExit
package dfs
