package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds the directed path 0→1→…→n-1 (n ≥ 2).
// Complexity: O(n) vertices + O(n-1) edges.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
