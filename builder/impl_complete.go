package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds the complete directed graph on n vertices (n ≥ 1):
// one edge u→v for every ordered pair u != v, no self-loops.
// Complexity: O(n) vertices + O(n^2) edges.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i, u := range ids {
			for j, v := range ids {
				if i == j {
					continue
				}
				if err := addEdge(g, cfg, methodComplete, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
