package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star builds a hub at index 0 with n-1 leaves. Every spoke gets one edge
// in each direction, hub→leaf first.
// Complexity: O(n) vertices + O(2n-2) edges.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		hub := ids[0]
		for _, leaf := range ids[1:] {
			if err := addEdge(g, cfg, methodStar, hub, leaf); err != nil {
				return err
			}
			if err := addEdge(g, cfg, methodStar, leaf, hub); err != nil {
				return err
			}
		}

		return nil
	}
}
