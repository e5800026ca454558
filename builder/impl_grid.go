package builder

import "fmt"

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid builds a rows×cols 4-neighborhood lattice. Vertex r*cols+c is cell
// (r, c). Horizontal and vertical neighbors are joined in both directions;
// edges are emitted row-major, right neighbor before down neighbor.
// Complexity: O(R*C) vertices + O(4*R*C) edges.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, rows*cols)
		link := func(a, b int) error {
			if err := addEdge(g, cfg, methodGrid, ids[a], ids[b]); err != nil {
				return err
			}
			return addEdge(g, cfg, methodGrid, ids[b], ids[a])
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := r*cols + c
				if c+1 < cols {
					if err := link(cell, cell+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(cell, cell+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
