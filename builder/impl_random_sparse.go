package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse builds a directed Erdős–Rényi graph: each ordered pair
// (u, v) with u != v gets an edge with probability p. Pairs are tried in
// row-major order, so a fixed seed reproduces the same graph.
//
// p of exactly 0 or 1 needs no RNG; anything in between requires
// WithSeed or WithRand (ErrNeedRandSource).
// Complexity: O(n^2) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addVertices(g, cfg, n)
		for i, u := range ids {
			for j, v := range ids {
				if i == j {
					continue
				}
				if p < probMax && (p == probMin || cfg.rng.Float64() >= p) {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
