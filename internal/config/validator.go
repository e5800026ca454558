package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid graph file")

// Validate checks the graph file for:
//   - Empty or duplicate vertex names
//   - Edges whose endpoints are not declared vertices
//   - NaN or infinite weights
//
// All problems are reported together.
func Validate(f *GraphFile) error {
	if f == nil {
		return fmt.Errorf("%w: no document", ErrInvalidConfig)
	}
	seen := make(map[string]int, len(f.Vertices)) // name → index
	var errs []string

	for i, v := range f.Vertices {
		if v == "" {
			errs = append(errs, fmt.Sprintf("vertices[%d]: name is required", i))
			continue
		}
		if prev, ok := seen[v]; ok {
			errs = append(errs, fmt.Sprintf("duplicate vertex %q (vertices[%d] and vertices[%d])", v, prev, i))
			continue
		}
		seen[v] = i
	}

	for i, e := range f.Edges {
		if _, ok := seen[e.From]; !ok {
			errs = append(errs, fmt.Sprintf("edges[%d]: unknown source vertex %q", i, e.From))
		}
		if _, ok := seen[e.To]; !ok {
			errs = append(errs, fmt.Sprintf("edges[%d]: unknown destination vertex %q", i, e.To))
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			errs = append(errs, fmt.Sprintf("edges[%d]: weight must be finite", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}

	return nil
}
