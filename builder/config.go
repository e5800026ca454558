// SPDX-License-Identifier: MIT
// Package: multigraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn     = DefaultIDFn ("0","1","2",...)
//   - rng      = nil (pure/deterministic unless seeded)
//   - weightFn = constant DefaultEdgeWeight

package builder

import "math/rand"

// DefaultEdgeWeight is the weight every edge gets unless WithWeightFn is set.
const DefaultEdgeWeight = 1.0

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand // nil means no randomness
	weightFn func(*rand.Rand) float64
}

// newBuilderConfig applies opts in order (last wins) over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: func(*rand.Rand) float64 { return DefaultEdgeWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
