// SPDX-License-Identifier: MIT
// Package: multigraph/builder
//
// options.go - functional options for the builder package.
//
// Option constructors panic on nil functions or RNGs; constructors
// themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig
// before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new seeded *rand.Rand for reproducible runs.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The function
// receives the (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// UniformWeight returns a weight generator drawing from [lo, hi) with the
// configured RNG, or lo when no RNG is set.
func UniformWeight(lo, hi float64) func(*rand.Rand) float64 {
	return func(r *rand.Rand) float64 {
		if r == nil {
			return lo
		}

		return lo + r.Float64()*(hi-lo)
	}
}
