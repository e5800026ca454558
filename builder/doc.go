// Package builder constructs deterministic graph fixtures (paths, rings,
// stars, complete graphs, grids and seeded random graphs) for tests, benchmarks
// and the mgraph generate command.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)},
//	    builder.Cycle(4),
//	)
//
// Several constructors may be composed in one BuildGraph call; vertices
// with equal IDs are shared, edges accumulate (the graph is a multigraph).
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, always wrapped with the constructor name.
package builder
