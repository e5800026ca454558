// Package stats computes aggregate edge-weight metrics on a core.Graph:
// the mean outgoing edge weight per vertex and the vertex where that mean
// is largest.
package stats
