// Package config loads, validates and watches YAML graph files for the
// mgraph command.
package config

// GraphFile is the top-level YAML structure of a graph file.
//
//	vertices: [A, B, C]
//	edges:
//	  - {from: A, to: B, weight: 5}
type GraphFile struct {
	Vertices []string `yaml:"vertices,flow"`
	Edges    []Edge   `yaml:"edges"`
}

// Edge is one directed weighted edge. Repeated from/to pairs are allowed.
type Edge struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}
