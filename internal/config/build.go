package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/multigraph/core"
)

// Build validates f and turns it into a graph. Vertices keep file order and
// edges keep file order within each source.
func (f *GraphFile) Build() (*core.Graph[string, float64], error) {
	if err := Validate(f); err != nil {
		return nil, err
	}
	g := core.NewGraph[string, float64]()
	for _, v := range f.Vertices {
		g.AddVertex(v)
	}
	for i, e := range f.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a GraphFile, vertices and edges in graph order.
func FromGraph(g *core.Graph[string, float64]) (*GraphFile, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	f := &GraphFile{Vertices: g.Vertices()}
	for _, e := range g.AllEdges() {
		f.Edges = append(f.Edges, Edge{From: e.From, To: e.To, Weight: e.Weight})
	}

	return f, nil
}

// Marshal renders g as a graph-file YAML document.
func Marshal(g *core.Graph[string, float64]) ([]byte, error) {
	f, err := FromGraph(g)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode graph: %w", err)
	}

	return out, nil
}
