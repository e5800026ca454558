// Package core_test verifies that each core.Graph call is safe under
// concurrent use (run with -race).
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multigraph/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls from one hub all land.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph[string, int]()
	g.AddVertex(VertexX)
	for i := 0; i < NConcurrentAdds; i++ {
		g.AddVertex(fmt.Sprintf("V%d", i))
	}

	var wg sync.WaitGroup
	errs := make(chan error, NConcurrentAdds)
	wg.Add(NConcurrentAdds)
	for i := 0; i < NConcurrentAdds; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- g.AddEdge(VertexX, fmt.Sprintf("V%d", id), id)
		}(i)
	}
	wg.Wait()
	close(errs)

	// No *testing.T inside goroutines; collect and assert here.
	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, NConcurrentAdds, g.Degree(VertexX))
}

// TestConcurrentReadersAndWriters mixes mutation with snapshots and queries.
func TestConcurrentReadersAndWriters(t *testing.T) {
	g := newDiamond()

	var wg sync.WaitGroup
	wg.Add(2 * NReaders)
	for i := 0; i < NReaders; i++ {
		go func(id int) {
			defer wg.Done()
			v := fmt.Sprintf("R%d", id)
			g.AddVertex(v)
			_ = g.AddEdge(v, VertexA, float64(id))
			g.RemoveEdges(v, VertexA)
		}(i)
		go func() {
			defer wg.Done()
			_ = g.AllEdges()
			_ = g.Stats()
			_ = g.String()
			_ = g.HasEdge(VertexA, VertexB)
		}()
	}
	wg.Wait()

	require.Equal(t, 4+NReaders, g.Order())
	require.Equal(t, 6, g.EdgeCount())
}
