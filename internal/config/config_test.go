package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multigraph/core"
	"github.com/katalvlaran/multigraph/internal/config"
)

const diamondYAML = `
vertices: [A, B, C, D]
edges:
  - {from: A, to: B, weight: 5}
  - {from: A, to: C, weight: 3}
  - {from: B, to: C, weight: 2}
  - {from: B, to: D, weight: 7}
  - {from: C, to: D, weight: 1}
  - {from: D, to: A, weight: 4}
`

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_Diamond(t *testing.T) {
	path := writeFile(t, t.TempDir(), diamondYAML)

	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, f.Vertices)
	require.Len(t, f.Edges, 6)
	assert.Equal(t, config.Edge{From: "B", To: "D", Weight: 7}, f.Edges[3])

	g, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, []core.Edge[string, float64]{
		{From: "A", To: "B", Weight: 5}, {From: "A", To: "C", Weight: 3},
	}, g.OutEdges("A"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_EmptyDocumentIsEmptyGraph(t *testing.T) {
	f, err := config.Parse(nil)
	require.NoError(t, err)

	g, err := f.Build()
	require.NoError(t, err)
	assert.Zero(t, g.Order())
}

func TestParse_UnknownField(t *testing.T) {
	_, err := config.Parse([]byte("vertices: [A]\ndirected: true\n"))
	assert.ErrorContains(t, err, "directed")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	_, err := config.Parse([]byte(`
vertices: [A, "", A]
edges:
  - {from: A, to: Z, weight: 1}
  - {from: Q, to: A, weight: .nan}
`))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	for _, want := range []string{
		"vertices[1]: name is required",
		`duplicate vertex "A"`,
		`edges[0]: unknown destination vertex "Z"`,
		`edges[1]: unknown source vertex "Q"`,
		"edges[1]: weight must be finite",
	} {
		assert.ErrorContains(t, err, want)
	}

	assert.ErrorIs(t, config.Validate(nil), config.ErrInvalidConfig)
}

func TestParallelEdgesAndSelfLoopsAreValid(t *testing.T) {
	f, err := config.Parse([]byte(`
vertices: [A, B]
edges:
  - {from: A, to: B, weight: 1}
  - {from: A, to: B, weight: 2}
  - {from: B, to: B, weight: -1}
`))
	require.NoError(t, err)

	g, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestMarshal_LoadsBackIdentical(t *testing.T) {
	f, err := config.Parse([]byte(diamondYAML))
	require.NoError(t, err)
	g, err := f.Build()
	require.NoError(t, err)

	out, err := config.Marshal(g)
	require.NoError(t, err)
	assert.Contains(t, string(out), "vertices: [A, B, C, D]")

	back, err := config.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, f, back)

	_, err = config.Marshal(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

func TestLoader_ReloadKeepsLastGood(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, diamondYAML)

	l, err := config.NewLoader(path)
	require.NoError(t, err)

	var calls int
	var lastErr error
	l.OnChange(func(_ *config.GraphFile, err error) { calls++; lastErr = err })

	writeFile(t, dir, "vertices: [A]\nedges:\n  - {from: A, to: B, weight: 1}\n")
	_, err = l.Reload()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Len(t, l.Current().Vertices, 4, "previous graph is kept")
	assert.Equal(t, 1, calls)
	assert.Error(t, lastErr)

	writeFile(t, dir, "vertices: [X]\n")
	f, err := l.Reload()
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, f.Vertices)
	assert.Equal(t, f, l.Current())
	assert.NoError(t, lastErr)
}

func TestLoader_Watch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, diamondYAML)

	l, err := config.NewLoader(path)
	require.NoError(t, err)
	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	writeFile(t, dir, "vertices: [P, Q]\n")
	require.Eventually(t, func() bool {
		return len(l.Current().Vertices) == 2
	}, 5*time.Second, 20*time.Millisecond)

	stop()
	stop()
}
