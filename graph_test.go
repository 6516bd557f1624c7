package csrgraph_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxgraph/csrgraph"
	"github.com/oxgraph/csrgraph/query"
)

func writeEdges(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestGraph_EmptyBeforeLoad(t *testing.T) {
	g := csrgraph.New()
	assert.Equal(t, 0, g.NumNodes())
	assert.Equal(t, 0, g.NumEdges())
	assert.Equal(t, query.NoCriticalNode, g.CriticalNode())
	assert.Nil(t, g.BFS(0, 10))
}

func TestGraph_LoadTriangle(t *testing.T) {
	path := writeEdges(t, "# comment\n0 1\n1 2\n2 0\n")
	g := csrgraph.New()
	defer g.Close()

	require.NoError(t, g.Load(context.Background(), path))
	assert.Equal(t, 3, g.NumNodes())
	assert.Equal(t, 3, g.NumEdges())
	assert.Equal(t, 0, g.CriticalNode())

	got := g.BFS(0, 10)
	want := []query.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}
	assert.Equal(t, want, got)
}

func TestGraph_LoadWritesCacheThenReusesIt(t *testing.T) {
	path := writeEdges(t, "0 1\n1 2\n2 0\n")
	cachePath := path + ".bin"

	g := csrgraph.New()
	defer g.Close()
	require.NoError(t, g.Load(context.Background(), path))

	_, err := os.Stat(cachePath)
	require.NoError(t, err, "Load should have written a cache sidecar")

	// A second Load on a fresh instance must come back identical, even
	// if the text source were to vanish, since the cache file now
	// satisfies it directly.
	require.NoError(t, os.Remove(path))
	g2 := csrgraph.New()
	defer g2.Close()
	require.NoError(t, g2.Load(context.Background(), path))
	assert.Equal(t, g.NumNodes(), g2.NumNodes())
	assert.Equal(t, g.NumEdges(), g2.NumEdges())
}

func TestGraph_CorruptCacheIsIgnored(t *testing.T) {
	path := writeEdges(t, "0 1\n1 2\n2 0\n")
	g := csrgraph.New()
	defer g.Close()
	require.NoError(t, g.Load(context.Background(), path))

	// a corrupt cache sidecar must fall back to the text source
	// rather than surface an error.
	require.NoError(t, os.WriteFile(path+".bin", []byte("not a cache file"), 0o644))

	g2 := csrgraph.New()
	defer g2.Close()
	require.NoError(t, g2.Load(context.Background(), path))
	assert.Equal(t, 3, g2.NumNodes())
	assert.Equal(t, 3, g2.NumEdges())
}

func TestGraph_LoadMissingFileStaysEmpty(t *testing.T) {
	g := csrgraph.New()
	defer g.Close()

	var diagMsgs []string
	g2 := csrgraph.New(csrgraph.WithDiag(func(format string, args ...interface{}) {
		diagMsgs = append(diagMsgs, format)
	}))

	err := g2.Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	require.NoError(t, err)
	assert.Equal(t, 0, g2.NumNodes())
	assert.NotEmpty(t, diagMsgs)
	assert.Equal(t, 0, g.NumNodes())
}

func TestGraph_LoadCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := csrgraph.New()
	defer g.Close()
	err := g.Load(ctx, writeEdges(t, "0 1\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGraph_Close(t *testing.T) {
	path := writeEdges(t, "0 1\n1 0\n")
	g := csrgraph.New()
	require.NoError(t, g.Load(context.Background(), path))
	require.NotZero(t, g.NumNodes())

	g.Close()
	assert.Equal(t, 0, g.NumNodes())
}

func TestGraph_DegreeHistogram(t *testing.T) {
	path := writeEdges(t, "0 1\n0 2\n1 2\n")
	g := csrgraph.New()
	defer g.Close()
	require.NoError(t, g.Load(context.Background(), path))

	hist := g.DegreeHistogram()
	assert.Equal(t, int64(1), hist[2]) // vertex 0: out-degree 2
	assert.Equal(t, int64(1), hist[1]) // vertex 1: out-degree 1 (vertex 2 has none)
}
