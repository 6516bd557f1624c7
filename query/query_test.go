package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxgraph/csrgraph/csr"
	"github.com/oxgraph/csrgraph/query"
)

// triangle builds the 0→1→2→0 CSR graph used throughout these tests.
func triangle() *csr.Graph {
	return &csr.Graph{
		NumNodes:   3,
		NumEdges:   3,
		RowPtr:     []int32{0, 1, 2, 3},
		ColIndices: []int32{1, 2, 0},
	}
}

func TestCriticalNode_Empty(t *testing.T) {
	assert.Equal(t, query.NoCriticalNode, query.CriticalNode(csr.Empty()))
}

func TestCriticalNode_TiesBreakLowest(t *testing.T) {
	g := &csr.Graph{
		NumNodes:   3,
		NumEdges:   2,
		RowPtr:     []int32{0, 1, 2, 2},
		ColIndices: []int32{1, 2},
	}
	assert.Equal(t, 0, query.CriticalNode(g))
}

func TestCriticalNode_SparseHighID(t *testing.T) {
	// an edge (0, 1000) yields 1001 vertices; every row after vertex 0
	// is empty, so row_ptr is flat at 1 from index 1 through 1001.
	rowPtr := make([]int32, 1002)
	for i := 1; i < len(rowPtr); i++ {
		rowPtr[i] = 1
	}
	g := &csr.Graph{
		NumNodes:   1001,
		NumEdges:   1,
		RowPtr:     rowPtr,
		ColIndices: []int32{1000},
	}
	assert.Equal(t, 0, query.CriticalNode(g))
}

func TestBFS_Triangle(t *testing.T) {
	got := query.BFS(triangle(), 0, 10)
	want := []query.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}
	assert.Equal(t, want, got)
}

func TestBFS_DepthCap(t *testing.T) {
	g := &csr.Graph{
		NumNodes:   5,
		NumEdges:   4,
		RowPtr:     []int32{0, 1, 2, 3, 4, 4},
		ColIndices: []int32{1, 2, 3, 4},
	}
	got := query.BFS(g, 0, 2)
	want := []query.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}
	assert.Equal(t, want, got, "edge (3,4) must not be emitted: level[3] == 3 > depth")
}

func TestBFS_InvalidStartIsEmpty(t *testing.T) {
	assert.Empty(t, query.BFS(triangle(), 99, 5))
	assert.Empty(t, query.BFS(triangle(), -1, 5))
}

func TestBFS_NegativeDepthIsEmpty(t *testing.T) {
	assert.Empty(t, query.BFS(triangle(), 0, -1))
}

func TestBFS_EmptyGraph(t *testing.T) {
	assert.Empty(t, query.BFS(csr.Empty(), 0, 5))
}

func TestBFS_CrossAndBackEdgesAreEmitted(t *testing.T) {
	// a diamond: 0->1, 0->2, 1->3, 2->3. Edge (2,3) is a cross edge once
	// 3 is already visited via 1, and must still appear in the output.
	g := &csr.Graph{
		NumNodes:   4,
		NumEdges:   4,
		RowPtr:     []int32{0, 2, 3, 4, 4},
		ColIndices: []int32{1, 2, 3, 3},
	}
	got := query.BFS(g, 0, 10)
	want := []query.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 3}, {U: 2, V: 3}}
	assert.Equal(t, want, got)
}

func TestBFS_Deterministic(t *testing.T) {
	g := triangle()
	first := query.BFS(g, 0, 10)
	second := query.BFS(g, 0, 10)
	assert.Equal(t, first, second)
}

func TestDegreeHistogram_Triangle(t *testing.T) {
	hist := query.DegreeHistogram(triangle())
	assert.Equal(t, map[int]int64{1: 3}, hist)
}

func TestDegreeHistogram_Empty(t *testing.T) {
	assert.Empty(t, query.DegreeHistogram(csr.Empty()))
}
