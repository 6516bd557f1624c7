package csr

import "github.com/pkg/errors"

// Sentinel errors for CSR construction.
var (
	// ErrNegativeVertex is returned when an edge endpoint is negative.
	// The ingest reader accepts negative tokens syntactically (they are
	// valid integers); the builder is where I4 is actually enforced.
	ErrNegativeVertex = errors.New("csr: negative vertex id in edge stream")
)

// Graph is an immutable Compressed Sparse Row directed graph.
//
// A Graph is built exactly once (by Build) and is safe for concurrent
// reads thereafter; it exposes no mutation methods.
type Graph struct {
	// NumNodes is the vertex count; valid vertex IDs are [0, NumNodes).
	NumNodes int

	// NumEdges is the directed edge count, counting duplicates and self-loops.
	NumEdges int

	// RowPtr has length NumNodes+1. RowPtr[u]..RowPtr[u+1] bounds u's
	// out-neighbor slice in ColIndices.
	RowPtr []int32

	// ColIndices has length NumEdges. Neighbors of u appear in the
	// exact order their edges appeared in the input stream.
	ColIndices []int32
}

// Empty returns a zero-value Graph: no nodes, no edges, RowPtr == [0].
//
// Complexity: O(1).
func Empty() *Graph {
	return &Graph{RowPtr: []int32{0}}
}

// OutDegree returns the out-degree of u.
//
// Complexity: O(1). Panics if u is outside [0, NumNodes) — a
// programmer error, not a data error; callers that accept untrusted
// vertex IDs should range-check first (query.BFS does this for an
// invalid start vertex).
func (g *Graph) OutDegree(u int) int {
	return int(g.RowPtr[u+1] - g.RowPtr[u])
}

// Neighbors returns u's out-neighbor slice, a window into ColIndices.
// The returned slice aliases Graph's storage and must not be mutated.
//
// Complexity: O(1).
func (g *Graph) Neighbors(u int) []int32 {
	return g.ColIndices[g.RowPtr[u]:g.RowPtr[u+1]]
}

// HasVertex reports whether u is a valid vertex ID.
//
// Complexity: O(1).
func (g *Graph) HasVertex(u int) bool {
	return u >= 0 && u < g.NumNodes
}
