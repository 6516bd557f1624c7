package csr

import (
	"github.com/pkg/errors"

	"github.com/oxgraph/csrgraph/ingest"
)

// Build consumes r three times — dimension pass, histogram pass, scatter
// pass — and returns the resulting Graph. r must be positioned at (or
// rewindable to) data-start; Build rewinds it itself before each pass
// that needs a fresh read, so callers need not call r.Rewind first.
//
// Complexity: O(V + E) time, O(V) auxiliary memory (the counts/cursor
// arrays), in addition to the O(V + E) space of the final arrays.
func Build(r *ingest.Reader) (*Graph, error) {
	if err := r.Rewind(); err != nil {
		return nil, errors.Wrap(err, "csr: rewind before dimension pass")
	}
	numNodes, numEdges, err := dimensionPass(r)
	if err != nil {
		return nil, errors.Wrap(err, "csr: dimension pass")
	}
	if numNodes == 0 {
		return Empty(), nil
	}
	if err := r.Rewind(); err != nil {
		return nil, errors.Wrap(err, "csr: rewind after dimension pass")
	}

	rowPtr, err := histogramPass(r, numNodes)
	if err != nil {
		return nil, errors.Wrap(err, "csr: histogram pass")
	}
	if err := r.Rewind(); err != nil {
		return nil, errors.Wrap(err, "csr: rewind after histogram pass")
	}

	colIndices, err := scatterPass(r, numNodes, numEdges, rowPtr)
	if err != nil {
		return nil, errors.Wrap(err, "csr: scatter pass")
	}

	return &Graph{
		NumNodes:   numNodes,
		NumEdges:   numEdges,
		RowPtr:     rowPtr,
		ColIndices: colIndices,
	}, nil
}

// dimensionPass finds num_nodes = max(u, v)+1 and counts edges.
func dimensionPass(r *ingest.Reader) (numNodes, numEdges int, err error) {
	maxID := int64(-1)
	for {
		u, v, ok, err := r.Next()
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			break
		}
		if u < 0 || v < 0 {
			return 0, 0, errors.Wrapf(ErrNegativeVertex, "edge (%d, %d)", u, v)
		}
		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
		numEdges++
	}
	if maxID < 0 {
		return 0, 0, nil
	}

	return int(maxID) + 1, numEdges, nil
}

// histogramPass builds RowPtr as the exclusive prefix sum of per-vertex
// out-degree counts.
func histogramPass(r *ingest.Reader, numNodes int) ([]int32, error) {
	counts := make([]int32, numNodes)
	for {
		u, _, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		counts[u]++
	}

	rowPtr := make([]int32, numNodes+1)
	for i := 0; i < numNodes; i++ {
		rowPtr[i+1] = rowPtr[i] + counts[i]
	}

	return rowPtr, nil
}

// scatterPass writes each edge's destination into ColIndices at the
// position tracked by a per-vertex cursor, preserving input order
// within each row.
func scatterPass(r *ingest.Reader, numNodes, numEdges int, rowPtr []int32) ([]int32, error) {
	cursor := make([]int32, numNodes+1)
	copy(cursor, rowPtr)

	colIndices := make([]int32, numEdges)
	for {
		u, v, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		colIndices[cursor[u]] = int32(v)
		cursor[u]++
	}

	return colIndices, nil
}
