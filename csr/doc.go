// Package csr holds the Compressed Sparse Row graph representation and
// the three-pass builder that produces it from an edge stream.
//
// What
//
//   - Graph is two flat int32 slices plus two counts: RowPtr (length
//     NumNodes+1) and ColIndices (length NumEdges). RowPtr[u]..RowPtr[u+1]
//     slices ColIndices for vertex u's out-neighbors, in input order.
//   - Build consumes an *ingest.Reader three times — once to size the
//     arrays, once to histogram out-degrees into RowPtr, once to scatter
//     neighbor IDs into ColIndices — without ever materializing a
//     per-vertex adjacency list.
//
// Why
//
//   - Three bounded passes over O(num_nodes) auxiliary memory beat a
//     dynamic per-vertex list: no intermediate fragmentation, no
//     resizing, and the final arrays are exactly the size the data
//     calls for.
//
// Invariants (hold for every Graph returned by Build)
//
//   - len(RowPtr) == NumNodes+1, RowPtr[0] == 0, RowPtr[NumNodes] == NumEdges.
//   - RowPtr is non-decreasing.
//   - len(ColIndices) == NumEdges; every entry is in [0, NumNodes).
//   - NumNodes == max(u, v over all edges) + 1, so a vertex whose only
//     appearance is as a large ID still reserves every lower ID's row
//     (possibly empty).
//
// Complexity: O(V + E) time across the three passes, O(V) auxiliary memory.
package csr
