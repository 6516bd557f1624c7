// Package query provides the read-only structural queries over a
// csr.Graph: critical-node (maximum out-degree) and bounded-depth
// breadth-first search.
//
// What
//
//   - CriticalNode returns the vertex of maximum out-degree, ties
//     broken by lowest ID, or -1 on an empty graph.
//   - BFS explores from a start vertex up to a caller-supplied depth
//     cap and returns every (u, v) edge examined — including edges to
//     already-visited vertices — in the order it was examined. This is
//     the explored edge frontier, not the BFS tree: a visualization
//     front end is expected to render cross and back edges too.
//   - DegreeHistogram buckets every vertex by its out-degree in one
//     O(V) pass — a natural companion report alongside CriticalNode
//     for anyone inspecting a graph's shape.
//
// Why
//
//   - These are the only two traversal primitives the engine commits
//     to; everything else (shortest paths, connected components,
//     ranking) is left to a caller building on BFS/CriticalNode.
//
// Misuse handling
//
//   - An out-of-range start vertex or a negative depth is not an
//     error: BFS returns an empty slice rather than raising.
//
// Complexity
//
//   - CriticalNode: O(V), no allocation.
//   - BFS: O(V + E) time, O(V) auxiliary memory (level array + queue).
//   - DegreeHistogram: O(V) time, O(distinct degrees) allocation.
package query
