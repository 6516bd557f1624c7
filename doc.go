// Package csrgraph is an in-memory engine for large sparse directed
// graphs: ingest a SNAP-style edge-list dump once, hold it in a
// Compressed Sparse Row layout, and answer structural queries at
// interactive latency from then on.
//
// What is csrgraph?
//
//	A single-owner, immutable-after-load graph engine built on:
//
//	  • ingest/  — SNAP-style edge-list reader with rewind
//	  • csr/     — three-pass builder producing the CSR arrays
//	  • cache/   — binary sidecar codec (<source>.bin), checksummed
//	  • query/   — critical-node and bounded-depth BFS over the CSR
//
// Why csrgraph?
//
//   - Cache-friendly    — two flat slices (RowPtr, ColIndices), no
//     per-vertex adjacency lists, no pointer chasing.
//   - Session-amortized — the first Load pays for text parsing once;
//     every subsequent Load on the same path reads the binary cache.
//   - Single-owner      — a Graph is built exactly once and is
//     immutable thereafter; no internal locking to pay for.
//
// Quick example:
//
//	g := csrgraph.New()
//	defer g.Close()
//	if err := g.Load(context.Background(), "web-Google.txt"); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.NumNodes(), g.NumEdges(), g.CriticalNode())
//
// See SPEC_FULL.md and DESIGN.md for the full contract and the
// grounding behind each design decision.
package csrgraph
