package csrgraph

import (
	"context"
	"log"

	"github.com/oxgraph/csrgraph/cache"
	"github.com/oxgraph/csrgraph/csr"
	"github.com/oxgraph/csrgraph/ingest"
	"github.com/oxgraph/csrgraph/query"
)

// Backend is the capability set any CSR-like representation must
// honor to back a Graph: the read-only query surface NumNodes,
// NumEdges, CriticalNode, BFS, and DegreeHistogram. csr.Graph is the
// only production implementation, wrapped by csrBackend; tests may
// substitute a fake without touching Graph's public API.
type Backend interface {
	NumNodes() int
	NumEdges() int
	CriticalNode() int
	BFS(start, depth int) []query.Edge
	DegreeHistogram() map[int]int64
}

// csrBackend adapts a *csr.Graph to Backend by delegating to the
// query package's free functions.
type csrBackend struct {
	g *csr.Graph
}

func newCSRBackend(g *csr.Graph) *csrBackend { return &csrBackend{g: g} }

func (b *csrBackend) NumNodes() int     { return b.g.NumNodes }
func (b *csrBackend) NumEdges() int     { return b.g.NumEdges }
func (b *csrBackend) CriticalNode() int { return query.CriticalNode(b.g) }
func (b *csrBackend) BFS(start, depth int) []query.Edge {
	return query.BFS(b.g, start, depth)
}
func (b *csrBackend) DegreeHistogram() map[int]int64 {
	return query.DegreeHistogram(b.g)
}

// diagFunc is the shape of the diagnostic sink invoked on soft I/O and
// parse failures during Load.
type diagFunc func(format string, args ...interface{})

func defaultDiag(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDiag overrides where Load's soft-failure diagnostics go. The
// default writes to the standard logger (stderr).
func WithDiag(fn func(format string, args ...interface{})) Option {
	return func(g *Graph) {
		if fn != nil {
			g.diag = fn
		}
	}
}

// Graph is the object-style facade an embedder talks to: one instance
// per graph, created empty, populated exactly once by Load, read-only
// thereafter.
//
// Graph carries no internal lock: a single instance is owned by one
// logical caller at a time, and Load only ever swaps in a
// fully-built backend, so there is no partially-constructed state a
// concurrent reader could observe.
type Graph struct {
	backend Backend
	diag    diagFunc
}

// New returns an empty Graph: NumNodes() == 0, NumEdges() == 0,
// CriticalNode() == query.NoCriticalNode, BFS returns nil.
func New(opts ...Option) *Graph {
	g := &Graph{
		backend: newCSRBackend(csr.Empty()),
		diag:    defaultDiag,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Load populates the graph from path: a cache hit at path+".bin" is
// used as-is; otherwise the text edge-list at path is parsed via the
// three-pass CSR builder and the result is written back to the cache
// sidecar for the next Load.
//
// Load returns a non-nil error only if ctx is already canceled when
// Load is called; ctx is not consulted once loading has started.
// Every other failure mode — a missing or unreadable
// text file, a malformed edge stream, a cache write failure — is
// reported through the diagnostic sink (see WithDiag) and leaves the
// graph in its prior state (empty, on a first Load) rather than
// raising — the engine never aborts the host process.
func (g *Graph) Load(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if cached, err := cache.Read(cache.Path(path)); err == nil {
		g.backend = newCSRBackend(cached)
		return nil
	}

	r, err := ingest.Open(path)
	if err != nil {
		g.diag("csrgraph: load %q: %v", path, err)
		return nil
	}
	defer r.Close()

	built, err := csr.Build(r)
	if err != nil {
		g.diag("csrgraph: parse %q: %v", path, err)
		return nil
	}
	g.backend = newCSRBackend(built)

	if err := cache.Write(cache.Path(path), built); err != nil {
		g.diag("csrgraph: write cache for %q: %v", path, err)
	}

	return nil
}

// NumNodes returns the vertex count of the currently loaded graph.
func (g *Graph) NumNodes() int { return g.backend.NumNodes() }

// NumEdges returns the directed edge count of the currently loaded graph.
func (g *Graph) NumEdges() int { return g.backend.NumEdges() }

// CriticalNode returns the vertex of maximum out-degree (ties →
// lowest ID), or query.NoCriticalNode on an empty graph.
func (g *Graph) CriticalNode() int { return g.backend.CriticalNode() }

// BFS returns every (u, v) edge examined exploring from start up to
// depth levels, in examination order. An out-of-range start or a
// negative depth yields nil, never an error.
func (g *Graph) BFS(start, depth int) []query.Edge { return g.backend.BFS(start, depth) }

// DegreeHistogram buckets every vertex by its out-degree.
func (g *Graph) DegreeHistogram() map[int]int64 { return g.backend.DegreeHistogram() }

// Close releases the graph's backing arrays. The Graph must not be
// used afterward except as a fresh empty instance (NumNodes() == 0).
func (g *Graph) Close() {
	g.backend = newCSRBackend(csr.Empty())
}
