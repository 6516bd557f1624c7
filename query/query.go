package query

import "github.com/oxgraph/csrgraph/csr"

// CriticalNode returns the vertex in [0, NumNodes) with the greatest
// out-degree, breaking ties in favor of the lowest ID. On an empty
// graph it returns NoCriticalNode.
//
// Complexity: O(V), no allocation.
func CriticalNode(g *csr.Graph) int {
	if g.NumNodes == 0 {
		return NoCriticalNode
	}

	best := 0
	bestDegree := g.OutDegree(0)
	for u := 1; u < g.NumNodes; u++ {
		if d := g.OutDegree(u); d > bestDegree {
			best, bestDegree = u, d
		}
	}

	return best
}

// walker carries the mutable state of one bounded BFS call.
type walker struct {
	graph *csr.Graph
	depth int
	level []int32 // -1 == unvisited
	queue []int32
	out   []Edge
}

// BFS explores from start up to depth levels, returning every (u, v)
// edge examined — including edges to already-visited vertices — in
// the order the traversal examined it.
//
// An out-of-range start or a negative depth yields an empty slice;
// neither is treated as an error — misuse returns an empty result
// rather than signalling.
//
// Complexity: O(V + E) time, O(V) auxiliary memory.
func BFS(g *csr.Graph, start, depth int) []Edge {
	if !g.HasVertex(start) || depth < 0 {
		return nil
	}

	w := &walker{
		graph: g,
		depth: depth,
		level: newLevelArray(g.NumNodes),
		queue: make([]int32, 0, 64),
	}
	w.level[start] = 0
	w.queue = append(w.queue, int32(start))

	w.run()

	return w.out
}

// newLevelArray returns a slice of n int32s, each initialized to -1.
func newLevelArray(n int) []int32 {
	level := make([]int32, n)
	for i := range level {
		level[i] = -1
	}
	return level
}

// run drains the queue, expanding each vertex whose level is still
// within depth and recording every edge it examines.
func (w *walker) run() {
	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]

		if int(w.level[u]) > w.depth {
			continue
		}
		for _, v := range w.graph.Neighbors(int(u)) {
			w.out = append(w.out, Edge{U: int(u), V: int(v)})
			if w.level[v] == -1 {
				w.level[v] = w.level[u] + 1
				w.queue = append(w.queue, v)
			}
		}
	}
}

// DegreeHistogram buckets every vertex by its out-degree.
//
// Complexity: O(V) time, O(distinct out-degrees) allocation.
func DegreeHistogram(g *csr.Graph) map[int]int64 {
	hist := make(map[int]int64)
	for u := 0; u < g.NumNodes; u++ {
		hist[g.OutDegree(u)]++
	}

	return hist
}
