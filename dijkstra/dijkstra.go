// SPDX-License-Identifier: MIT
// Package: deltastep/dijkstra
//
// dijkstra.go — the single-threaded reference Dijkstra used to validate the
// delta-stepping engines.
//
// Dijkstra computes the minimum-cost distance from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the distance and visited arrays.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - Weights are validated by csr at construction time, so no pre-scan is needed.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Only distances are produced; when several shortest paths tie, which one
//     was "found" is unspecified and irrelevant.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/deltastep/csr"
)

// Dijkstra computes shortest distances from source to all other vertices of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance from source, +Inf if unreachable
//     (or beyond MaxDistance / only reachable through walls).
//   - err:  csr.ErrNilGraph, csr.ErrEmptyGraph or csr.ErrOutOfRange.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *csr.Graph, source int, opts ...Option) ([]float32, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and source.
	if err := g.CheckSource(source); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	// 3) Prepare run state.
	n := g.NumNodes()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float32, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 4) Initialize and run the main loop.
	r.init(source)
	r.process()

	return r.dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *csr.Graph // The input graph; read-only.
	options Options    // Configuration options (thresholds).
	dist    []float32  // dist[v] = current best distance from source.
	visited []bool     // visited[v] = distance of v is final.
	pq      nodePQ     // Min-heap of nodeItem for lazy priority queue.
}

// init sets dist[v]=+Inf for all v, dist[source]=0 and seeds the heap.
func (r *runner) init(source int) {
	inf := float32(math.Inf(1))
	for v := range r.dist {
		r.dist[v] = inf
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})
}

// process is the core loop. It repeatedly extracts the vertex with the minimum
// distance and relaxes its outgoing edges, until the heap is empty or the
// minimum exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(nodeItem)

		// 2) Skip stale heap entries.
		if r.visited[item.id] {
			continue
		}

		// 3) Beyond MaxDistance nothing else can be settled.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize and relax.
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax examines each edge leaving u and pushes improved neighbors.
// Assumes dist[u] is final.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, e := range r.g.Neighbors(u) {
		// Impassable wall.
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		nd := du + e.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		// Strictly better only; ties push nothing.
		if nd >= r.dist[e.Target] {
			continue
		}
		r.dist[e.Target] = nd
		heap.Push(&r.pq, nodeItem{id: e.Target, dist: nd})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int     // vertex ID
	dist float32 // distance from source
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
// Outdated entries remain and are skipped when popped (checked via visited).
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
