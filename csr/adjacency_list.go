// SPDX-License-Identifier: MIT
// Package: deltastep/csr
//
// adjacency_list.go — mutable adjacency-list builder and its conversion into
// the immutable CSR Graph.
//
// Contract:
//   - AddEdge / AddUndirectedEdge reject invalid weights and endpoints at
//     insertion time with ErrInvalidGraph; nothing is inserted on failure.
//   - ToCSR preserves per-vertex insertion order.
//   - AdjacencyList is NOT safe for concurrent mutation; build it on one
//     goroutine, then share the resulting Graph freely.

package csr

import "fmt"

// AdjacencyList accumulates edges per source vertex before compaction.
type AdjacencyList struct {
	rows     [][]Edge
	numEdges int
}

// NewAdjacencyList returns a builder with n isolated vertices (ids 0..n-1).
// Negative n is treated as 0.
func NewAdjacencyList(n int) *AdjacencyList {
	if n < 0 {
		n = 0
	}

	return &AdjacencyList{rows: make([][]Edge, n)}
}

// AddVertex appends one isolated vertex and returns its id.
func (a *AdjacencyList) AddVertex() int {
	a.rows = append(a.rows, nil)

	return len(a.rows) - 1
}

// NumNodes returns the current vertex count.
func (a *AdjacencyList) NumNodes() int { return len(a.rows) }

// NumEdges returns the current arc count (an undirected edge counts twice).
func (a *AdjacencyList) NumEdges() int { return a.numEdges }

// AddEdge inserts the directed arc from→to with weight w.
//
// Errors:
//   - ErrInvalidGraph if either endpoint is outside [0, NumNodes) or w is
//     negative, NaN or infinite.
func (a *AdjacencyList) AddEdge(from, to int, w float32) error {
	if err := a.checkArc(from, to, w); err != nil {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, err)
	}
	a.rows[from] = append(a.rows[from], Edge{Target: to, Weight: w})
	a.numEdges++

	return nil
}

// AddUndirectedEdge inserts u→v and v→u with the same weight.
// A self-loop (u == v) is stored once per direction, i.e. twice.
func (a *AdjacencyList) AddUndirectedEdge(u, v int, w float32) error {
	// Validate once up front so a failure leaves the list untouched.
	if err := a.checkArc(u, v, w); err != nil {
		return fmt.Errorf("AddUndirectedEdge(%d—%d): %w", u, v, err)
	}
	a.rows[u] = append(a.rows[u], Edge{Target: v, Weight: w})
	a.rows[v] = append(a.rows[v], Edge{Target: u, Weight: w})
	a.numEdges += 2

	return nil
}

// ToCSR compacts the list into an immutable Graph in O(n + m).
// Edges are already validated, so this never fails.
func (a *AdjacencyList) ToCSR() *Graph {
	n := len(a.rows)
	offsets := make([]int, n+1)
	for v, row := range a.rows {
		offsets[v+1] = offsets[v] + len(row)
	}
	edges := make([]Edge, offsets[n])
	for v, row := range a.rows {
		copy(edges[offsets[v]:offsets[v+1]], row)
	}

	return &Graph{numNodes: n, offsets: offsets, edges: edges}
}

// ToCSR converts a raw adjacency list (adj[v] = outgoing edges of v) into a
// Graph, validating every edge.
//
// Errors:
//   - ErrInvalidGraph on the first invalid edge, wrapped with its position.
func ToCSR(adj [][]Edge) (*Graph, error) {
	a := &AdjacencyList{rows: make([][]Edge, len(adj))}
	for from, row := range adj {
		for _, e := range row {
			if err := a.AddEdge(from, e.Target, e.Weight); err != nil {
				return nil, fmt.Errorf("ToCSR: %w", err)
			}
		}
	}

	return a.ToCSR(), nil
}

// checkArc validates endpoints and weight for a prospective arc.
func (a *AdjacencyList) checkArc(from, to int, w float32) error {
	n := len(a.rows)
	if from < 0 || from >= n {
		return fmt.Errorf("source %d outside [0,%d): %w", from, n, ErrInvalidGraph)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("target %d outside [0,%d): %w", to, n, ErrInvalidGraph)
	}

	return checkWeight(w)
}
