// SPDX-License-Identifier: MIT
// Package: deltastep/csr
//
// graph.go — Graph constructor from raw CSR arrays, invariant validation and
// read-only accessors.
//
// Complexity:
//   - NewGraph / Validate: O(n + m) time, O(1) extra space.
//   - Accessors: O(1).

package csr

import (
	"fmt"
	"math"
)

// NewGraph wraps caller-provided CSR arrays after validating every invariant.
// The graph takes ownership of offsets and edges; the caller MUST NOT modify
// them afterwards.
//
// Errors:
//   - ErrInvalidGraph if offsets are malformed or any edge is invalid.
func NewGraph(offsets []int, edges []Edge) (*Graph, error) {
	if len(offsets) == 0 {
		return nil, fmt.Errorf("NewGraph: offsets must hold numNodes+1 entries: %w", ErrInvalidGraph)
	}
	g := &Graph{
		numNodes: len(offsets) - 1,
		offsets:  offsets,
		edges:    edges,
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("NewGraph: %w", err)
	}

	return g, nil
}

// Validate checks the CSR invariants documented on Graph.
func (g *Graph) Validate() error {
	if g == nil {
		return ErrNilGraph
	}
	n := g.numNodes
	if len(g.offsets) != n+1 {
		return fmt.Errorf("offsets length %d != numNodes+1 (%d): %w", len(g.offsets), n+1, ErrInvalidGraph)
	}
	if g.offsets[0] != 0 {
		return fmt.Errorf("offsets[0]=%d, want 0: %w", g.offsets[0], ErrInvalidGraph)
	}
	if g.offsets[n] != len(g.edges) {
		return fmt.Errorf("offsets[%d]=%d != numEdges %d: %w", n, g.offsets[n], len(g.edges), ErrInvalidGraph)
	}
	for v := 1; v <= n; v++ {
		if g.offsets[v] < g.offsets[v-1] {
			return fmt.Errorf("offsets not monotonic at %d: %d < %d: %w", v, g.offsets[v], g.offsets[v-1], ErrInvalidGraph)
		}
	}
	for i, e := range g.edges {
		if e.Target < 0 || e.Target >= n {
			return fmt.Errorf("edges[%d].Target=%d outside [0,%d): %w", i, e.Target, n, ErrInvalidGraph)
		}
		if err := checkWeight(e.Weight); err != nil {
			return fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	return nil
}

// CheckSource performs the call-entry validation shared by every SSSP
// algorithm: non-nil graph, at least one vertex, source inside [0, n).
func (g *Graph) CheckSource(source int) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.numNodes == 0 {
		return ErrEmptyGraph
	}
	if source < 0 || source >= g.numNodes {
		return fmt.Errorf("source %d outside [0,%d): %w", source, g.numNodes, ErrOutOfRange)
	}

	return nil
}

// NumNodes returns the vertex count n.
func (g *Graph) NumNodes() int { return g.numNodes }

// NumEdges returns the arc count m.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Offsets returns the row offsets (length n+1). Read-only.
func (g *Graph) Offsets() []int { return g.offsets }

// Edges returns the flat edge array (length m). Read-only.
func (g *Graph) Edges() []Edge { return g.edges }

// Neighbors returns the outgoing edges of v as a sub-slice of the edge array.
// v must lie in [0, NumNodes). Read-only.
func (g *Graph) Neighbors(v int) []Edge {
	return g.edges[g.offsets[v]:g.offsets[v+1]]
}

// OutDegree returns the number of outgoing edges of v.
func (g *Graph) OutDegree(v int) int {
	return g.offsets[v+1] - g.offsets[v]
}

// TotalWeight returns the sum of all edge weights, accumulated in float64.
func (g *Graph) TotalWeight() float64 {
	var sum float64
	for _, e := range g.edges {
		sum += float64(e.Weight)
	}

	return sum
}

// checkWeight rejects negative, NaN and infinite weights.
func checkWeight(w float32) error {
	f := float64(w)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("weight %v is not finite: %w", w, ErrInvalidGraph)
	}
	if w < 0 {
		return fmt.Errorf("weight %v is negative: %w", w, ErrInvalidGraph)
	}

	return nil
}
