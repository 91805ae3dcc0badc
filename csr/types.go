// SPDX-License-Identifier: MIT
// Package: deltastep/csr
//
// types.go — Edge and Graph types plus the sentinel errors shared by every
// algorithm package in this module.
//
// Contract:
//   - Vertex ids are dense integers in [0, NumNodes).
//   - Edge weights are finite and non-negative; this is enforced at
//     construction time, never silently corrected.
//   - A Graph is immutable once built; all getters are read-only views and
//     callers MUST NOT mutate the returned slices.

package csr

import "errors"

// Sentinel errors for graph construction and query entry validation.
var (
	// ErrInvalidGraph indicates a negative, NaN or infinite edge weight,
	// malformed CSR offsets, or an edge endpoint outside [0, NumNodes).
	ErrInvalidGraph = errors.New("csr: invalid graph")

	// ErrOutOfRange indicates a source vertex id outside [0, NumNodes).
	ErrOutOfRange = errors.New("csr: vertex out of range")

	// ErrEmptyGraph indicates a graph with zero vertices.
	ErrEmptyGraph = errors.New("csr: graph has no vertices")

	// ErrNilGraph indicates a nil *Graph was passed to an algorithm.
	ErrNilGraph = errors.New("csr: graph is nil")
)

// Edge is one outgoing arc stored in the CSR edge array.
// The source vertex is implicit: it is the row whose offset range holds the edge.
type Edge struct {
	// Target is the head vertex id.
	Target int

	// Weight is the non-negative, finite cost of the arc.
	Weight float32
}

// Graph is an immutable compressed-sparse-row adjacency structure.
//
// The edges of vertex v occupy edges[offsets[v]:offsets[v+1]]. Order inside a
// row is insertion order and carries no meaning.
//
// Invariants (checked by Validate):
//   - len(offsets) == numNodes+1, offsets[0] == 0, offsets[numNodes] == len(edges).
//   - offsets is monotonically non-decreasing.
//   - every Edge.Target lies in [0, numNodes) and every Edge.Weight is finite and ≥ 0.
type Graph struct {
	numNodes int
	offsets  []int
	edges    []Edge
}
