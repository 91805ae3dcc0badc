// Package csr provides the immutable compressed-sparse-row graph consumed by
// the shortest-path engines in this module.
//
// Overview:
//
//   - Build edges incrementally with AdjacencyList (AddEdge, AddUndirectedEdge),
//     then compact once with ToCSR. Alternatively wrap pre-built arrays with
//     NewGraph, which validates every CSR invariant.
//   - Vertex ids are dense integers in [0, n). The edges of v live in
//     Edges()[Offsets()[v]:Offsets()[v+1]].
//   - Weights are float32, finite and non-negative. Invalid weights are
//     rejected at insertion time, never clamped.
//
// Errors (sentinel):
//
//   - ErrInvalidGraph: bad weight, bad endpoint, malformed offsets.
//   - ErrOutOfRange:   source vertex outside [0, n) (see Graph.CheckSource).
//   - ErrEmptyGraph:   zero vertices.
//   - ErrNilGraph:     nil *Graph.
//
// Complexity:
//
//   - AddEdge: amortized O(1). ToCSR: O(n + m) time and space.
//
// Thread safety:
//
//   - AdjacencyList is single-goroutine. A built Graph is immutable and may be
//     shared by any number of concurrent queries.
package csr
