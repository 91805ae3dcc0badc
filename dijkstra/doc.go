// Package dijkstra provides the sequential binary-heap Dijkstra used as the
// correctness oracle for the delta-stepping engines, on the same csr.Graph.
//
// Overview:
//
//   - Computes the minimum distance from a single source vertex to every
//     vertex in O((V + E) log V) time; unreachable vertices get +Inf.
//   - Relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional distance caps and “impassable” edge thresholds.
//
// When to use:
//
//   - In tests, to validate other SSSP engines vertex by vertex.
//   - For small graphs, where bucket bookkeeping is not worth it.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: stops exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//
// Error handling (sentinel errors):
//
//   - csr.ErrNilGraph:    nil *csr.Graph.
//   - csr.ErrEmptyGraph:  graph with zero vertices.
//   - csr.ErrOutOfRange:  source outside [0, V).
//   - ErrBadMaxDistance:  raised (via panic) by WithMaxDistance on negative input.
//   - ErrBadInfThreshold: raised (via panic) by WithInfEdgeThreshold on non-positive input.
//
// Thread safety:
//
//   - Each call owns its state; concurrent calls on the same immutable graph are safe.
package dijkstra
