// Package builder produces deterministic csr.Graph fixtures for tests,
// examples and benchmarks of the shortest-path engines.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        resolves options and applies constructors in order.
//     – Constructor:       a closure that appends vertices and arcs to a csr.AdjacencyList.
//   - Topologies:
//     – Path, Cycle, Star, Grid, Complete, RandomSparse, Isolated.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:     constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:    fixed user-provided value.
//     – UniformWeightFn:     uniform ∼U[min,max).
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//
// Composition:
//
//   - Each constructor appends a fresh block of vertices after those already
//     present, so BuildGraph(nil, Path(3), Isolated(2)) yields vertices 0..4
//     with the path on 0..2.
//   - Arcs are directed unless WithUndirected() is given, in which case every
//     emitted edge is inserted in both directions with the same weight.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooFewVertices, ...) wrapped with
//     the method name; they never panic.
package builder
