// Package deltastep is the module root for parallel single-source shortest
// paths on non-negative float32 graphs.
//
// What is inside?
//
//	csr/                 — immutable CSR graph + mutable adjacency-list builder
//	bucket/              — distance-indexed bucket store (intrusive lists by vertex id)
//	deltastep/           — Δ-stepping: sequential and fork-join parallel engines
//	deltastep/promstats/ — Prometheus Observer for run metrics
//	dijkstra/            — binary-heap Dijkstra, the correctness oracle
//	builder/             — deterministic graph fixtures (path, grid, random, …)
//	converters/          — csr.Graph ⇄ gonum/graph adapters
//	examples/            — runnable demo (go run ./examples)
//
// Quick start:
//
//	a := csr.NewAdjacencyList(4)
//	_ = a.AddEdge(0, 1, 1)
//	_ = a.AddEdge(1, 2, 2)
//	g := a.ToCSR()
//	dist, err := deltastep.ParallelDeltaStepping(g, 0, deltastep.SuggestDelta(g), runtime.NumCPU())
//
// Every engine returns +Inf for unreachable vertices and the same distances
// for any Δ > 0 and any worker count.
package deltastep
