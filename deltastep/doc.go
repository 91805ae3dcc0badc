// Package deltastep computes single-source shortest-path distances on a
// csr.Graph with non-negative float32 weights using Δ-stepping, a bucketed
// generalization of Dijkstra's algorithm that exposes parallelism.
//
// Overview:
//
//   - Vertices are kept in buckets of width Δ: bucket i holds vertices whose
//     tentative distance lies in [iΔ, (i+1)Δ).
//   - Edges are classified once per run: light (w ≤ Δ) and heavy (w > Δ).
//   - The scheduler repeatedly takes the smallest non-empty bucket, drains it
//     through light-edge relaxation until it stays empty (light edges can
//     refill it), then relaxes the heavy edges of every removed vertex once.
//   - Distances only ever decrease. The final vector equals Dijkstra's for
//     every Δ > 0 and every worker count (confluence).
//
// Engines:
//
//   - DeltaStepping: single-threaded.
//   - ParallelDeltaStepping: a fixed fork-join pool of numThreads workers.
//     Each drain round is split into contiguous batches; workers lower
//     distances with an atomic-min CAS loop and record what they improved.
//     After the join barrier the coordinator alone re-buckets those vertices,
//     so the bucket store is never mutated concurrently.
//   - Run: either engine (by Options.Workers) plus Stats.
//
// Choosing Δ:
//
//   - SuggestDelta(g) = max(1, avgEdgeWeight/avgOutDegree). Advisory only.
//     Small Δ approaches Dijkstra (many buckets, little rework); large Δ
//     approaches Bellman–Ford (few buckets, more re-relaxation).
//   - Bucket heads are dense up to Options.MaxDenseBuckets and sparse beyond;
//     quotients d/Δ at or above bucket.MaxIndex share one overflow bucket,
//     which the drain loop processes until it is stable.
//
// Errors (sentinel):
//
//   - csr.ErrNilGraph, csr.ErrEmptyGraph, csr.ErrOutOfRange for the graph/source.
//   - ErrInvalidDelta for Δ ≤ 0, NaN or ±Inf.
//   - ErrInvalidThreads for numThreads < 1.
//
// Cancellation:
//
//   - There is none inside a run. Callers needing a deadline wrap the call;
//     an aborted run would leave its private state partial, which is never
//     exposed.
//
// Complexity:
//
//   - Classification O(n + m). Each heavy edge is scanned once per run; light
//     edges are scanned once per drain round of their source vertex.
//   - Space O(n + m) owned by the run and released when it returns.
package deltastep
