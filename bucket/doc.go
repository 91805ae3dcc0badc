// Package bucket implements the bucket store that drives delta-stepping: an
// array of vertex sets indexed by floor(dist/Δ), supporting Insert, Remove,
// Move, IsEmpty, Drain and SmallestNonEmpty in O(1) amortized time.
//
// Vertex ids are dense, so every bucket is an intrusive doubly-linked list
// threaded through per-vertex arrays; a vertex belongs to at most one bucket
// at any instant. Bucket heads are kept in a dense slice up to a configurable
// threshold and in a sparse map beyond it. Indices at or above MaxIndex share
// one overflow bucket.
package bucket
