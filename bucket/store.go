// SPDX-License-Identifier: MIT
// Package: deltastep/bucket
//
// store.go — distance-indexed partition of active vertices.
//
// Representation:
//   - Each bucket is an intrusive doubly-linked list threaded through two
//     arrays (next, prev) indexed by vertex id, so removal by id is O(1)
//     without hashing.
//   - where[v] records the bucket currently holding v, or noBucket.
//   - Heads for indices below maxDense live in a lazily grown slice; heads for
//     larger indices live in a sparse map so a tiny Δ against huge distances
//     cannot force a giant allocation.
//   - Sparse keys are also pushed onto a min-heap when their bucket turns
//     non-empty. Entries whose bucket has since emptied stay in the heap and
//     are dropped when they surface (lazy deletion).
//
// Complexity:
//   - Insert / Remove / Move / IsEmpty / BucketOf: O(1) amortized.
//   - Drain(b): O(|b|).
//   - SmallestNonEmpty(from): O(k) dense slots scanned + O(log S) per stale
//     sparse entry popped; a scheduler that only moves forward scans each
//     dense slot O(1) times and pops each sparse entry once.
//   - Asking for a from that lies above a still non-empty sparse bucket falls
//     back to a scan of the sparse map. The engine never does that.

package bucket

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for misuse of the store. The delta-stepping engine never
// triggers them; they guard direct callers.
var (
	// ErrVertexRange indicates a vertex id outside [0, NumNodes).
	ErrVertexRange = errors.New("bucket: vertex out of range")

	// ErrBadIndex indicates a negative bucket index.
	ErrBadIndex = errors.New("bucket: negative bucket index")

	// ErrAlreadyBucketed indicates Insert of a vertex that already sits in a bucket.
	ErrAlreadyBucketed = errors.New("bucket: vertex already in a bucket")

	// ErrNotInBucket indicates Remove of a vertex that is not in the named bucket.
	ErrNotInBucket = errors.New("bucket: vertex not in bucket")
)

const (
	// MaxIndex is the overflow bucket. Distances whose quotient d/Δ reaches it
	// all share this single bucket.
	MaxIndex = math.MaxInt32

	// DefaultMaxDense is the default number of bucket heads kept in the dense
	// slice before the sparse map takes over.
	DefaultMaxDense = 1 << 20

	noBucket = -1
	nilLink  = int32(-1)

	initialDense = 64
)

// Index maps a finite, non-negative tentative distance to its bucket:
// floor(d/Δ), clamped to MaxIndex. The division runs in float64 so the
// mapping is monotone in d.
func Index(d, delta float32) int {
	q := math.Floor(float64(d) / float64(delta))
	if q >= MaxIndex || math.IsNaN(q) {
		return MaxIndex
	}
	if q < 0 {
		return 0
	}

	return int(q)
}

// Store is the bucket container. It is not safe for concurrent mutation; the
// parallel engine funnels every mutation through its coordinator goroutine.
type Store struct {
	next  []int32
	prev  []int32
	where []int

	dense    []int32
	sparse   map[int]int32
	order    indexHeap // sparse keys, lazily pruned
	maxDense int

	size int
}

// New returns an empty store for vertex ids [0, numNodes). maxDense ≤ 0
// selects DefaultMaxDense.
func New(numNodes, maxDense int) *Store {
	if maxDense <= 0 {
		maxDense = DefaultMaxDense
	}
	s := &Store{
		next:     make([]int32, numNodes),
		prev:     make([]int32, numNodes),
		where:    make([]int, numNodes),
		dense:    make([]int32, min(initialDense, maxDense)),
		sparse:   make(map[int]int32),
		maxDense: maxDense,
	}
	for v := range s.where {
		s.where[v] = noBucket
		s.next[v] = nilLink
		s.prev[v] = nilLink
	}
	for i := range s.dense {
		s.dense[i] = nilLink
	}

	return s
}

// NumNodes returns the vertex capacity of the store.
func (s *Store) NumNodes() int { return len(s.where) }

// Size returns the total number of bucketed vertices.
func (s *Store) Size() int { return s.size }

// BucketOf reports the bucket holding v, if any.
func (s *Store) BucketOf(v int) (int, bool) {
	if v < 0 || v >= len(s.where) || s.where[v] == noBucket {
		return 0, false
	}

	return s.where[v], true
}

// Insert places v into bucket b.
func (s *Store) Insert(b, v int) error {
	if err := s.check(b, v); err != nil {
		return fmt.Errorf("Insert(%d,%d): %w", b, v, err)
	}
	if s.where[v] != noBucket {
		return fmt.Errorf("Insert(%d,%d): held by bucket %d: %w", b, v, s.where[v], ErrAlreadyBucketed)
	}
	s.link(b, v)

	return nil
}

// Remove takes v out of bucket b.
func (s *Store) Remove(b, v int) error {
	if err := s.check(b, v); err != nil {
		return fmt.Errorf("Remove(%d,%d): %w", b, v, err)
	}
	if s.where[v] != b {
		return fmt.Errorf("Remove(%d,%d): %w", b, v, ErrNotInBucket)
	}
	s.unlink(v)

	return nil
}

// Move reassigns v to bucket b, unlinking it from its current bucket first.
// It is a no-op when v already sits in b. b and v must be valid.
func (s *Store) Move(v, b int) {
	switch s.where[v] {
	case b:
		return
	case noBucket:
	default:
		s.unlink(v)
	}
	s.link(b, v)
}

// IsEmpty reports whether bucket b holds no vertex.
func (s *Store) IsEmpty(b int) bool {
	return s.head(b) == nilLink
}

// SmallestNonEmpty returns the lowest non-empty bucket index ≥ from.
func (s *Store) SmallestNonEmpty(from int) (int, bool) {
	if s.size == 0 {
		return 0, false
	}
	if from < 0 {
		from = 0
	}
	for i := from; i < len(s.dense); i++ {
		if s.dense[i] != nilLink {
			return i, true
		}
	}
	for s.order.Len() > 0 {
		top := s.order[0]
		if _, ok := s.sparse[top]; !ok {
			heap.Pop(&s.order)
			continue
		}
		if top >= from {
			return top, true
		}

		return s.scanSparse(from)
	}

	return 0, false
}

// scanSparse is the slow path for a from that skips past live sparse buckets.
func (s *Store) scanSparse(from int) (int, bool) {
	best, found := 0, false
	for i := range s.sparse {
		if i >= from && (!found || i < best) {
			best, found = i, true
		}
	}

	return best, found
}

// Drain removes every vertex of bucket b, appending them to dst in list
// order, and returns the extended slice.
func (s *Store) Drain(b int, dst []int) []int {
	for h := s.head(b); h != nilLink; h = s.head(b) {
		v := int(h)
		s.unlink(v)
		dst = append(dst, v)
	}

	return dst
}

// link pushes v at the head of bucket b.
func (s *Store) link(b, v int) {
	h := s.head(b)
	s.next[v] = h
	s.prev[v] = nilLink
	if h != nilLink {
		s.prev[h] = int32(v)
	}
	s.setHead(b, int32(v))
	s.where[v] = b
	s.size++
}

// unlink detaches v from whichever bucket holds it.
func (s *Store) unlink(v int) {
	b := s.where[v]
	p, n := s.prev[v], s.next[v]
	if p != nilLink {
		s.next[p] = n
	} else {
		s.setHead(b, n)
	}
	if n != nilLink {
		s.prev[n] = p
	}
	s.next[v], s.prev[v] = nilLink, nilLink
	s.where[v] = noBucket
	s.size--
}

func (s *Store) head(b int) int32 {
	if b < len(s.dense) {
		return s.dense[b]
	}
	if h, ok := s.sparse[b]; ok {
		return h
	}

	return nilLink
}

func (s *Store) setHead(b int, h int32) {
	if b < s.maxDense {
		if b >= len(s.dense) {
			if h == nilLink {
				return
			}
			s.growDense(b + 1)
		}
		s.dense[b] = h
		return
	}
	if h == nilLink {
		delete(s.sparse, b)
		return
	}
	if _, ok := s.sparse[b]; !ok {
		heap.Push(&s.order, b)
	}
	s.sparse[b] = h
}

// growDense extends the dense head slice to at least n slots, doubling to
// keep growth amortized and never exceeding maxDense.
func (s *Store) growDense(n int) {
	size := max(n, 2*len(s.dense))
	size = min(size, s.maxDense)
	grown := make([]int32, size)
	copy(grown, s.dense)
	for i := len(s.dense); i < size; i++ {
		grown[i] = nilLink
	}
	s.dense = grown
}

func (s *Store) check(b, v int) error {
	if v < 0 || v >= len(s.where) {
		return ErrVertexRange
	}
	if b < 0 {
		return ErrBadIndex
	}

	return nil
}

// indexHeap is a min-heap of sparse bucket indices. Duplicates and entries
// for emptied buckets are allowed; SmallestNonEmpty skips them.
type indexHeap []int

func (h indexHeap) Len() int           { return len(h) }
func (h indexHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *indexHeap) Push(x any) { *h = append(*h, x.(int)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (h *indexHeap) Pop() any {
	old := *h
	n := len(old)
	top := old[n-1]
	*h = old[:n-1]

	return top
}
