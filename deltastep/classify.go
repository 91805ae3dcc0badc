// SPDX-License-Identifier: MIT
// Package: deltastep
//
// classify.go — splits every adjacency row into light (w ≤ Δ) and heavy
// (w > Δ) sub-rows, stored as two independent CSR arrays.
//
// Complexity:
//   - Time O(n + m), two passes (count, then fill) plus one prefix sum.
//   - Space O(n + m) for the two offset arrays and the copied edges.
//
// With workers > 1 both passes fan out over contiguous vertex chunks through
// an errgroup bounded to the worker count; chunks write disjoint ranges.

package deltastep

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/deltastep/csr"
)

// minChunkVertices keeps tiny graphs on the calling goroutine.
const minChunkVertices = 4096

// EdgeClasses holds the light/heavy partition of a graph for one Δ.
// It is derived data: recompute it whenever Δ changes.
type EdgeClasses struct {
	delta      float32
	lightOff   []int
	lightEdges []csr.Edge
	heavyOff   []int
	heavyEdges []csr.Edge
}

// Delta returns the bucket width the partition was computed for.
func (c *EdgeClasses) Delta() float32 { return c.delta }

// Light returns the edges of v with weight ≤ Δ.
func (c *EdgeClasses) Light(v int) []csr.Edge {
	return c.lightEdges[c.lightOff[v]:c.lightOff[v+1]]
}

// Heavy returns the edges of v with weight > Δ.
func (c *EdgeClasses) Heavy(v int) []csr.Edge {
	return c.heavyEdges[c.heavyOff[v]:c.heavyOff[v+1]]
}

// NumLight returns the total number of light edges.
func (c *EdgeClasses) NumLight() int { return len(c.lightEdges) }

// NumHeavy returns the total number of heavy edges.
func (c *EdgeClasses) NumHeavy() int { return len(c.heavyEdges) }

// Classify partitions the edges of g by Δ using up to workers goroutines.
//
// Errors:
//   - csr.ErrNilGraph if g is nil.
//   - ErrInvalidDelta if Δ is not finite and positive.
//   - ErrInvalidThreads if workers < 1.
func Classify(g *csr.Graph, delta float32, workers int) (*EdgeClasses, error) {
	if g == nil {
		return nil, csr.ErrNilGraph
	}
	if err := checkDelta(delta); err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, fmt.Errorf("Classify: workers=%d: %w", workers, ErrInvalidThreads)
	}

	n := g.NumNodes()
	c := &EdgeClasses{
		delta:    delta,
		lightOff: make([]int, n+1),
		heavyOff: make([]int, n+1),
	}

	// 1) Count light edges per row; heavy is the remainder of the degree.
	err := forChunks(n, workers, func(lo, hi int) {
		for v := lo; v < hi; v++ {
			light := 0
			for _, e := range g.Neighbors(v) {
				if e.Weight <= delta {
					light++
				}
			}
			c.lightOff[v+1] = light
			c.heavyOff[v+1] = g.OutDegree(v) - light
		}
	})
	if err != nil {
		return nil, fmt.Errorf("Classify: count: %w", err)
	}

	// 2) Prefix sums turn counts into offsets.
	for v := 1; v <= n; v++ {
		c.lightOff[v] += c.lightOff[v-1]
		c.heavyOff[v] += c.heavyOff[v-1]
	}
	c.lightEdges = make([]csr.Edge, c.lightOff[n])
	c.heavyEdges = make([]csr.Edge, c.heavyOff[n])

	// 3) Fill both arrays; each row writes only its own ranges.
	err = forChunks(n, workers, func(lo, hi int) {
		for v := lo; v < hi; v++ {
			li, hj := c.lightOff[v], c.heavyOff[v]
			for _, e := range g.Neighbors(v) {
				if e.Weight <= delta {
					c.lightEdges[li] = e
					li++
				} else {
					c.heavyEdges[hj] = e
					hj++
				}
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("Classify: fill: %w", err)
	}

	return c, nil
}

// forChunks runs fn over [0,n) split into at most workers contiguous chunks.
func forChunks(n, workers int, fn func(lo, hi int)) error {
	if workers <= 1 || n < minChunkVertices {
		fn(0, n)
		return nil
	}
	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}

	return g.Wait()
}
