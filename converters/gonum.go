// SPDX-License-Identifier: MIT
// Package: deltastep/converters
//
// gonum.go — conversions between csr.Graph and gonum/graph.
//
// Contract:
//   - FromGonum visits nodes in ascending id order; node with the k-th smallest
//     id becomes vertex k. Arcs follow g.From(u) sorted by target id.
//     Undirected gonum graphs yield both arcs of every edge.
//   - Weights are narrowed to float32 and must be finite and ≥ 0.
//   - ToGonum drops self-loops (simple graphs cannot hold them and they never
//     shorten a path) and keeps the lightest of parallel arcs.

package converters

import (
	"fmt"
	"math"
	"reflect"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/deltastep/csr"
)

// FromGonum converts g into a csr.Graph. It returns the graph and the mapping
// from gonum node id to csr vertex id.
//
// Errors:
//   - csr.ErrNilGraph if g is nil, including a nil pointer such as a
//     (*simple.WeightedDirectedGraph)(nil) held in the interface.
//   - csr.ErrInvalidGraph for a weight that is negative, NaN or infinite.
func FromGonum(g graph.Weighted) (*csr.Graph, map[int64]int, error) {
	if isNil(g) {
		return nil, nil, fmt.Errorf("FromGonum: %w", csr.ErrNilGraph)
	}

	nodes := graph.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	slices.Sort(ids)

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	a := csr.NewAdjacencyList(len(ids))
	targets := make([]int64, 0)
	for u, uid := range ids {
		targets = targets[:0]
		for _, n := range graph.NodesOf(g.From(uid)) {
			targets = append(targets, n.ID())
		}
		slices.Sort(targets)
		for _, vid := range targets {
			w, ok := g.Weight(uid, vid)
			if !ok {
				continue
			}
			if math.Abs(w) > math.MaxFloat32 {
				return nil, nil, fmt.Errorf("FromGonum: edge %d→%d weight %g overflows float32: %w",
					uid, vid, w, csr.ErrInvalidGraph)
			}
			if err := a.AddEdge(u, index[vid], float32(w)); err != nil {
				return nil, nil, fmt.Errorf("FromGonum: edge %d→%d: %w", uid, vid, err)
			}
		}
	}

	return a.ToCSR(), index, nil
}

// ToGonum converts g into a gonum weighted directed graph whose node ids are
// the csr vertex ids. Absent edges weigh +Inf, self weight is 0.
func ToGonum(g *csr.Graph) *simple.WeightedDirectedGraph {
	out := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	if g == nil {
		return out
	}
	for v := 0; v < g.NumNodes(); v++ {
		out.AddNode(simple.Node(int64(v)))
	}
	for u := 0; u < g.NumNodes(); u++ {
		for _, e := range g.Neighbors(u) {
			if e.Target == u {
				continue
			}
			from, to := int64(u), int64(e.Target)
			w := float64(e.Weight)
			if cur, ok := out.Weight(from, to); ok && cur <= w {
				continue
			}
			out.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(from), T: simple.Node(to), W: w})
		}
	}

	return out
}

// isNil reports whether g is nil or wraps a nil pointer.
func isNil(g graph.Weighted) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
