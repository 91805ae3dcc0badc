// SPDX-License-Identifier: MIT
// Package: deltastep/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates an empty adjacency
//     list, resolves cfg, runs cons in order, compacts to CSR.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deltastep/csr"
)

// Constructor appends a block of vertices and the arcs between them to a.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Number their vertices from a.NumNodes() upward.
//   - Preserve determinism for the same config and call order.
type Constructor func(a *csr.AdjacencyList, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order to an empty adjacency list and returns its CSR form.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
//
// Complexity:
//   - Applying K constructors: Σ cost of each constructor, plus O(V + E) for
//     the CSR compaction.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*csr.Graph, error) {
	a := csr.NewAdjacencyList(0)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(a, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return a.ToCSR(), nil
}

// addVertices appends n vertices and returns the id of the first one.
func addVertices(a *csr.AdjacencyList, n int) int {
	base := a.NumNodes()
	for i := 0; i < n; i++ {
		a.AddVertex()
	}

	return base
}

// connect draws one weight and emits u→v, plus v→u when cfg.undirected.
func connect(method string, a *csr.AdjacencyList, cfg builderConfig, u, v int) error {
	w := float32(cfg.weightFn(cfg.rng))
	var err error
	if cfg.undirected {
		err = a.AddUndirectedEdge(u, v, w)
	} else {
		err = a.AddEdge(u, v, w)
	}
	if err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}
