// SPDX-License-Identifier: MIT
// Package: deltastep/builder
//
// impl_grid.go - Grid(rows, cols) and Complete(n) constructors.
//
// Contract:
//   - Grid: rows, cols ≥ 1. Vertex (r,c) is base + r*cols + c (row-major).
//     For each cell, emit the Right edge then the Down edge if they exist.
//     In directed mode both directions are emitted so the neighborhood stays
//     symmetric; weights are drawn separately for each arc.
//   - Complete: n ≥ 1. Directed mode emits every ordered pair i≠j; undirected
//     mode emits each unordered pair {i<j} once, in both directions.
//
// Complexity:
//   - Grid: O(rows*cols) vertices and arcs.
//   - Complete: O(n²) arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deltastep/csr"
)

const (
	methodGrid     = "Grid"
	methodComplete = "Complete"

	minGridDim       = 1
	minCompleteNodes = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(a *csr.AdjacencyList, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := addVertices(a, rows*cols)
		id := func(r, c int) int { return base + r*cols + c }

		// link emits one grid edge, mirrored explicitly in directed mode.
		link := func(u, v int) error {
			if err := connect(methodGrid, a, cfg, u, v); err != nil {
				return err
			}
			if cfg.undirected {
				return nil
			}

			return connect(methodGrid, a, cfg, v, u)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(a *csr.AdjacencyList, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := addVertices(a, n)
		for i := 0; i < n; i++ {
			j := 0
			if cfg.undirected {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if err := connect(methodComplete, a, cfg, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
