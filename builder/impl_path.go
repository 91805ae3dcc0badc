// SPDX-License-Identifier: MIT
// Package: deltastep/builder
//
// impl_path.go - Path(n), Cycle(n) and Star(n) constructors.
//
// Contract:
//   - Path:  n ≥ 2; arcs (i-1)→i for i=1..n-1.
//   - Cycle: n ≥ 3; arcs i→(i+1) mod n.
//   - Star:  n ≥ 2; the first vertex of the block is the center, arcs center→leaf.
//   - Vertex ids are block-relative: i means base+i.
//   - Edges are emitted in stable increasing order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deltastep/csr"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodStar  = "Star"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(a *csr.AdjacencyList, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := addVertices(a, n)
		for i := 1; i < n; i++ {
			if err := connect(methodPath, a, cfg, base+i-1, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(a *csr.AdjacencyList, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := addVertices(a, n)
		for i := 0; i < n; i++ {
			if err := connect(methodCycle, a, cfg, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(a *csr.AdjacencyList, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := addVertices(a, n)
		for i := 1; i < n; i++ {
			if err := connect(methodStar, a, cfg, center, center+i); err != nil {
				return err
			}
		}

		return nil
	}
}
