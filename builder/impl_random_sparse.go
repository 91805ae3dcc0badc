// SPDX-License-Identifier: MIT
// Package: deltastep/builder
//
// impl_random_sparse.go - RandomSparse(n, p) and Isolated(n) constructors.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p∈{0,1}.
//   - For each candidate the coin is drawn first, then (if kept) the weight,
//     both from cfg.rng, so the stream is consumed in a fixed order.
//
// Complexity: O(n²) pair checks, O(n + E) insertions.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deltastep/csr"
)

const (
	methodRandomSparse = "RandomSparse"
	methodIsolated     = "Isolated"

	minRandomNodes = 1
	minProbability = 0.0
	maxProbability = 1.0
)

// RandomSparse returns a Constructor that samples a G(n, p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(a *csr.AdjacencyList, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if !(p >= minProbability && p <= maxProbability) {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
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
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := connect(methodRandomSparse, a, cfg, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Isolated returns a Constructor that appends n vertices without edges.
// It is useful for padding fixtures with unreachable vertices.
func Isolated(n int) Constructor {
	return func(a *csr.AdjacencyList, _ builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodIsolated, n, ErrTooFewVertices)
		}
		addVertices(a, n)

		return nil
	}
}
