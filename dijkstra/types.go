// SPDX-License-Identifier: MIT
// Package: deltastep/dijkstra
//
// types.go — configuration options and sentinel errors of the reference
// binary-heap Dijkstra on csr.Graph.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond stay +Inf.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– csr.ErrNilGraph, csr.ErrEmptyGraph, csr.ErrOutOfRange  from call-entry validation.
//	– ErrBadMaxDistance   if MaxDistance < 0 or NaN (panics in WithMaxDistance).
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0 or NaN (panics in WithInfEdgeThreshold).

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors raised by option constructors.
var (
	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	MaxDistance      float32 // Maximum distance to explore
	InfEdgeThreshold float32 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float32) Option {
	if !(max >= 0) {
		// Panic to signal invalid configuration early.
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float32) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with no distance cap and no walls.
//
// Defaults:
//   - MaxDistance:      +Inf (explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
func DefaultOptions() Options {
	inf := float32(math.Inf(1))
	return Options{
		MaxDistance:      inf,
		InfEdgeThreshold: inf,
	}
}
