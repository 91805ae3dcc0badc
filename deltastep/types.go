// SPDX-License-Identifier: MIT
// Package: deltastep
//
// types.go — sentinel errors, run modes and phases, relaxation events, run
// statistics and functional options.
//
// Options policy (same as the rest of the module):
//   - Option constructors validate and PANIC on meaningless values.
//   - Algorithms never panic; they return sentinel errors wrapped with %w.
//   - Defaults are deterministic and documented in DefaultOptions.

package deltastep

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/deltastep/bucket"
)

// Sentinel errors specific to delta-stepping. Graph and source validation
// failures surface as csr.ErrNilGraph, csr.ErrEmptyGraph and csr.ErrOutOfRange.
var (
	// ErrInvalidDelta indicates a bucket width Δ that is not finite and > 0.
	ErrInvalidDelta = errors.New("deltastep: delta must be finite and positive")

	// ErrInvalidThreads indicates a worker count below 1.
	ErrInvalidThreads = errors.New("deltastep: numThreads must be at least 1")
)

// Mode tells whether a run used the single-threaded engine or the fork-join
// worker pool.
type Mode int

const (
	// ModeSequential relaxes every edge on the calling goroutine.
	ModeSequential Mode = iota

	// ModeParallel partitions each drain round across a fixed worker pool.
	ModeParallel
)

// String returns a stable lowercase label, suitable for metric labels.
func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	case ModeParallel:
		return "parallel"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Phase is a state of the scheduler state machine.
type Phase int

const (
	// PhaseFindBucket scans forward for the smallest non-empty bucket.
	PhaseFindBucket Phase = iota

	// PhaseLight drains the current bucket and relaxes light edges until it stays empty.
	PhaseLight

	// PhaseHeavy relaxes heavy edges once per vertex removed from the current bucket.
	PhaseHeavy

	// PhaseDone means no bucket is left.
	PhaseDone
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseFindBucket:
		return "find-bucket"
	case PhaseLight:
		return "light"
	case PhaseHeavy:
		return "heavy"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// RelaxEvent describes one accepted relaxation: dist[Vertex] dropped from Old
// to New. Bucket is the bucket New maps to; Current is the bucket being
// processed when the relaxation happened.
type RelaxEvent struct {
	Vertex  int
	Old     float32
	New     float32
	Bucket  int
	Current int
	Phase   Phase
}

// Stats summarizes the work done by one run.
type Stats struct {
	// LightRelaxations counts light edges scanned.
	LightRelaxations uint64
	// HeavyRelaxations counts heavy edges scanned.
	HeavyRelaxations uint64
	// Improvements counts relaxations that lowered a distance.
	Improvements uint64
	// Buckets counts buckets processed (FindBucket hits).
	Buckets uint64
	// LightRounds counts drain rounds across all buckets.
	LightRounds uint64
	// HeavyVertices counts vertices whose heavy edges were applied.
	HeavyVertices uint64
	// Reached counts vertices with a finite final distance.
	Reached int
}

// Relaxations returns the total number of edges scanned.
func (s Stats) Relaxations() uint64 { return s.LightRelaxations + s.HeavyRelaxations }

// Result is the output of Run.
type Result struct {
	// Dist[v] is the shortest distance from the source, or +Inf if unreachable.
	Dist  []float32
	Mode  Mode
	Stats Stats
}

// Options configures a delta-stepping run.
type Options struct {
	// Workers is the size of the fork-join pool. 1 selects the sequential engine in Run.
	Workers int

	// MaxDenseBuckets caps the dense bucket-head slice; higher indices go to a sparse map.
	MaxDenseBuckets int

	// Logger receives Debug-level run summaries. Defaults to a discard logger.
	Logger *slog.Logger

	// Observer receives one RunInfo per call. Defaults to NoopObserver.
	Observer Observer

	// OnRelax, if set, is invoked for every accepted relaxation. In parallel
	// mode it is called from worker goroutines and must be safe for concurrent use.
	OnRelax func(RelaxEvent)
}

// Option is a functional option for Run, DeltaStepping and ParallelDeltaStepping.
type Option func(*Options)

// DefaultOptions returns the deterministic defaults:
//   - Workers:         1
//   - MaxDenseBuckets: bucket.DefaultMaxDense
//   - Logger:          discard
//   - Observer:        NoopObserver{}
//   - OnRelax:         nil
func DefaultOptions() Options {
	return Options{
		Workers:         1,
		MaxDenseBuckets: bucket.DefaultMaxDense,
		Logger:          slog.New(slog.DiscardHandler),
		Observer:        NoopObserver{},
	}
}

// WithWorkers sets the worker pool size used by Run. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(ErrInvalidThreads.Error())
	}
	return func(o *Options) { o.Workers = n }
}

// WithMaxDenseBuckets sets the dense bucket-head threshold. Panics if n < 1.
func WithMaxDenseBuckets(n int) Option {
	if n < 1 {
		panic("deltastep: WithMaxDenseBuckets(n<1)")
	}
	return func(o *Options) { o.MaxDenseBuckets = n }
}

// WithLogger routes run summaries to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("deltastep: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithObserver installs a run observer. Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("deltastep: WithObserver(nil)")
	}
	return func(o *Options) { o.Observer = obs }
}

// WithOnRelax installs a hook called for every accepted relaxation.
func WithOnRelax(fn func(RelaxEvent)) Option {
	return func(o *Options) { o.OnRelax = fn }
}
