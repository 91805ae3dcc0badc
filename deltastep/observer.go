package deltastep

import (
	"sync/atomic"
	"time"
)

// RunInfo is reported to an Observer once per call, successful or not.
type RunInfo struct {
	Mode     Mode
	Workers  int
	Nodes    int
	Edges    int
	Delta    float32
	Stats    Stats
	Duration time.Duration
	// Err is the validation error that aborted the call, if any.
	Err error
}

// Observer collects per-run metrics. Implementations must be safe for
// concurrent use; independent runs may report at the same time.
//
// See package promstats for a Prometheus implementation.
type Observer interface {
	RecordRun(info RunInfo)
}

// NoopObserver discards everything.
type NoopObserver struct{}

// RecordRun implements Observer.
func (NoopObserver) RecordRun(RunInfo) {}

// BasicObserver keeps in-memory totals. Useful for debugging and tests.
type BasicObserver struct {
	Runs             atomic.Int64
	Errors           atomic.Int64
	LightRelaxations atomic.Uint64
	HeavyRelaxations atomic.Uint64
	Improvements     atomic.Uint64
	Buckets          atomic.Uint64
	TotalNanos       atomic.Int64
}

// RecordRun implements Observer.
func (b *BasicObserver) RecordRun(info RunInfo) {
	b.Runs.Add(1)
	if info.Err != nil {
		b.Errors.Add(1)
		return
	}
	b.LightRelaxations.Add(info.Stats.LightRelaxations)
	b.HeavyRelaxations.Add(info.Stats.HeavyRelaxations)
	b.Improvements.Add(info.Stats.Improvements)
	b.Buckets.Add(info.Stats.Buckets)
	b.TotalNanos.Add(info.Duration.Nanoseconds())
}
