// SPDX-License-Identifier: MIT
// Package: deltastep
//
// deltastep.go — public entry points, run state and the scheduler state
// machine shared by the sequential and parallel engines.
//
// Scheduler:
//
//	FindBucket ─► Light ─► Heavy ─┐
//	    ▲                         │
//	    └─────────────────────────┘   (Done when no bucket is non-empty)
//
//   - FindBucket: smallest non-empty bucket i ≥ current; none ⇒ Done.
//   - Light: repeat { drain bucket i into the frontier, add it to removed,
//     relax light edges of the frontier } until bucket i stays empty. Light
//     edges keep targets in buckets ≥ i, so the loop terminates.
//   - Heavy: relax heavy edges of each vertex in removed exactly once.
//   - Back to FindBucket starting at i.

package deltastep

import (
	"fmt"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/deltastep/bucket"
	"github.com/katalvlaran/deltastep/csr"
)

// DeltaStepping computes single-source shortest distances from source with
// bucket width delta on the calling goroutine. Unreachable vertices get +Inf.
// WithWorkers is ignored; use ParallelDeltaStepping for the worker pool.
//
// Errors (checked in order, before any work):
//   - csr.ErrNilGraph, csr.ErrEmptyGraph, csr.ErrOutOfRange
//   - ErrInvalidDelta
func DeltaStepping(g *csr.Graph, source int, delta float32, opts ...Option) ([]float32, error) {
	cfg := resolve(opts)
	res, err := run(g, source, delta, cfg, ModeSequential)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// ParallelDeltaStepping is DeltaStepping with light- and heavy-phase
// relaxation spread over a pool of numThreads workers. The result equals the
// sequential one for every numThreads.
//
// Errors: as DeltaStepping, plus ErrInvalidThreads if numThreads < 1.
func ParallelDeltaStepping(g *csr.Graph, source int, delta float32, numThreads int, opts ...Option) ([]float32, error) {
	cfg := resolve(opts)
	cfg.Workers = numThreads
	res, err := run(g, source, delta, cfg, ModeParallel)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// Run is the general entry point returning distances together with run
// statistics. It picks the parallel engine when Options.Workers > 1.
func Run(g *csr.Graph, source int, delta float32, opts ...Option) (*Result, error) {
	cfg := resolve(opts)
	mode := ModeSequential
	if cfg.Workers > 1 {
		mode = ModeParallel
	}

	return run(g, source, delta, cfg, mode)
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// run validates, executes and reports one query.
func run(g *csr.Graph, source int, delta float32, cfg Options, mode Mode) (*Result, error) {
	start := time.Now()
	info := RunInfo{Mode: mode, Workers: cfg.Workers, Delta: delta}
	if g != nil {
		info.Nodes, info.Edges = g.NumNodes(), g.NumEdges()
	}

	r, err := newRunner(g, source, delta, cfg, mode)
	if err != nil {
		info.Err = err
		info.Duration = time.Since(start)
		cfg.Observer.RecordRun(info)
		return nil, err
	}

	cfg.Logger.Debug("delta-stepping run started",
		"mode", mode.String(),
		"nodes", info.Nodes,
		"edges", info.Edges,
		"delta", delta,
		"workers", cfg.Workers,
		"light_edges", r.cls.NumLight(),
		"heavy_edges", r.cls.NumHeavy(),
	)

	r.process()
	res := r.result()

	info.Stats = res.Stats
	info.Duration = time.Since(start)
	cfg.Observer.RecordRun(info)
	cfg.Logger.Debug("delta-stepping run finished",
		"mode", mode.String(),
		"buckets", res.Stats.Buckets,
		"light_rounds", res.Stats.LightRounds,
		"relaxations", res.Stats.Relaxations(),
		"improvements", res.Stats.Improvements,
		"reached", res.Stats.Reached,
		"duration", info.Duration,
	)

	return res, nil
}

// runner owns all state of one invocation; nothing outlives the call.
type runner struct {
	g       *csr.Graph
	cls     *EdgeClasses
	delta   float32
	opts    Options
	mode    Mode
	dist    []uint32
	buckets *bucket.Store

	removed  *roaring.Bitmap
	frontier []int
	heavy    []uint32

	current int
	phase   Phase
	stats   Stats

	pool    *forkJoinPool
	workers []workerState
}

// newRunner performs all call-entry validation, classifies edges and seeds
// the source. Nothing is computed if validation fails.
func newRunner(g *csr.Graph, source int, delta float32, cfg Options, mode Mode) (*runner, error) {
	if err := g.CheckSource(source); err != nil {
		return nil, fmt.Errorf("deltastep: %w", err)
	}
	if err := checkDelta(delta); err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("deltastep: numThreads=%d: %w", cfg.Workers, ErrInvalidThreads)
	}

	classifyWorkers := 1
	if mode == ModeParallel {
		classifyWorkers = cfg.Workers
	}
	cls, err := Classify(g, delta, classifyWorkers)
	if err != nil {
		return nil, fmt.Errorf("deltastep: %w", err)
	}

	n := g.NumNodes()
	r := &runner{
		g:       g,
		cls:     cls,
		delta:   delta,
		opts:    cfg,
		mode:    mode,
		dist:    make([]uint32, n),
		buckets: bucket.New(n, cfg.MaxDenseBuckets),
		removed: roaring.New(),
	}
	for v := range r.dist {
		r.dist[v] = infBits
	}
	r.dist[source] = math.Float32bits(0)
	r.buckets.Move(source, 0)

	return r, nil
}

// process drives the scheduler until Done.
func (r *runner) process() {
	if r.mode == ModeParallel {
		r.pool = newForkJoinPool(r.opts.Workers)
		r.workers = make([]workerState, r.opts.Workers)
		defer r.pool.close()
	}

	for {
		r.phase = PhaseFindBucket
		i, ok := r.buckets.SmallestNonEmpty(r.current)
		if !ok {
			r.phase = PhaseDone
			return
		}
		r.current = i
		r.stats.Buckets++
		r.removed.Clear()

		r.phase = PhaseLight
		for !r.buckets.IsEmpty(i) {
			r.frontier = r.buckets.Drain(i, r.frontier[:0])
			for _, v := range r.frontier {
				r.removed.Add(uint32(v))
			}
			r.stats.LightRounds++
			if r.mode == ModeParallel {
				r.lightRoundParallel()
			} else {
				r.lightRound()
			}
		}

		r.phase = PhaseHeavy
		r.stats.HeavyVertices += r.removed.GetCardinality()
		if r.mode == ModeParallel {
			r.heavyPhaseParallel()
		} else {
			r.heavyPhase()
		}
	}
}

// lightRound relaxes the light edges of the current frontier.
func (r *runner) lightRound() {
	for _, u := range r.frontier {
		du := math.Float32frombits(r.dist[u])
		light := r.cls.Light(u)
		r.stats.LightRelaxations += uint64(len(light))
		for _, e := range light {
			r.relax(e.Target, du+e.Weight)
		}
	}
}

// heavyPhase relaxes heavy edges once per removed vertex, in id order.
func (r *runner) heavyPhase() {
	it := r.removed.Iterator()
	for it.HasNext() {
		u := int(it.Next())
		du := math.Float32frombits(r.dist[u])
		heavy := r.cls.Heavy(u)
		r.stats.HeavyRelaxations += uint64(len(heavy))
		for _, e := range heavy {
			r.relax(e.Target, du+e.Weight)
		}
	}
}

// result converts the bit-pattern distances back to float32.
func (r *runner) result() *Result {
	dist := make([]float32, len(r.dist))
	reached := 0
	for v, bits := range r.dist {
		dist[v] = math.Float32frombits(bits)
		if bits != infBits {
			reached++
		}
	}
	r.stats.Reached = reached

	return &Result{Dist: dist, Mode: r.mode, Stats: r.stats}
}

func checkDelta(delta float32) error {
	d := float64(delta)
	if math.IsNaN(d) || math.IsInf(d, 0) || delta <= 0 {
		return fmt.Errorf("deltastep: delta=%v: %w", delta, ErrInvalidDelta)
	}

	return nil
}
