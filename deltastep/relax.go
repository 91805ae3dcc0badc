// SPDX-License-Identifier: MIT
// Package: deltastep
//
// relax.go — the relaxation primitive, the single point of mutation for
// distances and bucket membership.
//
// Distances are stored as IEEE-754 bit patterns in []uint32 so the parallel
// engine can update them with 32-bit compare-and-swap. The sequential engine
// uses plain loads and stores on the same array.
//
// Sequential contract:
//   - relax(v, nd) is a no-op if nd ≥ dist[v].
//   - Otherwise dist[v] = nd and v moves to bucket floor(nd/Δ), leaving
//     whatever bucket it sat in before.
//
// Concurrent contract:
//   - atomicMin loops: load the current value, give up if the candidate is not
//     smaller, otherwise CAS observed→candidate; a failed CAS retries against
//     the fresher value until it succeeds or the candidate becomes obsolete.
//   - Workers never touch the bucket store. Each accepted update is queued on
//     the worker's touched list and the coordinator re-buckets it after the
//     join barrier (see commit).

package deltastep

import (
	"math"
	"sync/atomic"

	"github.com/katalvlaran/deltastep/bucket"
)

var infBits = math.Float32bits(float32(math.Inf(1)))

// relax applies the sequential contract.
func (r *runner) relax(v int, nd float32) {
	old := math.Float32frombits(r.dist[v])
	if nd >= old {
		return
	}
	r.dist[v] = math.Float32bits(nd)
	b := bucket.Index(nd, r.delta)
	r.buckets.Move(v, b)
	r.stats.Improvements++
	if r.opts.OnRelax != nil {
		r.opts.OnRelax(RelaxEvent{Vertex: v, Old: old, New: nd, Bucket: b, Current: r.current, Phase: r.phase})
	}
}

// atomicMin lowers *addr to nd if nd is smaller than the stored value.
// It returns the value it replaced and whether the store happened.
func atomicMin(addr *uint32, nd float32) (float32, bool) {
	next := math.Float32bits(nd)
	for {
		cur := atomic.LoadUint32(addr)
		old := math.Float32frombits(cur)
		if nd >= old {
			return old, false
		}
		if atomic.CompareAndSwapUint32(addr, cur, next) {
			return old, true
		}
	}
}

// workerState is owned by exactly one pool worker during a round and read by
// the coordinator only after the join barrier.
type workerState struct {
	touched      []int
	light, heavy uint64
	improvements uint64
}

// relaxShared applies the concurrent contract from worker w.
func (r *runner) relaxShared(ws *workerState, v int, nd float32, phase Phase) {
	old, ok := atomicMin(&r.dist[v], nd)
	if !ok {
		return
	}
	ws.touched = append(ws.touched, v)
	ws.improvements++
	if r.opts.OnRelax != nil {
		r.opts.OnRelax(RelaxEvent{
			Vertex:  v,
			Old:     old,
			New:     nd,
			Bucket:  bucket.Index(nd, r.delta),
			Current: r.current,
			Phase:   phase,
		})
	}
}

// commit runs on the coordinator after a join barrier. It moves every vertex
// improved during the round into the bucket of its final distance for that
// round and folds the worker counters into the run stats.
func (r *runner) commit() {
	for w := range r.workers {
		ws := &r.workers[w]
		for _, v := range ws.touched {
			d := math.Float32frombits(r.dist[v])
			r.buckets.Move(v, bucket.Index(d, r.delta))
		}
		ws.touched = ws.touched[:0]
		r.stats.LightRelaxations += ws.light
		r.stats.HeavyRelaxations += ws.heavy
		r.stats.Improvements += ws.improvements
		ws.light, ws.heavy, ws.improvements = 0, 0, 0
	}
}
