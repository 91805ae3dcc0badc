package deltastep

import (
	"math"
	"slices"
	"sync/atomic"
)

// lightRoundParallel splits the frontier into one contiguous batch per
// worker. Workers update dist with atomicMin only; bucket moves are applied
// by commit once every batch has joined.
func (r *runner) lightRoundParallel() {
	r.pool.forEach(len(r.frontier), func(w, lo, hi int) {
		ws := &r.workers[w]
		for _, u := range r.frontier[lo:hi] {
			// u may be lowered concurrently by another batch; a stale du only
			// yields weaker candidates, and the lowered u is re-drained next round.
			du := math.Float32frombits(atomic.LoadUint32(&r.dist[u]))
			light := r.cls.Light(u)
			ws.light += uint64(len(light))
			for _, e := range light {
				r.relaxShared(ws, e.Target, du+e.Weight, PhaseLight)
			}
		}
	})
	r.commit()
}

// fillHeavy copies the removed set into r.heavy, reusing its backing array.
func (r *runner) fillHeavy() {
	n := int(r.removed.GetCardinality())
	r.heavy = slices.Grow(r.heavy[:0], n)[:n]
	it := r.removed.ManyIterator()
	for got := 0; got < n; {
		k := it.NextMany(r.heavy[got:])
		if k == 0 {
			r.heavy = r.heavy[:got]
			break
		}
		got += k
	}
}

// heavyPhaseParallel relaxes heavy edges of the removed set. The set is
// disjoint, so batches only contend on targets, which atomicMin handles.
func (r *runner) heavyPhaseParallel() {
	r.fillHeavy()
	r.pool.forEach(len(r.heavy), func(w, lo, hi int) {
		ws := &r.workers[w]
		for _, u32 := range r.heavy[lo:hi] {
			u := int(u32)
			du := math.Float32frombits(atomic.LoadUint32(&r.dist[u]))
			heavy := r.cls.Heavy(u)
			ws.heavy += uint64(len(heavy))
			for _, e := range heavy {
				r.relaxShared(ws, e.Target, du+e.Weight, PhaseHeavy)
			}
		}
	})
	r.commit()
}
