package deltastep

import (
	"runtime"
	"sync"
)

// batchFunc processes items [lo, hi) of the current round on worker w.
type batchFunc func(w, lo, hi int)

type batch struct {
	fn     batchFunc
	lo, hi int
}

// forkJoinPool is a fixed set of long-lived worker goroutines. Each call to
// forEach splits a range into one contiguous batch per worker, hands the
// batches out and blocks at a join barrier until all of them are done.
// Workers never yield mid-batch and no goroutine is spawned per round.
//
// A panic inside a batch is caught on the worker and raised again on the
// goroutine calling forEach once every batch has finished; a runtime.Goexit
// inside a batch is likewise repeated there. Only the first failure of a
// round is kept.
type forkJoinPool struct {
	inbox []chan batch
	join  sync.WaitGroup

	mu       sync.Mutex
	failed   bool
	panicVal any // nil with failed set means Goexit
}

func newForkJoinPool(workers int) *forkJoinPool {
	p := &forkJoinPool{inbox: make([]chan batch, workers)}
	for w := range p.inbox {
		ch := make(chan batch, 1)
		p.inbox[w] = ch
		go p.loop(w, ch)
	}

	return p
}

func (p *forkJoinPool) loop(w int, in <-chan batch) {
	for b := range in {
		p.run(w, b)
	}
}

// run executes one batch. Done is deferred so the barrier is released even
// when fn panics or calls runtime.Goexit; after a Goexit this worker is gone.
func (p *forkJoinPool) run(w int, b batch) {
	completed := false
	defer p.join.Done()
	defer func() {
		if completed {
			return
		}
		// recover is nil during Goexit.
		p.fail(recover())
	}()
	b.fn(w, b.lo, b.hi)
	completed = true
}

func (p *forkJoinPool) fail(v any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.failed {
		p.failed, p.panicVal = true, v
	}
}

// rethrow repeats a batch failure on the calling goroutine.
func (p *forkJoinPool) rethrow() {
	p.mu.Lock()
	failed, v := p.failed, p.panicVal
	p.failed, p.panicVal = false, nil
	p.mu.Unlock()
	if !failed {
		return
	}
	if v == nil {
		runtime.Goexit()
	}
	panic(v)
}

// size returns the number of workers.
func (p *forkJoinPool) size() int { return len(p.inbox) }

// forEach partitions [0,total) into size() contiguous batches and runs fn on
// them in parallel. Empty batches are not dispatched. A panic in fn is
// re-raised here after the barrier.
func (p *forkJoinPool) forEach(total int, fn batchFunc) {
	if total == 0 {
		return
	}
	n := len(p.inbox)
	chunk := (total + n - 1) / n
	for w := 0; w < n; w++ {
		lo := w * chunk
		if lo >= total {
			break
		}
		p.join.Add(1)
		p.inbox[w] <- batch{fn: fn, lo: lo, hi: min(lo+chunk, total)}
	}
	p.join.Wait()
	p.rethrow()
}

// close stops every worker. The pool must be idle.
func (p *forkJoinPool) close() {
	for _, ch := range p.inbox {
		close(ch)
	}
}
