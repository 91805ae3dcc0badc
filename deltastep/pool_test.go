package deltastep

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deltastep/csr"
)

func TestForkJoinPool_CoversEveryIndexOnce(t *testing.T) {
	p := newForkJoinPool(4)
	defer p.close()
	require.Equal(t, 4, p.size())

	for _, total := range []int{0, 1, 3, 4, 5, 17, 1000} {
		hits := make([]int32, total)
		p.forEach(total, func(_, lo, hi int) {
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			require.Equal(t, int32(1), h, "total=%d index=%d", total, i)
		}
	}
}

func TestForkJoinPool_ReusedAcrossRounds(t *testing.T) {
	p := newForkJoinPool(3)
	defer p.close()

	var sum atomic.Int64
	for round := 0; round < 50; round++ {
		p.forEach(10, func(_, lo, hi int) {
			sum.Add(int64(hi - lo))
		})
	}
	require.Equal(t, int64(500), sum.Load())
}

func TestForkJoinPool_PanicRaisedOnCaller(t *testing.T) {
	p := newForkJoinPool(4)
	defer p.close()

	var ran atomic.Int32
	require.PanicsWithValue(t, "batch 2", func() {
		p.forEach(8, func(w, lo, _ int) {
			ran.Add(1)
			if lo == 4 {
				panic("batch 2")
			}
		})
	})
	// Every batch still reached the barrier.
	require.Equal(t, int32(4), ran.Load())

	// The pool keeps working after a recovered panic.
	var sum atomic.Int64
	p.forEach(8, func(_, lo, hi int) { sum.Add(int64(hi - lo)) })
	require.Equal(t, int64(8), sum.Load())
}

func TestForkJoinPool_GoexitRepeatedOnCaller(t *testing.T) {
	p := newForkJoinPool(2)
	defer p.close()

	done := make(chan struct{})
	returned := false
	go func() {
		defer close(done)
		p.forEach(2, func(w, lo, _ int) {
			if lo == 1 {
				runtime.Goexit()
			}
		})
		returned = true
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("forEach blocked after a worker called runtime.Goexit")
	}
	require.False(t, returned)
}

func TestHeavyPhaseParallel_ReusesBuffer(t *testing.T) {
	// 70001 vertices so the removed set spans two roaring containers.
	g := csr.NewAdjacencyList(70_001).ToCSR()
	r, err := newRunner(g, 0, 1, DefaultOptions(), ModeParallel)
	require.NoError(t, err)
	r.pool = newForkJoinPool(2)
	defer r.pool.close()
	r.workers = make([]workerState, 2)

	r.removed.AddMany([]uint32{0, 5, 70_000})
	r.heavyPhaseParallel()
	require.Equal(t, []uint32{0, 5, 70_000}, r.heavy)
	first := &r.heavy[0]

	r.removed.Clear()
	r.removed.AddMany([]uint32{5, 70_000})
	r.heavyPhaseParallel()
	require.Equal(t, []uint32{5, 70_000}, r.heavy)
	require.Same(t, first, &r.heavy[0])
}

func TestAtomicMin_ConcurrentLowering(t *testing.T) {
	addr := infBits
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 100; i >= 0; i-- {
				atomicMin(&addr, float32(i*8+g))
			}
		}(g)
	}
	wg.Wait()
	require.Equal(t, float32(0), math.Float32frombits(addr))

	old, ok := atomicMin(&addr, 5)
	require.False(t, ok)
	require.Equal(t, float32(0), old)
}
