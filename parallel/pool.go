package parallel

import (
	"runtime"
	"sync"
)

// Pool runs submitted functions on a fixed set of worker goroutines. A pool
// started with a single worker runs every function inline in Do, which gives
// callers the sequential reference behavior without a separate code path.
// Pools are one-shot: once Wait has been called no further work may be
// submitted.
type Pool struct {
	work chan func()
	wg   sync.WaitGroup
	stop sync.Once
}

// Start launches a pool of numWorkers workers. Values below one mean one
// worker per available CPU.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{}
	if numWorkers == 1 {
		return pool
	}

	pool.work = make(chan func(), numWorkers)
	for i := 0; i < numWorkers; i++ {
		pool.wg.Add(1)
		go func() {
			defer pool.wg.Done()
			for f := range pool.work {
				f()
			}
		}()
	}

	return pool
}

// Do hands f to a worker, blocking while the queue is full. On a
// single-worker pool it simply calls f.
func (p *Pool) Do(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Wait closes the queue and blocks until every submitted function has
// finished. Calling it again is harmless.
func (p *Pool) Wait() {
	p.stop.Do(func() {
		if p.work != nil {
			close(p.work)
		}
	})
	p.wg.Wait()
}
