package parallel

import (
	"runtime"
	"sync"
)

type (
	// WorkerFunc queues a job.
	WorkerFunc func(func())
	// WaitFunc blocks until queued jobs finish. With done set it also closes
	// the pool, and no more jobs may be queued afterwards; without it the
	// pool keeps accepting jobs.
	WaitFunc func(done bool)
)

type Pool struct {
	wg      sync.WaitGroup
	pending sync.WaitGroup
	workers int
	Do      WorkerFunc
	Wait    WaitFunc
	Close   func()
}

// Start returns a pool of numWorkers goroutines, or GOMAXPROCS of them when
// numWorkers < 1. A single worker runs jobs inline on the caller.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		workers: numWorkers,
		Do: func(f func()) {
			f()
		},
		Wait:  func(bool) {},
		Close: func() {},
	}
	if numWorkers == 1 {
		return pool
	}

	jobs := make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range jobs {
				f()
				pool.pending.Done()
			}
		})
	}

	pool.Do = func(f func()) {
		pool.pending.Add(1)
		jobs <- f
	}
	closeJobs := sync.OnceFunc(func() { close(jobs) })
	// Close stops accepting jobs and waits for the workers to exit.
	pool.Close = func() {
		closeJobs()
		pool.wg.Wait()
	}
	pool.Wait = func(done bool) {
		if done {
			pool.Close()
			return
		}
		pool.pending.Wait()
	}

	return pool
}

func (p *Pool) Workers() int {
	return p.workers
}

// Rows splits [0, n) into at most parts contiguous bands and calls fn for
// each band concurrently, returning once all bands are done.
func Rows(n, parts int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if parts < 1 {
		parts = runtime.GOMAXPROCS(0)
	}
	parts = min(parts, n)
	if parts == 1 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	step := (n + parts - 1) / parts
	for lo := 0; lo < n; lo += step {
		hi := min(lo+step, n)
		wg.Go(func() {
			fn(lo, hi)
		})
	}
	wg.Wait()
}
