package parallel

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestPool(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		pool := Start(workers)
		if workers > 0 && pool.Workers() != workers {
			t.Errorf("Workers() = %d, want %d", pool.Workers(), workers)
		}

		var count atomic.Int64
		for range 100 {
			pool.Do(func() {
				count.Add(1)
			})
		}
		pool.Wait(true)

		if got := count.Load(); got != 100 {
			t.Errorf("workers=%d: ran %d jobs, want 100", workers, got)
		}
	}
}

func TestPoolWaitKeepsPoolOpen(t *testing.T) {
	for _, workers := range []int{1, 4} {
		pool := Start(workers)

		var count atomic.Int64
		for round := 1; round <= 2; round++ {
			for range 10 {
				pool.Do(func() {
					count.Add(1)
				})
			}

			waited := make(chan struct{})
			go func() {
				pool.Wait(false)
				close(waited)
			}()

			select {
			case <-waited:
			case <-time.After(2 * time.Second):
				t.Fatalf("workers=%d round %d: Wait(false) blocked with %d jobs done",
					workers, round, count.Load())
			}
			if got, want := count.Load(), int64(10*round); got != want {
				t.Errorf("workers=%d round %d: ran %d jobs, want %d", workers, round, got, want)
			}
		}

		pool.Close()
		pool.Close()
	}
}

func TestRows(t *testing.T) {
	tests := []struct {
		n, parts int
	}{
		{0, 4},
		{1, 4},
		{7, 3},
		{100, 8},
		{5, 1},
		{10, 0},
	}

	for _, tt := range tests {
		seen := make([]atomic.Int32, tt.n)
		Rows(tt.n, tt.parts, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				seen[i].Add(1)
			}
		})
		for i := range seen {
			if got := seen[i].Load(); got != 1 {
				t.Errorf("n=%d parts=%d: index %d visited %d times", tt.n, tt.parts, i, got)
			}
		}
	}
}
