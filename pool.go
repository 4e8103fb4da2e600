package ovc

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// workerPool manages a fixed pool of goroutines for parallel compression
// tasks. A fixed pool avoids spawning one goroutine per vector when
// batch-compressing large datasets.
type workerPool struct {
	numWorkers int
	workCh     chan func()
	stopCh     chan struct{}
	wg         sync.WaitGroup
	closed     atomic.Bool
	submitMu   sync.RWMutex
}

// newWorkerPool creates a worker pool with numWorkers goroutines.
// numWorkers <= 0 defaults to runtime.GOMAXPROCS(0); compression is
// CPU-bound, so there is no point exceeding it.
func newWorkerPool(numWorkers int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	wp := &workerPool{
		numWorkers: numWorkers,
		workCh:     make(chan func(), numWorkers*2), // 2x buffer for pipelining
		stopCh:     make(chan struct{}),
	}

	wp.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go wp.worker()
	}

	return wp
}

func (wp *workerPool) worker() {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.stopCh:
			// Drain remaining work before exiting
			for {
				select {
				case workFunc, ok := <-wp.workCh:
					if !ok {
						return
					}
					workFunc()
				default:
					return
				}
			}
		case workFunc, ok := <-wp.workCh:
			if !ok {
				return
			}
			workFunc()
		}
	}
}

// submit enqueues a task, returning immediately. It fails if the pool is
// closed or the context is cancelled before the task is accepted.
func (wp *workerPool) submit(ctx context.Context, task func()) error {
	wp.submitMu.RLock()
	defer wp.submitMu.RUnlock()

	if wp.closed.Load() {
		return ErrPoolClosed
	}

	select {
	case wp.workCh <- task:
		return nil
	case <-wp.stopCh:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close shuts down the worker pool gracefully.
func (wp *workerPool) close() {
	if !wp.closed.CompareAndSwap(false, true) {
		return
	}

	wp.submitMu.Lock()
	close(wp.stopCh)
	close(wp.workCh)
	wp.submitMu.Unlock()

	wp.wg.Wait()
}
