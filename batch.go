package ovc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/PMeeske/ouroboros-foundation-sub005/blobstore"
)

// BatchResult is the outcome of compressing one vector of a batch.
// Failures are carried per item: a bad vector does not abort the batch.
type BatchResult struct {
	Bytes []byte
	Event Event
	Err   error
}

// BatchCompress compresses vectors independently and in parallel,
// preserving input order in the results. Each vector's compression is
// all-or-nothing; cancellation stops submitting further items and
// returns the context error, leaving already-computed results behind.
func (c *Codec) BatchCompress(ctx context.Context, vectors [][]float32) ([]BatchResult, error) {
	return c.BatchCompressMethod(ctx, vectors, c.opts.defaultMethod)
}

// BatchCompressMethod is BatchCompress with an explicit method.
func (c *Codec) BatchCompressMethod(ctx context.Context, vectors [][]float32, method Method) ([]BatchResult, error) {
	start := time.Now()
	results := make([]BatchResult, len(vectors))
	if len(vectors) == 0 {
		return results, nil
	}

	pool := newWorkerPool(c.opts.batchWorkers)
	defer pool.close()

	var wg sync.WaitGroup
	var submitErr error
	for i, v := range vectors {
		wg.Add(1)
		err := pool.submit(ctx, func() {
			defer wg.Done()
			results[i].Bytes, results[i].Event, results[i].Err = c.compress(v, method)
		})
		if err != nil {
			wg.Done()
			submitErr = err
			break
		}
	}
	wg.Wait()

	failed := 0
	for i := range results {
		if results[i].Err != nil {
			failed++
		}
	}
	c.opts.metrics.RecordBatchCompress(len(vectors), failed, time.Since(start))
	c.opts.logger.LogBatchCompress(ctx, len(vectors), failed)

	if submitErr != nil {
		return results, submitErr
	}
	return results, nil
}

// BatchCompressToStore compresses vectors and persists each envelope to
// store under keyFn(i). Compression and storage are fanned out with a
// bounded concurrency of the codec's batch worker count; the first error
// cancels the remaining work.
func (c *Codec) BatchCompressToStore(ctx context.Context, store blobstore.Store, keyFn func(i int) string, vectors [][]float32) ([]Event, error) {
	events := make([]Event, len(vectors))
	sem := semaphore.NewWeighted(int64(c.opts.batchWorkers))

	g, ctx := errgroup.WithContext(ctx)
	var acquireErr error
	for i, v := range vectors {
		if err := sem.Acquire(ctx, 1); err != nil {
			// A failed task cancels the group context; stop submitting
			// and let Wait surface that task's error.
			acquireErr = err
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			data, event, err := c.compress(v, c.opts.defaultMethod)
			if err != nil {
				return fmt.Errorf("compress vector %d: %w", i, err)
			}
			if err := store.Put(ctx, keyFn(i), data); err != nil {
				return fmt.Errorf("store vector %d: %w", i, err)
			}
			events[i] = event
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if acquireErr != nil {
		return nil, acquireErr
	}
	return events, nil
}
