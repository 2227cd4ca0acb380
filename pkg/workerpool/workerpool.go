// Package workerpool provides bounded concurrent processing of streamed work items.
package workerpool

import (
	"context"
	"iter"
	"sync"
)

// Process pulls items from seq on a single goroutine and hands them to workerCount workers.
// The first error returned by process cancels the remaining work and is returned.
// Process does not return before seq has stopped being iterated, so the caller may release
// whatever backs seq as soon as it returns.
func Process[T any](
	ctx context.Context,
	workerCount int,
	seq iter.Seq[T],
	process func(context.Context, T) error,
) error {
	if workerCount < 1 {
		workerCount = 1
	}

	parent := ctx
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	tasks := make(chan T, workerCount)
	errs := make(chan error, workerCount)
	produced := make(chan struct{})

	go func() {
		defer close(produced)
		defer close(tasks)
		for item := range seq {
			if ctx.Err() != nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			case tasks <- item:
			}
		}
	}()

	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, item); err != nil {
						select {
						case errs <- err:
						default:
						}
						cancel()
						return
					}
				}
			}
		}()
	}

	wg.Wait()
	// workers may stop before seq is drained; release the producer
	cancel()
	<-produced
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}

	return parent.Err()
}
