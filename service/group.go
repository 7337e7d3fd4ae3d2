package service

import (
	"context"
	"sync"
)

type GroupTask func(ctx context.Context) error

// RunGroup runs every task in its own goroutine with a context derived from
// parent. The channel yields each task result and is closed after the last one.
func RunGroup(parent context.Context, tasks ...GroupTask) (_ <-chan error, cancel func()) {

	var (
		wg    sync.WaitGroup
		ctx   context.Context
		chErr = make(chan error)
	)

	ctx, cancel = context.WithCancel(parent)

	for _, task := range tasks {
		wg.Add(1)
		go func(fn GroupTask) {
			defer wg.Done()
			chErr <- fn(ctx)
		}(task)
	}

	go func() {
		wg.Wait()
		close(chErr)
	}()

	return chErr, cancel
}
