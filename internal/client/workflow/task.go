package workflow

import (
	"context"
	"sync"
)

// Task is a deferred workflow. It runs on the calling goroutine and returns
// when its last step has settled.
type Task func(ctx context.Context, d Dispatcher) error

// Run executes t synchronously.
func Run(ctx context.Context, d Dispatcher, t Task) error {
	return t(ctx, d)
}

// Future is the handle of a Task started with Go.
type Future struct {
	done chan struct{}
	once sync.Once
	err  error
}

// Go starts t on its own goroutine. Several tasks may run at once; the store
// serializes their dispatches and nothing else is coordinated between them.
func Go(ctx context.Context, d Dispatcher, t Task) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		err := t(ctx, d)
		f.once.Do(func() {
			f.err = err
			close(f.done)
		})
	}()
	return f
}

// Done is closed once the task has finished.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the task finishes or ctx is done. Giving up on the wait
// does not stop the task.
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
