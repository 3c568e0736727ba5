package contract

import "context"

// future runs a single request in its own goroutine and publishes the result
// by closing done. The goroutine never blocks on delivery, so abandoning a
// future leaks nothing once its context is cancelled.
type future[T any] struct {
	done   chan struct{}
	cancel context.CancelFunc
	value  T
	err    error
}

func spawn[T any](ctx context.Context, fn func(context.Context) (T, error)) *future[T] {
	ctx, cancel := context.WithCancel(ctx)
	f := &future[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}
	go func() {
		defer cancel()
		f.value, f.err = fn(ctx)
		close(f.done)
	}()
	return f
}

// ready reports whether the result is available without blocking.
func (f *future[T]) ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// wait blocks until the result is available or ctx ends.
func (f *future[T]) wait(ctx context.Context) (bool, error) {
	if f.ready() {
		return true, nil
	}
	select {
	case <-f.done:
		return true, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// result must only be called after done is closed.
func (f *future[T]) result() (T, error) {
	return f.value, f.err
}
