package install

import "context"

// Task is a background operation whose result the caller awaits.
type Task[T any] struct {
	done   chan struct{}
	result T
}

// Go runs fn on a new goroutine.
func Go[T any](fn func() T) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.result = fn()
	}()
	return t
}

// Done is closed when the operation finishes.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the operation finishes or ctx ends. An ended ctx only
// stops the wait; the operation keeps running to completion.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.result, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result blocks until the operation finishes and returns its result.
func (t *Task[T]) Result() T {
	<-t.done
	return t.result
}
