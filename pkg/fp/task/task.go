package task

import (
	"context"
	"fmt"
	"time"
)

// Task is a computation that has not started yet. Calling it starts the work.
type Task[T any] func() *Future[T]

// Await starts t and waits for its outcome.
func (t Task[T]) Await(ctx context.Context) (T, error) {
	return t().Await(ctx)
}

// Of returns a Task that resolves to v.
func Of[T any](v T) Task[T] {
	return func() *Future[T] {
		return Resolved(v)
	}
}

// Reject returns a Task that fails with err, or with ErrRejected when err is nil.
func Reject[T any](err error) Task[T] {
	return func() *Future[T] {
		return Rejected[T](err)
	}
}

// FromFunc returns a Task running fn on its own goroutine at each call.
func FromFunc[T any](fn func() (T, error)) Task[T] {
	return func() *Future[T] {
		return Go(fn)
	}
}

// Delay returns a Task resolving to v once d has elapsed. The timer is
// armed when the Task is called.
func Delay[T any](d time.Duration, v T) Task[T] {
	return func() *Future[T] {
		f := newFuture[T]()
		time.AfterFunc(d, func() {
			f.settle(v, nil)
		})
		return f
	}
}

// Map returns a Task that runs input and applies onSuccess to its value.
func Map[T, U any](input Task[T], onSuccess func(T) U) Task[U] {
	return func() *Future[U] {
		started := start(input)
		return Go(func() (U, error) {
			v, err := started.wait()
			if err != nil {
				var zero U
				return zero, err
			}
			return onSuccess(v), nil
		})
	}
}

// Chain returns a Task that runs input, then runs the Task onSuccess builds
// from its value, and resolves to the second outcome.
func Chain[T, U any](input Task[T], onSuccess func(T) Task[U]) Task[U] {
	return func() *Future[U] {
		started := start(input)
		return Go(func() (U, error) {
			v, err := started.wait()
			if err != nil {
				var zero U
				return zero, err
			}
			return start(onSuccess(v)).wait()
		})
	}
}

// start calls t, turning a panic raised while starting into a rejected Future.
func start[T any](t Task[T]) (f *Future[T]) {
	defer func() {
		if r := recover(); r != nil {
			f = Rejected[T](fmt.Errorf("%w: %v", ErrPanicked, r))
		}
	}()
	return t()
}

func MapF[T, U any](onSuccess func(T) U) func(Task[T]) Task[U] {
	return func(input Task[T]) Task[U] {
		return Map(input, onSuccess)
	}
}

func ChainF[T, U any](onSuccess func(T) Task[U]) func(Task[T]) Task[U] {
	return func(input Task[T]) Task[U] {
		return Chain(input, onSuccess)
	}
}

// Sequence runs tasks one after another and collects their values in order.
// The first failure stops the sequence.
func Sequence[T any](tasks ...Task[T]) Task[[]T] {
	return func() *Future[[]T] {
		return Go(func() ([]T, error) {
			out := make([]T, 0, len(tasks))
			for i, t := range tasks {
				v, err := t().wait()
				if err != nil {
					return nil, fmt.Errorf("task %d: %w", i, err)
				}
				out = append(out, v)
			}
			return out, nil
		})
	}
}
