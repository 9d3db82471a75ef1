package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/fpkata/pkg/fp/either"
)

var (
	ErrPanicked = errors.New("task panicked")
	ErrRejected = errors.New("task rejected")
)

// Future is the settled-once outcome of a started Task.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Go runs fn on a new goroutine and returns its Future. A panic in fn rejects
// the Future with an error wrapping ErrPanicked.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := newFuture[T]()

	go func() {
		var (
			v   T
			err error
		)
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrPanicked, r)
			}
			f.settle(v, err)
		}()

		v, err = fn()
	}()

	return f
}

// Resolved returns an already settled Future holding v.
func Resolved[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.settle(v, nil)
	return f
}

// Rejected returns an already settled Future holding err. A nil err is
// replaced by ErrRejected so the Future still fails.
func Rejected[T any](err error) *Future[T] {
	if err == nil {
		err = ErrRejected
	}
	f := newFuture[T]()
	var zero T
	f.settle(zero, err)
	return f
}

func (f *Future[T]) settle(v T, err error) {
	f.value = v
	f.err = err
	close(f.done)
}

// Done is closed once the Future is settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the Future settles or ctx is done. Giving up on ctx does
// not stop the underlying work.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result blocks until the Future settles and returns the outcome as an Either.
func (f *Future[T]) Result() either.Either[error, T] {
	v, err := f.wait()
	return either.FromResult(v, err)
}

func (f *Future[T]) wait() (T, error) {
	<-f.done
	return f.value, f.err
}
