// Package future provides a settle-once pending result.
package future

import (
	"context"
	"errors"
	"sync"
)

var ErrNilFuture = errors.New("future: nil future")

// Result represents the outcome of an asynchronous computation.
type Result[T any] struct {
	Value T
	Err   error
}

func ResultFrom[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Err: err}
}

// Pending is satisfied by every Future regardless of its type parameter.
type Pending interface {
	AwaitAny(ctx context.Context) (any, error)
}

var _ Pending = (*Future[any])(nil)

// Future is a result that becomes available once. It is safe for concurrent use.
type Future[T any] struct {
	done   chan struct{}
	once   sync.Once
	result Result[T]
}

// New returns an unsettled future and the function that settles it.
// Only the first call to settle has an effect.
func New[T any]() (*Future[T], func(T, error)) {
	f := &Future[T]{done: make(chan struct{})}
	return f, f.settle
}

// Go runs fn on its own goroutine and settles the future with its outcome.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f, settle := New[T]()
	go func() {
		settle(fn(ctx))
	}()
	return f
}

// Settled returns a future already holding (v, err).
func Settled[T any](v T, err error) *Future[T] {
	f, settle := New[T]()
	settle(v, err)
	return f
}

func Resolved[T any](v T) *Future[T] {
	return Settled(v, nil)
}

func Rejected[T any](err error) *Future[T] {
	var zero T
	return Settled(zero, err)
}

// Then chains fn onto f. fn runs only if f resolves without error.
func Then[T, R any](ctx context.Context, f *Future[T], fn func(context.Context, T) (R, error)) *Future[R] {
	return Go(ctx, func(ctx context.Context) (R, error) {
		v, err := f.Await(ctx)
		if err != nil {
			var zero R
			return zero, err
		}
		return fn(ctx, v)
	})
}

func (f *Future[T]) settle(v T, err error) {
	f.once.Do(func() {
		f.result = ResultFrom(v, err)
		close(f.done)
	})
}

// Done is closed once the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Peek returns the result without blocking; ok is false while the future is unsettled.
func (f *Future[T]) Peek() (res Result[T], ok bool) {
	select {
	case <-f.done:
		return f.result, true
	default:
		return res, false
	}
}

// Await blocks until the future settles or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	var zero T
	if f == nil {
		return zero, ErrNilFuture
	}
	select {
	case <-f.done:
		return f.result.Value, f.result.Err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (f *Future[T]) AwaitAny(ctx context.Context) (any, error) {
	return f.Await(ctx)
}

// Flatten awaits v when it is itself pending and returns it unchanged otherwise.
func Flatten(ctx context.Context, v any) (any, error) {
	if p, ok := v.(Pending); ok {
		return p.AwaitAny(ctx)
	}
	return v, nil
}
