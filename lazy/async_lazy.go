package lazy

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/on-the-ground/lazy_ive_go/shared/future"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrProducerPanic wraps a panic recovered from an asynchronous producer.
var ErrProducerPanic = errors.New("lazy producer panicked")

// flightKey is the only key of an AsyncLazy's flight group: one memo, one computation.
const flightKey = "value"

// AsyncLazy is an asynchronous one-shot memo. It is safe for concurrent use.
//
// Every GetValueAsync call made while a realization is in flight joins that
// realization instead of starting a new one.
type AsyncLazy[T any] struct {
	factory  func(context.Context) *future.Future[T]
	flight   singleflight.Group
	realized atomic.Bool
	value    T
	span     timespan.TimeSpan
}

// NewAsyncLazy returns a memo around a producer that blocks until its value is ready.
func NewAsyncLazy[T any](factory func(context.Context) (T, error)) *AsyncLazy[T] {
	return NewAsyncLazyFromFuture(func(ctx context.Context) *future.Future[T] {
		return future.Settled(factory(ctx))
	})
}

// NewAsyncLazyFromFuture returns a memo around a producer that hands back a pending value.
func NewAsyncLazyFromFuture[T any](factory func(context.Context) *future.Future[T]) *AsyncLazy[T] {
	return &AsyncLazy[T]{factory: factory}
}

// IsInitialized reports whether the value has been produced. It never runs the producer.
func (l *AsyncLazy[T]) IsInitialized() bool {
	return l.realized.Load()
}

// GetValueAsync returns a future of the memoized value, starting the producer if no
// realization is in flight.
//
// ctx bounds only this caller's wait. The producer receives a context that keeps
// ctx's values but is never cancelled, and it always runs to completion.
func (l *AsyncLazy[T]) GetValueAsync(ctx context.Context) *future.Future[T] {
	if l.realized.Load() {
		return future.Resolved(l.value)
	}

	flightCh := l.flight.DoChan(flightKey, func() (any, error) {
		return l.realize(context.WithoutCancel(ctx))
	})

	return future.Go(ctx, func(ctx context.Context) (T, error) {
		var zero T
		select {
		case res := <-flightCh:
			if res.Err != nil {
				return zero, res.Err
			}
			v, _ := res.Val.(T)
			return v, nil
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	})
}

func (l *AsyncLazy[T]) realize(ctx context.Context) (val any, err error) {
	// a flight that starts right after a successful one finds the value already set
	if l.realized.Load() {
		return l.value, nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrProducerPanic, r)
			Logger().Debug("async lazy producer panicked", zap.Any("panic", r))
		}
	}()

	start := time.Now()
	v, err := l.factory(ctx).Await(ctx)
	if err != nil {
		Logger().Debug("async lazy realization failed", zap.Error(err))
		return nil, err
	}

	l.value = v
	l.span = timespan.BetweenTimes(start, time.Now())
	l.realized.Store(true)
	Logger().Debug("async lazy realized", zap.Duration("took", l.span.Duration()))

	return v, nil
}

// RealizationSpan returns when the successful producer call started and ended.
// ok is false until the memo is initialized.
func (l *AsyncLazy[T]) RealizationSpan() (span timespan.TimeSpan, ok bool) {
	if !l.realized.Load() {
		return span, false
	}
	return l.span, true
}
