package lazy

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Lazy is a synchronous one-shot memo. It is safe for concurrent use; concurrent
// first calls are serialized so the producer runs at most once successfully.
//
// The producer must not call GetValue on its own Lazy: that call blocks forever.
type Lazy[T any] struct {
	factory  func() (T, error)
	mu       sync.Mutex
	realized atomic.Bool
	value    T
	span     timespan.TimeSpan
}

// NewLazy returns a memo around a producer that may fail.
func NewLazy[T any](factory func() (T, error)) *Lazy[T] {
	return &Lazy[T]{factory: factory}
}

// NewLazyValue returns a memo around a producer that cannot fail.
func NewLazyValue[T any](factory func() T) *Lazy[T] {
	return NewLazy(func() (T, error) {
		return factory(), nil
	})
}

// IsInitialized reports whether the value has been produced. It never runs the producer.
func (l *Lazy[T]) IsInitialized() bool {
	return l.realized.Load()
}

// GetValue returns the memoized value, running the producer on first use.
// A producer error is returned as is and leaves the memo uninitialized.
func (l *Lazy[T]) GetValue() (T, error) {
	if l.realized.Load() {
		return l.value, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.realized.Load() {
		return l.value, nil
	}

	start := time.Now()
	v, err := l.factory()
	if err != nil {
		Logger().Debug("lazy realization failed", zap.Error(err))
		var zero T
		return zero, err
	}

	l.value = v
	l.span = timespan.BetweenTimes(start, time.Now())
	l.realized.Store(true)
	Logger().Debug("lazy realized", zap.Duration("took", l.span.Duration()))

	return v, nil
}

// MustGetValue is the panic-on-failure variant of GetValue.
func (l *Lazy[T]) MustGetValue() T {
	v, err := l.GetValue()
	if err != nil {
		panic(err)
	}
	return v
}

// RealizationSpan returns when the successful producer call started and ended.
// ok is false until the memo is initialized.
func (l *Lazy[T]) RealizationSpan() (span timespan.TimeSpan, ok bool) {
	if !l.realized.Load() {
		return span, false
	}
	return l.span, true
}
