package lazy_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/on-the-ground/lazy_ive_go/lazy"
	"github.com/on-the-ground/lazy_ive_go/shared/future"
	"github.com/on-the-ground/lazy_ive_go/shared/zaplog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestAsyncLazy_ReturnsOriginalValue(t *testing.T) {
	endOfLog := lazy.SetLogger(zaplog.NewTest())
	defer endOfLog()

	ctx := context.Background()
	original := &payload{n: 1}
	l := lazy.NewAsyncLazy(func(ctx context.Context) (*payload, error) {
		return original, nil
	})

	for i := 0; i < 10; i++ {
		v, err := l.GetValueAsync(ctx).Await(ctx)
		require.NoError(t, err)
		assert.Same(t, original, v)
	}
}

func TestAsyncLazy_NotInitializedBeforeFirstAccess(t *testing.T) {
	l := lazy.NewAsyncLazy(func(ctx context.Context) (*payload, error) {
		return &payload{}, nil
	})

	assert.False(t, l.IsInitialized())
}

func TestAsyncLazy_InitializedOnlyOnce(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32
	l := lazy.NewAsyncLazyFromFuture(func(ctx context.Context) *future.Future[*payload] {
		calls.Add(1)
		return future.Go(ctx, func(ctx context.Context) (*payload, error) {
			time.Sleep(10 * time.Millisecond)
			return &payload{}, nil
		})
	})

	for i := 0; i < 10; i++ {
		_, err := l.GetValueAsync(ctx).Await(ctx)
		require.NoError(t, err)
	}

	assert.True(t, l.IsInitialized())
	assert.EqualValues(t, 1, calls.Load())
	_, ok := l.RealizationSpan()
	assert.True(t, ok)
}

func TestAsyncLazy_ConcurrentCallersShareOneComputation(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32
	release := make(chan struct{})
	l := lazy.NewAsyncLazy(func(ctx context.Context) (*payload, error) {
		calls.Add(1)
		<-release
		return &payload{n: 3}, nil
	})

	pending := make([]*future.Future[*payload], 8)
	for i := range pending {
		pending[i] = l.GetValueAsync(ctx)
	}
	close(release)

	results := make([]*payload, len(pending))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range pending {
		g.Go(func() error {
			v, err := f.Await(gctx)
			results[i] = v
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.EqualValues(t, 1, calls.Load())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestAsyncLazy_RejectionIsSharedAndRetried(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	var calls atomic.Int32
	release := make(chan struct{})
	l := lazy.NewAsyncLazy(func(ctx context.Context) (int, error) {
		if calls.Add(1) == 1 {
			<-release
			return 0, boom
		}
		return 42, nil
	})

	first := l.GetValueAsync(ctx)
	second := l.GetValueAsync(ctx)
	close(release)

	_, err := first.Await(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = second.Await(ctx)
	assert.ErrorIs(t, err, boom)
	assert.False(t, l.IsInitialized())

	v, err := l.GetValueAsync(ctx).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.EqualValues(t, 2, calls.Load())
}

func TestAsyncLazy_WaiterCancellationDoesNotCancelProducer(t *testing.T) {
	release := make(chan struct{})
	var producerCancelled atomic.Bool
	l := lazy.NewAsyncLazy(func(ctx context.Context) (string, error) {
		<-release
		producerCancelled.Store(ctx.Err() != nil)
		return "done", nil
	})

	waitCtx, cancel := context.WithCancel(context.Background())
	f := l.GetValueAsync(waitCtx)
	cancel()

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	ctx := context.Background()
	v, err := l.GetValueAsync(ctx).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "done", v)
	assert.False(t, producerCancelled.Load())
}

func TestAsyncLazy_ProducerPanicBecomesError(t *testing.T) {
	ctx := context.Background()
	l := lazy.NewAsyncLazy(func(ctx context.Context) (int, error) {
		panic("kaboom")
	})

	_, err := l.GetValueAsync(ctx).Await(ctx)
	assert.ErrorIs(t, err, lazy.ErrProducerPanic)
	assert.False(t, l.IsInitialized())
}
