package future_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/on-the-ground/lazy_ive_go/shared/future"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuture_Go(t *testing.T) {
	f := future.Go(context.Background(), func(ctx context.Context) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return "ok", nil
	})

	_, ok := f.Peek()
	assert.False(t, ok)

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	res, ok := f.Peek()
	require.True(t, ok)
	assert.Equal(t, "ok", res.Value)
}

func TestFuture_SettleOnce(t *testing.T) {
	f, settle := future.New[int]()
	settle(1, nil)
	settle(2, errors.New("ignored"))

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestFuture_AwaitCancelled(t *testing.T) {
	f, _ := future.New[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFuture_ThenAndFlatten(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	doubled := future.Then(ctx, future.Resolved(21), func(_ context.Context, v int) (int, error) {
		return v * 2, nil
	})
	v, err := doubled.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	skipped := future.Then(ctx, future.Rejected[int](boom), func(_ context.Context, v int) (int, error) {
		t.Fatal("must not run")
		return 0, nil
	})
	_, err = skipped.Await(ctx)
	assert.ErrorIs(t, err, boom)

	flat, err := future.Flatten(ctx, future.Resolved("inner"))
	require.NoError(t, err)
	assert.Equal(t, "inner", flat)

	plain, err := future.Flatten(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, plain)

	var nilFuture *future.Future[int]
	_, err = nilFuture.Await(ctx)
	assert.ErrorIs(t, err, future.ErrNilFuture)
}
