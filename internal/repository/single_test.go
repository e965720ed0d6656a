package repository

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingle_Just(t *testing.T) {
	value, err := Just(42).Await(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestSingle_Fail(t *testing.T) {
	value, err := Fail[string](errors.New("disk full")).Await(context.Background())
	assert.EqualError(t, err, "disk full")
	assert.Empty(t, value)
}

func TestSingle_DeferIsLazy(t *testing.T) {
	var calls atomic.Int32
	single := Defer(func(context.Context) (int, error) {
		return int(calls.Add(1)), nil
	})

	assert.Equal(t, int32(0), calls.Load(), "nothing runs before subscription")

	first, err := single.Await(context.Background())
	require.NoError(t, err)
	second, err := single.Await(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second, "every subscription re-runs the computation")
}

func TestSingle_SubscribeEmitsOnceThenCloses(t *testing.T) {
	ch := Just("members").Subscribe(context.Background())

	res, ok := <-ch
	require.True(t, ok)
	assert.Equal(t, "members", res.Value)
	assert.NoError(t, res.Err)

	_, ok = <-ch
	assert.False(t, ok, "channel is closed after the single emission")
}

func TestSingle_AwaitCanceled(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	single := Defer(func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := single.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMap(t *testing.T) {
	lengths := Map(Just([]int{1, 2, 3}), func(v []int) int { return len(v) })
	n, err := lengths.Await(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	failed := Map(Fail[[]int](errors.New("boom")), func(v []int) int { return len(v) })
	_, err = failed.Await(context.Background())
	assert.EqualError(t, err, "boom")
}
