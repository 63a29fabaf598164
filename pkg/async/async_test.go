package async_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/commons/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	futureString := async.Async(ctx, 42, func(_ context.Context, num int) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return fmt.Sprintf("Number: %d", num), nil
	})

	type pair struct{ A, B int }
	futureInt := async.Async(ctx, pair{A: 10, B: 32}, func(_ context.Context, p pair) (int, error) {
		return p.A + p.B, nil
	})

	s, err := futureString.Await()
	require.NoError(t, err)
	assert.Equal(t, "Number: 42", s)

	n, err := futureInt.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestAsync_ContextCancellation(t *testing.T) {
	t.Parallel()

	t.Run("cancelled while running", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		future := async.Async(ctx, 42, func(ctx context.Context, num int) (string, error) {
			select {
			case <-time.After(time.Second):
				return fmt.Sprint(num), nil
			case <-ctx.Done():
				return "", ctx.Err()
			}
		})

		result, err := future.Await()
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Empty(t, result)
	})

	t.Run("cancelled before start", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		future := async.Async(ctx, 1, func(context.Context, int) (int, error) {
			called = true
			return 1, nil
		})

		_, err := future.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
		assert.Equal(t, async.Failed, future.State())
	})
}

func TestAsync_ErrorPropagation(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("an error occurred in the async function")
	future := async.Async(context.Background(), 42, func(context.Context, int) (int, error) {
		return 7, expectedErr
	})

	result, err := future.Await()
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 7, result)
}

func TestAsync_ConcurrentIncrement(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var mu sync.Mutex
	counter := 0

	futures := make([]*async.Future[int], 0, 1000)
	for range 1000 {
		futures = append(futures, async.Async(ctx, 1, func(_ context.Context, delta int) (int, error) {
			mu.Lock()
			defer mu.Unlock()
			counter += delta
			return counter, nil
		}))
	}

	results, err := async.WaitAll(futures...)
	require.NoError(t, err)
	assert.Equal(t, 1000, counter)
	for _, r := range results {
		assert.GreaterOrEqual(t, r, 1)
		assert.LessOrEqual(t, r, 1000)
	}
}

func TestFuture_IsComplete(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	future := async.Async(context.Background(), 0, func(context.Context, int) (bool, error) {
		<-release
		return true, nil
	})

	assert.False(t, future.IsComplete())
	assert.Equal(t, async.Pending, future.State())

	close(release)
	_, err := future.Await()
	require.NoError(t, err)

	assert.True(t, future.IsComplete())
	assert.Equal(t, async.Succeeded, future.State())
}

func TestFuture_AwaitWithTimeout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fast := async.Async(ctx, 0, func(context.Context, int) (string, error) {
		return "success", nil
	})
	result, err := fast.AwaitWithTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, "success", result)

	slow := async.Async(ctx, 0, func(context.Context, int) (string, error) {
		time.Sleep(200 * time.Millisecond)
		return "too late", nil
	})
	result, err = slow.AwaitWithTimeout(20 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)
	assert.Empty(t, result)
}

func TestWaitAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sleepy := func(_ context.Context, ms int) (int, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return ms, nil
	}

	results, err := async.WaitAll(
		async.Async(ctx, 30, sleepy),
		async.Async(ctx, 10, sleepy),
		async.Async(ctx, 20, sleepy),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{30, 10, 20}, results, "results keep argument order")

	errBoom := errors.New("boom")
	_, err = async.WaitAll(
		async.Completed(1, nil),
		async.Completed(0, errBoom),
	)
	assert.ErrorIs(t, err, errBoom)
}

func TestWaitAny(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sleepy := func(_ context.Context, ms int) (string, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return fmt.Sprintf("%dms", ms), nil
	}

	index, result, err := async.WaitAny(
		async.Async(ctx, 300, sleepy),
		async.Async(ctx, 10, sleepy),
		async.Async(ctx, 200, sleepy),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	assert.Equal(t, "10ms", result)

	_, _, err = async.WaitAny[string]()
	assert.ErrorIs(t, err, async.ErrNoFutures)
}
