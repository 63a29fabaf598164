package executor_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/commons/pkg/async"
	"github.com/dmitrymomot/commons/pkg/exception"
	"github.com/dmitrymomot/commons/pkg/executor"
	"github.com/dmitrymomot/commons/pkg/logger"
)

func TestDirect(t *testing.T) {
	t.Parallel()

	assert.Same(t, executor.Direct(), executor.Direct(), "direct executor is a singleton")

	ran := false
	require.NoError(t, executor.Direct().Execute(func() { ran = true }))
	assert.True(t, ran, "task runs before Execute returns")

	err := executor.Direct().Execute(nil)
	assert.ErrorIs(t, err, executor.ErrNilTask)
	assert.True(t, exception.IsIllegalArgument(err))
}

func TestSubmit_Direct(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("result", func(t *testing.T) {
		t.Parallel()
		f := executor.Submit(executor.Direct(), ctx, func(context.Context) (int, error) {
			return 42, nil
		})
		require.True(t, f.IsComplete())
		v, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()
		errBoom := errors.New("boom")
		f := executor.Submit(executor.Direct(), ctx, func(context.Context) (int, error) {
			return 0, errBoom
		})
		_, err := f.Await()
		assert.ErrorIs(t, err, errBoom)
		assert.Equal(t, async.Failed, f.State())
	})

	t.Run("panic", func(t *testing.T) {
		t.Parallel()
		f := executor.Submit(executor.Direct(), ctx, func(context.Context) (int, error) {
			panic("kaboom")
		})
		_, err := f.Await()
		assert.ErrorIs(t, err, executor.ErrTaskPanicked)
		assert.Contains(t, err.Error(), "kaboom")
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		called := false
		f := executor.Submit(executor.Direct(), cctx, func(context.Context) (int, error) {
			called = true
			return 1, nil
		})
		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	t.Run("nil function", func(t *testing.T) {
		t.Parallel()
		_, err := executor.Submit[int](executor.Direct(), ctx, nil).Await()
		assert.ErrorIs(t, err, executor.ErrNilTask)
	})
}

func TestFuture_ListenerOnDirect(t *testing.T) {
	t.Parallel()

	f, r := async.NewFuture[string]()
	var got string
	f.AddListener(func() {
		got, _ = f.Await()
	}, executor.Direct())

	r.Resolve("done")
	assert.Equal(t, "done", got)
}

func TestInvokeAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	pool, err := executor.NewFixedPool(2)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Shutdown(context.Background()) })

	square := func(v int) func(context.Context) (int, error) {
		return func(context.Context) (int, error) { return v * v, nil }
	}

	results, err := executor.InvokeAll(ctx, pool, square(1), square(2), square(3), square(4))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 9, 16}, results)

	errBoom := errors.New("boom")
	_, err = executor.InvokeAll(ctx, pool,
		square(1),
		func(context.Context) (int, error) { return 0, errBoom },
		func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		},
	)
	assert.ErrorIs(t, err, errBoom)
}

func TestInvokeAll_DirectCancelsSiblings(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	done := make(chan error, 1)
	go func() {
		_, err := executor.InvokeAll(context.Background(), executor.Direct(),
			func(ctx context.Context) (int, error) {
				<-ctx.Done()
				return 0, ctx.Err()
			},
			func(context.Context) (int, error) { return 0, errBoom },
		)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, errBoom)
	case <-time.After(time.Second):
		t.Fatal("InvokeAll on the direct executor did not return")
	}
}

func TestSubmit_TagsContext(t *testing.T) {
	t.Parallel()

	pool, err := executor.NewFixedPool(1, executor.WithName("indexer"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Shutdown(context.Background()) })

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))

	_, err = executor.Submit(pool, context.Background(), func(ctx context.Context) (struct{}, error) {
		log.InfoContext(ctx, "indexing")
		return struct{}{}, nil
	}).AwaitWithTimeout(time.Second)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "indexer", entry["executor"])
	assert.NotEmpty(t, entry["task_id"])

	buf.Reset()
	_, err = executor.Submit(executor.Direct(), context.Background(), func(ctx context.Context) (int, error) {
		log.InfoContext(ctx, "inline")
		return 0, nil
	}).Await()
	require.NoError(t, err)

	entry = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "executor", "direct executor has no name")
	assert.NotEmpty(t, entry["task_id"])
}
