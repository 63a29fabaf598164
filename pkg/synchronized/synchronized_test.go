package synchronized_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/commons/pkg/exception"
	"github.com/dmitrymomot/commons/pkg/synchronized"
)

func TestDo(t *testing.T) {
	t.Parallel()

	t.Run("runs under lock", func(t *testing.T) {
		t.Parallel()
		var mu synchronized.Mutex
		err := synchronized.Do(&mu, func() error {
			assert.True(t, mu.HeldByCurrent())
			return nil
		})
		require.NoError(t, err)
		assert.False(t, mu.HeldByCurrent())
	})

	t.Run("releases on error", func(t *testing.T) {
		t.Parallel()
		var mu synchronized.Mutex
		errBoom := errors.New("boom")
		err := synchronized.Do(&mu, func() error { return errBoom })
		assert.ErrorIs(t, err, errBoom)
		assert.False(t, mu.HeldByCurrent())
		assert.True(t, mu.TryLock())
		mu.Unlock()
	})

	t.Run("releases on panic", func(t *testing.T) {
		t.Parallel()
		var mu sync.Mutex
		assert.Panics(t, func() {
			_ = synchronized.Do(&mu, func() error { panic("boom") })
		})
		assert.True(t, mu.TryLock())
		mu.Unlock()
	})

	t.Run("nested on reentrant mutex", func(t *testing.T) {
		t.Parallel()
		var mu synchronized.Mutex
		calls := 0
		err := synchronized.Do(&mu, func() error {
			calls++
			return synchronized.Do(&mu, func() error {
				calls++
				return nil
			})
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("nil arguments", func(t *testing.T) {
		t.Parallel()
		err := synchronized.Do(nil, func() error { return nil })
		assert.ErrorIs(t, err, synchronized.ErrNilLocker)
		assert.True(t, exception.IsIllegalArgument(err))

		err = synchronized.Do(&sync.Mutex{}, nil)
		assert.ErrorIs(t, err, synchronized.ErrNilFunc)
	})
}

func TestCall(t *testing.T) {
	t.Parallel()

	var mu synchronized.Mutex
	got := synchronized.Call(&mu, func() int {
		return synchronized.Call(&mu, func() int { return 21 }) * 2
	})
	assert.Equal(t, 42, got)
	assert.False(t, mu.HeldByCurrent())

	assert.PanicsWithValue(t, synchronized.ErrNilLocker, func() {
		synchronized.Call(nil, func() int { return 1 })
	})
}

func TestCallErr(t *testing.T) {
	t.Parallel()

	var mu synchronized.Mutex
	v, err := synchronized.CallErr(&mu, func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	errBoom := errors.New("boom")
	v, err = synchronized.CallErr(&mu, func() (string, error) { return "partial", errBoom })
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, "partial", v)
	assert.False(t, mu.HeldByCurrent())

	_, err = synchronized.CallErr[string](nil, nil)
	assert.ErrorIs(t, err, synchronized.ErrNilLocker)
}
