package synchronized_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/commons/pkg/synchronized"
)

func TestMutex_Reentrant(t *testing.T) {
	t.Parallel()

	var mu synchronized.Mutex

	mu.Lock()
	mu.Lock()
	assert.True(t, mu.HeldByCurrent())
	mu.Unlock()
	assert.True(t, mu.HeldByCurrent(), "outer hold must survive inner unlock")
	mu.Unlock()
	assert.False(t, mu.HeldByCurrent())
}

func TestMutex_TryLock(t *testing.T) {
	t.Parallel()

	var mu synchronized.Mutex
	require.True(t, mu.TryLock())
	assert.True(t, mu.TryLock(), "holder may acquire again")

	acquired := make(chan bool)
	go func() {
		acquired <- mu.TryLock()
	}()
	assert.False(t, <-acquired)

	mu.Unlock()
	mu.Unlock()

	go func() {
		ok := mu.TryLock()
		if ok {
			mu.Unlock()
		}
		acquired <- ok
	}()
	assert.True(t, <-acquired)
}

func TestMutex_UnlockByNonOwnerPanics(t *testing.T) {
	t.Parallel()

	var mu synchronized.Mutex
	assert.PanicsWithValue(t, synchronized.ErrNotOwner, mu.Unlock)

	mu.Lock()
	defer mu.Unlock()

	recovered := make(chan any)
	go func() {
		defer func() { recovered <- recover() }()
		mu.Unlock()
	}()
	assert.Equal(t, synchronized.ErrNotOwner, <-recovered)
	assert.True(t, mu.HeldByCurrent())
}

func TestMutex_MutualExclusion(t *testing.T) {
	t.Parallel()

	var (
		mu      synchronized.Mutex
		wg      sync.WaitGroup
		counter int
	)

	const workers = 100
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			defer mu.Unlock()
			mu.Lock()
			counter++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestMutex_BlocksOtherGoroutines(t *testing.T) {
	t.Parallel()

	var mu synchronized.Mutex
	mu.Lock()

	locked := make(chan struct{})
	go func() {
		mu.Lock()
		close(locked)
		mu.Unlock()
	}()

	select {
	case <-locked:
		t.Fatal("second goroutine acquired a held mutex")
	case <-time.After(50 * time.Millisecond):
	}

	mu.Unlock()

	select {
	case <-locked:
	case <-time.After(time.Second):
		t.Fatal("mutex was not released")
	}
}
