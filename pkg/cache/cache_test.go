package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestGetPut(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.Get("k")
	assert.False(t, ok)

	c.Put("k", "v")
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
	assert.Equal(t, 1, c.Len())
}

func TestExpiry(t *testing.T) {
	clock := newFakeClock()
	c := New(30*time.Second, WithClock(clock.Now))

	c.Put("k", 1)
	clock.Advance(29 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok, "entry should live until the TTL")

	clock.Advance(time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok, "entry should expire at the TTL")
	assert.Equal(t, 0, c.Len())
}

func TestInvalidateAll(t *testing.T) {
	c := New(time.Minute)
	c.Put("a", 1)
	c.Put("b", 2)

	c.InvalidateAll()

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	assert.False(t, okA)
	assert.False(t, okB)
	assert.Equal(t, 0, c.Len())
}

func TestDefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, New(0).TTL())
	assert.Equal(t, time.Second, New(time.Second).TTL())
}

func TestTakeCachesWithinTTL(t *testing.T) {
	clock := newFakeClock()
	c := New(10*time.Second, WithClock(clock.Now))

	var calls int
	fetch := func() (any, error) {
		calls++
		return []string{"a.json"}, nil
	}

	v1, err := c.Take("list", fetch)
	require.NoError(t, err)
	v2, err := c.Take("list", fetch)
	require.NoError(t, err)

	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, calls)

	clock.Advance(10 * time.Second)
	_, err = c.Take("list", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestTakeDoesNotCacheErrors(t *testing.T) {
	c := New(time.Minute)
	boom := errors.New("store unreachable")

	var calls int
	_, err := c.Take("k", func() (any, error) {
		calls++
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	v, err := c.Take("k", func() (any, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestTakeAfterInvalidateRefetches(t *testing.T) {
	c := New(time.Minute)

	var calls int
	fetch := func() (any, error) {
		calls++
		return calls, nil
	}

	v, _ := c.Take("k", fetch)
	assert.Equal(t, 1, v)

	c.InvalidateAll()

	v, _ = c.Take("k", fetch)
	assert.Equal(t, 2, v)
}

func TestTakeDropsResultFetchedAcrossInvalidation(t *testing.T) {
	c := New(time.Minute)

	_, err := c.Take("k", func() (any, error) {
		c.InvalidateAll()
		return "stale", nil
	})
	require.NoError(t, err)

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestTakeCoalescesConcurrentMisses(t *testing.T) {
	c := New(time.Minute)

	var calls atomic.Int32
	release := make(chan struct{})
	fetch := func() (any, error) {
		calls.Add(1)
		<-release
		return "v", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Take("k", fetch)
			assert.NoError(t, err)
			assert.Equal(t, "v", v)
		}()
	}

	// Let the goroutines pile up on the in-flight fetch.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(8))
	_, ok := c.Get("k")
	assert.True(t, ok)
}

func TestTakeAfterInvalidateDoesNotJoinInFlightFetch(t *testing.T) {
	c := New(time.Minute)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan any)
	go func() {
		v, err := c.Take("k", func() (any, error) {
			close(started)
			<-release
			return "old", nil
		})
		assert.NoError(t, err)
		done <- v
	}()

	<-started
	c.InvalidateAll()

	var fresh atomic.Int32
	v, err := c.Take("k", func() (any, error) {
		fresh.Add(1)
		return "new", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "new", v)
	assert.Equal(t, int32(1), fresh.Load())

	close(release)
	assert.Equal(t, "old", <-done)

	cached, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", cached)
}
