package cache

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestLoaderGetHitsCacheWithoutCallingLoader(t *testing.T) {
	c, err := NewClockCache[string, int](4)
	if err != nil {
		t.Fatalf("NewClockCache: %v", err)
	}
	c.Insert("a", 1)

	var calls int32
	loader := NewLoader[string, int](c, func(ctx context.Context, key string) (int, error) {
		atomic.AddInt32(&calls, 1)
		return 0, nil
	})

	v, err := loader.Get(context.Background(), "a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != 1 {
		t.Fatalf("Get(a) = %d; want 1", v)
	}
	if calls != 0 {
		t.Fatalf("loader called %d times on a hit; want 0", calls)
	}
}

func TestLoaderGetLoadsAndCachesOnMiss(t *testing.T) {
	c, err := NewClockCache[string, int](4)
	if err != nil {
		t.Fatalf("NewClockCache: %v", err)
	}
	var calls int32
	loader := NewLoader[string, int](c, func(ctx context.Context, key string) (int, error) {
		atomic.AddInt32(&calls, 1)
		return 99, nil
	})

	v, err := loader.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != 99 {
		t.Fatalf("Get(missing) = %d; want 99", v)
	}
	if got, ok := c.Find("missing"); !ok || got != 99 {
		t.Fatalf("value not stored after load: %v, %v", got, ok)
	}
	if calls != 1 {
		t.Fatalf("loader called %d times; want 1", calls)
	}
}

func TestLoaderGetPropagatesError(t *testing.T) {
	c, err := NewClockCache[string, int](4)
	if err != nil {
		t.Fatalf("NewClockCache: %v", err)
	}
	wantErr := errors.New("boom")
	loader := NewLoader[string, int](c, func(ctx context.Context, key string) (int, error) {
		return 0, wantErr
	})

	if _, err := loader.Get(context.Background(), "x"); !errors.Is(err, wantErr) {
		t.Fatalf("Get error = %v; want %v", err, wantErr)
	}
	if _, ok := c.Find("x"); ok {
		t.Fatalf("a failed load must not populate the cache")
	}
}

// TestLoaderGetDeduplicatesConcurrentMisses drives many goroutines through a
// simultaneous miss on the same key and verifies the loader function runs
// exactly once and every goroutine observes its result.
func TestLoaderGetDeduplicatesConcurrentMisses(t *testing.T) {
	c, err := NewClockCache[string, int](4)
	if err != nil {
		t.Fatalf("NewClockCache: %v", err)
	}
	var calls int32
	var arrived int32
	release := make(chan struct{})
	loader := NewLoader[string, int](c, func(ctx context.Context, key string) (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 7, nil
	})

	const goroutines = 20
	var wg sync.WaitGroup
	wg.Add(goroutines)
	results := make([]int, goroutines)
	errs := make([]error, goroutines)
	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()
			atomic.AddInt32(&arrived, 1)
			results[idx], errs[idx] = loader.Get(context.Background(), "shared")
		}(i)
	}
	for atomic.LoadInt32(&arrived) < goroutines {
		runtime.Gosched()
	}
	close(release)
	wg.Wait()

	if calls != 1 {
		t.Fatalf("loader called %d times for a concurrent single-key miss; want 1", calls)
	}
	for i := range results {
		if errs[i] != nil || results[i] != 7 {
			t.Fatalf("goroutine %d: got %d, %v; want 7, nil", i, results[i], errs[i])
		}
	}
}
