package cache

// loader.go implements Loader, a singleflight-backed GetOrLoad wrapper
// usable over any of this package's four cache shapes. The goal is to
// collapse a thundering herd when many goroutines miss the same key at
// once: only one of them actually runs the LoaderFunc, and every other
// waiter receives its result. x/sync/singleflight needs a string dedupe
// key, so keys are rendered with fmt.Sprintf("%v", key) — reflection-based
// and off the hot Find/Insert path by construction, so the cost only
// applies on the miss path a loader was going to pay for anyway.
//
// © 2025 arena-cache authors. MIT License.

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"
)

// findInserter is the minimal surface every cache engine and sharded
// wrapper in this package exposes, letting Loader wrap any of them
// uniformly.
type findInserter[K comparable, V any] interface {
	Find(key K) (V, bool)
	Insert(key K, value V) bool
}

// Loader wraps a cache engine with singleflight-deduplicated loading on
// miss.
type Loader[K comparable, V any] struct {
	cache findInserter[K, V]
	group singleflight.Group
	fn    LoaderFunc[K, V]
}

// NewLoader returns a Loader that serves misses on cache via fn.
func NewLoader[K comparable, V any](c findInserter[K, V], fn LoaderFunc[K, V]) *Loader[K, V] {
	return &Loader[K, V]{cache: c, fn: fn}
}

// Get returns the cached value for key, loading and storing it via the
// configured LoaderFunc on a miss. Concurrent Get calls for the same
// missing key share a single LoaderFunc invocation; every waiter observes
// the same value and error.
func (l *Loader[K, V]) Get(ctx context.Context, key K) (V, error) {
	if v, ok := l.cache.Find(key); ok {
		return v, nil
	}

	dedupeKey := fmt.Sprintf("%v", key)
	res, err, _ := l.group.Do(dedupeKey, func() (any, error) {
		if v, ok := l.cache.Find(key); ok {
			return v, nil
		}
		v, err := l.fn(ctx, key)
		if err != nil {
			return v, err
		}
		l.cache.Insert(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}
