// Package registry implements the one-shot, process-wide singleton
// machinery behind the cache's singleton registry component. It is
// grounded on original_source/src/lrucache_singleton.cc, which records
// init() parameters behind a std::call_once flag and constructs the shared
// instance behind a function-local static (itself one-shot-initialized by
// the C++ runtime). The two sync.Once fields here play exactly those two
// roles.
package registry

import "sync"

// Registry provides lazy, one-shot-initialized, process-wide access to a
// single instance of T. Construct one with New and store the result in a
// package-level variable: a package-level var, not a per-call local, is
// what makes every caller in the process observe the same instance
// regardless of how many independently loaded call sites reach Init or Get
// first — the invariant the original plugin-loading deployment depends on.
type Registry[T any] struct {
	initOnce  sync.Once
	buildOnce sync.Once

	capacity   int
	shardCount int
	instance   T
	build      func(capacity, shardCount int) T
}

// New returns a Registry that lazily builds its instance with build, using
// whatever capacity/shardCount Init recorded before the first Get, or the
// supplied defaults if Init is never called.
func New[T any](defaultCapacity, defaultShardCount int, build func(capacity, shardCount int) T) *Registry[T] {
	return &Registry[T]{
		capacity:   defaultCapacity,
		shardCount: defaultShardCount,
		build:      build,
	}
}

// Init records capacity and shardCount the first time it is called,
// process-wide; every later call is silently ignored. First call wins,
// regardless of which independently loaded caller makes it.
func (r *Registry[T]) Init(capacity, shardCount int) {
	r.initOnce.Do(func() {
		r.capacity = capacity
		r.shardCount = shardCount
	})
}

// Get returns the stable, process-wide instance, constructing it on first
// access with whatever parameters Init recorded (or the registry's
// defaults, if Init was never called).
func (r *Registry[T]) Get() T {
	r.buildOnce.Do(func() {
		r.instance = r.build(r.capacity, r.shardCount)
	})
	return r.instance
}
