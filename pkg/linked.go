package cache

// linked.go implements LinkedCache, the strict-LRU engine backed by a
// concurrent associative index (sync.Map) and an intrusive MRU/LRU list
// (internal/reclist): a concurrent associative container paired with a
// dedicated-mutex recency list and an accessor for pinned reads. sync.Map
// already gives lock-free reads and safe concurrent LoadOrStore/
// LoadAndDelete/CompareAndDelete, so no separate index mutex is needed —
// the only dedicated lock left is reclist.List's own. This trades a
// single-RWMutex map for sync.Map because this engine's access pattern
// (many readers relative to writers, per-key hot paths) is the textbook
// case sync.Map documents itself for.
//
// © 2025 arena-cache authors. MIT License.

import (
	"sync"
	"sync/atomic"

	"github.com/vsdmars/lrucache/internal/reclist"
)

// LinkedCache is a strict-LRU cache: the least recently used entry is
// always the first evicted once capacity is exceeded. Safe for concurrent
// use.
type LinkedCache[K comparable, V any] struct {
	index    sync.Map // K -> *entryNode[K,V]
	list     *reclist.List[*entryNode[K, V]]
	size     atomic.Int64
	capacity int
	cfg      *config[K, V]
}

// NewLinkedCache constructs a LinkedCache with room for exactly capacity
// entries. capacity must be > 0.
func NewLinkedCache[K comparable, V any](capacity int, opts ...Option[K, V]) (*LinkedCache[K, V], error) {
	return newLinkedCacheShard[K, V](capacity, "", opts...)
}

// newLinkedCacheShard is NewLinkedCache plus an autoLabel forwarded to
// resolveMetrics, used by ShardedLinked so each shard's Prometheus counters
// register under a distinct label.
func newLinkedCacheShard[K comparable, V any](capacity int, autoLabel string, opts ...Option[K, V]) (*LinkedCache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	cfg := applyOptions(opts)
	cfg.resolveMetrics(autoLabel)
	return &LinkedCache[K, V]{
		list:     reclist.New[*entryNode[K, V]](),
		capacity: capacity,
		cfg:      cfg,
	}, nil
}

// Capacity returns the fixed entry budget this cache was constructed with.
func (c *LinkedCache[K, V]) Capacity() int { return c.capacity }

// Len returns the current number of live entries.
func (c *LinkedCache[K, V]) Len() int { return int(c.size.Load()) }

// FindAccessor looks up key and, on a hit, binds acc to the found entry and
// promotes it to most-recently-used. It reports whether key was found. The
// zero-value Accessor passed in is overwritten; any previous binding on it
// is not released automatically — callers are expected to pass a fresh
// Accessor or to have already released the prior one.
func (c *LinkedCache[K, V]) FindAccessor(acc *Accessor[K, V], key K) bool {
	v, ok := c.index.Load(key)
	if !ok {
		c.cfg.metrics.incMiss()
		return false
	}
	node := v.(*entryNode[K, V])
	if node.removed.Load() {
		c.cfg.metrics.incMiss()
		return false
	}
	acc.bind(node)
	c.list.MoveToFront(node.listNode)
	c.cfg.metrics.incHit()
	return true
}

// Find is a convenience wrapper returning a copy of the value directly,
// without requiring the caller to manage an Accessor.
func (c *LinkedCache[K, V]) Find(key K) (V, bool) {
	var acc Accessor[K, V]
	if !c.FindAccessor(&acc, key) {
		var zero V
		return zero, false
	}
	defer acc.Release()
	return acc.Get(), true
}

// Insert adds key with value if key is not already present, publishing it
// as most-recently-used. An existing key is left untouched — its value and
// recency position both stay exactly as they were — and Insert reports
// false without evicting anything. If inserting a novel key pushes the
// cache over capacity, the current least-recently-used entry is evicted
// and, if a callback is configured, delivered to it. Insert reports
// whether an eviction occurred.
func (c *LinkedCache[K, V]) Insert(key K, value V) bool {
	node := &entryNode[K, V]{key: key, value: value}

	_, loaded := c.index.LoadOrStore(key, node)
	if loaded {
		// node was never published by LoadOrStore; let it be collected.
		return false
	}

	node.listNode = c.list.PushFront(node)
	newSize := c.size.Add(1)

	if newSize <= int64(c.capacity) {
		return false
	}

	return c.evictOne()
}

// evictOne pops the current LRU tail and removes it from the index. The
// node's removed flag (swapped false->true by whichever of evictOne and a
// racing Erase gets there first) keeps an entry from being evicted twice or
// its size double-counted; CompareAndDelete keeps a newer node stored under
// the same key from being removed.
func (c *LinkedCache[K, V]) evictOne() bool {
	tail := c.list.PopBack()
	if tail == nil {
		return false
	}
	victim := tail.Value
	if !victim.removed.CompareAndSwap(false, true) {
		// Another goroutine already erased this entry; the list pop still
		// happened so the list stays consistent, but there is nothing left
		// to evict for this round.
		return false
	}
	c.index.CompareAndDelete(victim.key, victim)
	c.size.Add(-1)

	c.cfg.metrics.incEvict()
	if c.cfg.ejectCb != nil {
		c.cfg.ejectCb(victim.key, victim.value, ReasonCapacity)
	}
	return true
}

// Erase removes key if present and reports the live count afterward. Erase
// never invokes the eject callback.
func (c *LinkedCache[K, V]) Erase(key K) int {
	v, loaded := c.index.LoadAndDelete(key)
	if loaded {
		node := v.(*entryNode[K, V])
		if node.removed.CompareAndSwap(false, true) {
			c.list.Remove(node.listNode)
			c.size.Add(-1)
		}
	}
	return int(c.size.Load())
}

// Clear removes every entry.
func (c *LinkedCache[K, V]) Clear() {
	for {
		n := c.list.PopBack()
		if n == nil {
			break
		}
		victim := n.Value
		if victim.removed.CompareAndSwap(false, true) {
			c.index.CompareAndDelete(victim.key, victim)
		}
	}
	c.size.Store(0)
}
