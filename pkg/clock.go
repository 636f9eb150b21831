package cache

// clock.go implements ClockCache, the single-shard two-hand clock (second-
// chance) LRU engine. It pairs a native Go map (hashing and equality for
// free from the `comparable` constraint) with internal/twohand.Table, which
// owns the preallocated slot storage and the clock-hand scan. The split
// between index and slot storage generalizes CLOCK-Pro's hot/cold/test
// states down to a simpler two-hand second-chance policy.
//
// © 2025 arena-cache authors. MIT License.

import (
	"sync"

	"github.com/vsdmars/lrucache/internal/twohand"
)

// ClockCache is a fixed-capacity, single-shard cache evicting via the
// two-hand clock algorithm. Safe for concurrent use.
type ClockCache[K comparable, V any] struct {
	mu    sync.RWMutex
	index map[K]int
	slots *twohand.Table[K, V]
	cfg   *config[K, V]
}

// NewClockCache constructs a ClockCache with room for exactly capacity
// entries. capacity must be > 0.
func NewClockCache[K comparable, V any](capacity int, opts ...Option[K, V]) (*ClockCache[K, V], error) {
	return newClockCacheShard[K, V](capacity, "", opts...)
}

// newClockCacheShard is NewClockCache plus an autoLabel forwarded to
// resolveMetrics, used by ShardedClock so each shard's Prometheus counters
// register under a distinct label.
func newClockCacheShard[K comparable, V any](capacity int, autoLabel string, opts ...Option[K, V]) (*ClockCache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	cfg := applyOptions(opts)
	cfg.resolveMetrics(autoLabel)
	return &ClockCache[K, V]{
		index: make(map[K]int, capacity),
		slots: twohand.New[K, V](capacity),
		cfg:   cfg,
	}, nil
}

// Capacity returns the fixed slot count this cache was constructed with.
func (c *ClockCache[K, V]) Capacity() int {
	return c.slots.Len()
}

// Len returns the current number of live entries.
func (c *ClockCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.index)
}

// Find looks up key. On a hit it marks the owning slot referenced, giving
// the entry a second chance against the next eviction sweep, and returns
// its value. Find takes only the shared lock: marking a slot referenced is
// a single atomic store, safe alongside concurrent readers.
func (c *ClockCache[K, V]) Find(key K) (V, bool) {
	c.mu.RLock()
	idx, ok := c.index[key]
	if !ok {
		c.mu.RUnlock()
		c.cfg.metrics.incMiss()
		var zero V
		return zero, false
	}
	val := c.slots.Value(idx)
	c.slots.MarkReferenced(idx)
	c.mu.RUnlock()
	c.cfg.metrics.incHit()
	return val, true
}

// Insert adds key with value if key is not already present. An existing key
// is left untouched — its value, reference marker, and slot all stay
// exactly as they were — and Insert reports false without evicting
// anything. For a novel key, Insert always drives slot selection through
// the two-hand clock scan, even while the table still has empty slots: the
// scan takes the first slot under the evict hand whose reference marker is
// clear, whether that slot is empty or holds a live entry, so an insert
// after Erase or Clear can evict a live entry while another slot is empty.
// It reports whether a live entry was evicted to make room; the evicted
// entry (if any) is delivered to the configured EjectCallback before
// Insert returns.
func (c *ClockCache[K, V]) Insert(key K, value V) bool {
	c.mu.Lock()

	if _, ok := c.index[key]; ok {
		c.mu.Unlock()
		return false
	}

	victim := c.slots.SelectVictim()
	var evictedVal V
	if c.slots.Filled(victim) {
		evictedVal = c.slots.Value(victim)
	}
	evictedKey, evicted := c.slots.Populate(victim, key, value)
	if evicted {
		delete(c.index, evictedKey)
	}
	c.index[key] = victim
	c.mu.Unlock()

	if evicted {
		c.cfg.metrics.incEvict()
		if c.cfg.ejectCb != nil {
			c.cfg.ejectCb(evictedKey, evictedVal, ReasonCapacity)
		}
	}
	return evicted
}

// Erase removes key if present and reports the live count afterward. Erase
// never invokes the eject callback: that callback fires only for capacity-
// driven eviction, never for an explicit caller-initiated removal.
func (c *ClockCache[K, V]) Erase(key K) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx, ok := c.index[key]; ok {
		delete(c.index, key)
		c.slots.ClearSlot(idx)
	}
	return len(c.index)
}

// Clear removes every entry, resetting the table for reuse at the original
// capacity.
func (c *ClockCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = make(map[K]int, c.slots.Len())
	c.slots.Reset()
}
