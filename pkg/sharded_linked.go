package cache

// sharded_linked.go implements ShardedLinked, a sharded wrapper over N
// independent LinkedCache instances. See sharded_clock.go for why this is
// a distinct concrete type rather than a shared generic wrapper with
// ShardedClock. ShardedLinked is the engine the process-wide singleton
// registry (singleton.go) instantiates for the IP-keyed example cache.
//
// © 2025 arena-cache authors. MIT License.

import (
	"strconv"

	"github.com/vsdmars/lrucache/internal/shardkey"
)

// ShardedLinked partitions a strict-LRU cache across shardCount independent
// shards to reduce lock contention under concurrent access.
type ShardedLinked[K comparable, V any] struct {
	shards []*LinkedCache[K, V]
	hasher Hasher[K]
}

// NewShardedLinked constructs a ShardedLinked with capacity entries split
// across shardCount shards (shard 0 absorbs any remainder). hasher routes
// keys to shards; pass nil to use DefaultHasher[K]().
func NewShardedLinked[K comparable, V any](capacity, shardCount int, hasher Hasher[K], opts ...Option[K, V]) (*ShardedLinked[K, V], error) {
	caps, err := shardkey.Partition(capacity, shardCount)
	if err != nil {
		return nil, ErrInvalidShardCount
	}
	if hasher == nil {
		hasher = DefaultHasher[K]()
	}
	sl := &ShardedLinked[K, V]{
		shards: make([]*LinkedCache[K, V], shardCount),
		hasher: hasher,
	}
	for i, cap := range caps {
		shard, err := newLinkedCacheShard[K, V](cap, strconv.Itoa(i), opts...)
		if err != nil {
			return nil, err
		}
		sl.shards[i] = shard
	}
	return sl, nil
}

func (s *ShardedLinked[K, V]) shardFor(key K) *LinkedCache[K, V] {
	idx := shardkey.Index(s.hasher.Hash(key), len(s.shards))
	return s.shards[idx]
}

// FindAccessor looks up key in its owning shard, binding acc on a hit.
func (s *ShardedLinked[K, V]) FindAccessor(acc *Accessor[K, V], key K) bool {
	return s.shardFor(key).FindAccessor(acc, key)
}

// Find looks up key in its owning shard, returning a value copy.
func (s *ShardedLinked[K, V]) Find(key K) (V, bool) {
	return s.shardFor(key).Find(key)
}

// Insert adds key to its owning shard if absent; an existing key is left
// untouched. It reports whether that shard evicted an entry.
func (s *ShardedLinked[K, V]) Insert(key K, value V) bool {
	return s.shardFor(key).Insert(key, value)
}

// Erase removes key from its owning shard, returning that shard's live
// count afterward.
func (s *ShardedLinked[K, V]) Erase(key K) int {
	return s.shardFor(key).Erase(key)
}

// Clear empties every shard.
func (s *ShardedLinked[K, V]) Clear() {
	for _, shard := range s.shards {
		shard.Clear()
	}
}

// Len returns the total live entry count across all shards.
func (s *ShardedLinked[K, V]) Len() int {
	total := 0
	for _, shard := range s.shards {
		total += shard.Len()
	}
	return total
}

// Capacity returns the total entry budget across all shards.
func (s *ShardedLinked[K, V]) Capacity() int {
	total := 0
	for _, shard := range s.shards {
		total += shard.Capacity()
	}
	return total
}

// ShardCount returns the number of shards.
func (s *ShardedLinked[K, V]) ShardCount() int { return len(s.shards) }

// LenAt returns the live entry count of a specific shard, for diagnostics.
func (s *ShardedLinked[K, V]) LenAt(shard int) int { return s.shards[shard].Len() }

// CapacityAt returns the entry budget of a specific shard, for diagnostics.
func (s *ShardedLinked[K, V]) CapacityAt(shard int) int { return s.shards[shard].Capacity() }
