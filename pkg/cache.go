// Package cache implements a set of bounded, concurrent, in-memory
// associative LRU caches generic over comparable key and arbitrary value
// types.
//
// Two eviction engines are provided:
//
//   - ClockCache implements the two-hand clock (second-chance) algorithm
//     over a fixed, preallocated slot table, trading strict recency order
//     for O(1) amortized, allocation-free steady-state operation.
//   - LinkedCache implements strict LRU via a concurrent associative index
//     paired with an intrusive doubly linked recency list, guaranteeing the
//     least-recently-used entry is always evicted first.
//
// Each engine has a sharded counterpart, ShardedClock and ShardedLinked,
// that partitions capacity across N independent shards keyed by a 64-bit
// hash to reduce lock contention under concurrent access from many
// goroutines.
//
// The pkg/ipaddr subpackage supplies a tagged-union IP address key type,
// and InitIPTimeEntityCache/GetIPTimeEntityCache expose a ready-made
// process-wide singleton ShardedLinked instance keyed by it, for the common
// case of caching per-client-IP lookup results across a long-lived
// process.
//
// © 2025 arena-cache authors. MIT License.
package cache
