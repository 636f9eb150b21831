// Package shardkey implements the shard-selection and capacity-partition
// arithmetic shared by every sharded wrapper. It is grounded on the
// original ScalableLRUCache's shard() method and constructor
// (scale-lrucache.h) and a Go sharded cache's Cache.shardIndex.
package shardkey

import "errors"

// ErrTooManyShards is returned when the requested shard count exceeds the
// total capacity, which would force at least one shard to hold zero
// entries.
var ErrTooManyShards = errors.New("shardkey: shard count must be > 0 and <= capacity")

// Index selects a shard in [0, shardCount) from a 64-bit key hash. The hash
// is assumed to have better randomness in its high bits (true of the
// twang-mix64 based IP hash this library ships), so the hash is shifted
// right by 48 and only its high 16 bits feed the modulo reduction.
func Index(hash uint64, shardCount int) int {
	const wordBits = 64
	const keepBits = 16
	shifted := hash >> (wordBits - keepBits)
	return int(shifted) % shardCount
}

// Partition splits capacity across shardCount shards. Shard 0 absorbs the
// remainder so that the sum of the returned capacities always equals
// capacity exactly.
func Partition(capacity, shardCount int) ([]int, error) {
	if shardCount <= 0 {
		return nil, errors.New("shardkey: shard count must be > 0")
	}
	if shardCount > capacity {
		return nil, ErrTooManyShards
	}
	base := capacity / shardCount
	rem := capacity % shardCount
	caps := make([]int, shardCount)
	for i := range caps {
		caps[i] = base
	}
	caps[0] += rem
	return caps, nil
}
