package cache

import "errors"

// Construction-time misuse is fatal per the contract: a non-nil error from
// a constructor, never a zero-value usable cache.
var (
	// ErrInvalidCapacity is returned when a requested capacity is <= 0.
	ErrInvalidCapacity = errors.New("cache: capacity must be > 0")

	// ErrInvalidShardCount is returned when a requested shard count is <= 0
	// or exceeds the total capacity (which would leave some shard with zero
	// entries).
	ErrInvalidShardCount = errors.New("cache: shard count must be > 0 and <= capacity")
)
