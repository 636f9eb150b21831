package cache

// singleton.go provides the process-wide IP-address-keyed timed-entity
// cache: the concrete instantiation of internal/registry.Registry this
// library ships out of the box, grounded on original_source's
// lrucache_singleton.cc, which exposes exactly this shape — a global
// init(capacity, shards) called once at process/plugin startup and a
// global accessor usable from anywhere thereafter, backed by a sharded LRU
// over the plugin's IP-address key type.
//
// © 2025 arena-cache authors. MIT License.

import (
	"github.com/vsdmars/lrucache/internal/registry"
	"github.com/vsdmars/lrucache/pkg/ipaddr"
)

const (
	defaultIPCacheCapacity   = 1 << 20
	defaultIPCacheShardCount = 16
)

var ipTimeEntityRegistry = registry.New[*ShardedLinked[ipaddr.Address, TimedEntity]](
	defaultIPCacheCapacity,
	defaultIPCacheShardCount,
	buildIPTimeEntityCache,
)

func buildIPTimeEntityCache(capacity, shardCount int) *ShardedLinked[ipaddr.Address, TimedEntity] {
	c, err := NewShardedLinked[ipaddr.Address, TimedEntity](capacity, shardCount, ipAddressHasher{})
	if err != nil {
		// Construction-time misuse of compiled-in defaults or of whatever
		// InitIPTimeEntityCache recorded is a programming error, not a
		// runtime condition a caller can recover from: GetIPTimeEntityCache
		// has no error return, matching the original's uncheckable
		// function-local static construction.
		panic("cache: failed to build process-wide IP time-entity cache: " + err.Error())
	}
	return c
}

// ipAddressHasher adapts ipaddr.Address.Hash to the Hasher interface.
type ipAddressHasher struct{}

func (ipAddressHasher) Hash(a ipaddr.Address) uint64 { return a.Hash() }

// InitIPTimeEntityCache records the capacity and shard count the process-
// wide IP time-entity cache will be built with. Only the first call in the
// process, across any number of independently loaded callers, has any
// effect; later calls are silently ignored. Calling GetIPTimeEntityCache
// before ever calling Init is valid and uses the compiled-in defaults.
func InitIPTimeEntityCache(capacity, shardCount int) {
	ipTimeEntityRegistry.Init(capacity, shardCount)
}

// GetIPTimeEntityCache returns the process-wide IP time-entity cache,
// constructing it on first access. Every caller in the process observes
// the same instance.
func GetIPTimeEntityCache() *ShardedLinked[ipaddr.Address, TimedEntity] {
	return ipTimeEntityRegistry.Get()
}
