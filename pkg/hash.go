package cache

import (
	"hash/maphash"
	"unsafe"
)

// Hasher supplies a stable hash to a machine word for key type K. Only the
// sharded wrappers need this: a single-shard engine's internal index is a
// native Go map, whose built-in hash+equality over any comparable K already
// satisfies the core's "opaque key" requirement and cannot be overridden
// from outside the runtime. Sharding, by contrast, needs an explicit,
// externally visible hash to route keys to shards consistently, so that
// requirement surfaces here instead.
type Hasher[K comparable] interface {
	Hash(key K) uint64
}

// HasherFunc adapts a plain function to the Hasher interface.
type HasherFunc[K comparable] func(K) uint64

// Hash implements Hasher.
func (f HasherFunc[K]) Hash(key K) uint64 { return f(key) }

var defaultHashSeed = maphash.MakeSeed()

// DefaultHasher returns a maphash-backed Hasher for any comparable key
// type: strings and byte slices are hashed directly; everything else is
// hashed via its in-memory representation, using a type-switch over
// maphash to avoid reflection for the common cases.
func DefaultHasher[K comparable]() Hasher[K] {
	return HasherFunc[K](func(key K) uint64 {
		var h maphash.Hash
		h.SetSeed(defaultHashSeed)
		switch k := any(key).(type) {
		case string:
			h.WriteString(k)
		case []byte:
			h.Write(k)
		default:
			ptr := unsafe.Pointer(&key)
			size := unsafe.Sizeof(key)
			h.Write(unsafe.Slice((*byte)(ptr), size))
		}
		return h.Sum64()
	})
}
