// Package twang implements Thomas Wang's 64-bit integer mix hash and the
// golden-ratio hash combiner used to fold multiple mixed words into one
// seed. Both are reproduced here because the companion IP-address key type
// must match this exact bit construction to interoperate with callers that
// built their cache entries using the original mix-hash scheme.
//
// https://github.com/facebook/folly/blob/main/folly/hash/Hash.h
package twang

// Mix64 is Thomas Wang's 64-bit integer hash.
func Mix64(key uint64) uint64 {
	key = ^key + (key << 21)
	key = key ^ (key >> 24)
	key = key + (key << 3) + (key << 8)
	key = key ^ (key >> 14)
	key = key + (key << 2) + (key << 4)
	key = key ^ (key >> 28)
	key = key + (key << 31)
	return key
}

// goldenRatio64 is the 32-bit golden-ratio constant used by the classic
// boost::hash_combine formula, widened to match a 64-bit seed.
const goldenRatio64 = 0x9E3779B9

// Combine folds h into seed using boost::hash_combine's formula.
func Combine(seed, h uint64) uint64 {
	seed ^= h + goldenRatio64 + (seed << 6) + (seed >> 2)
	return seed
}
