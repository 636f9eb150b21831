package cache

// loaderfunc.go defines LoaderFunc, the user-supplied callback Loader.Get
// invokes on a miss. Kept in its own file so it can be referenced from
// loader.go and from engine files without import-cycle concerns.
//
// The function must not call back into the same Loader or cache it serves;
// doing so risks deadlock since singleflight holds its per-key lock for the
// loader's full duration. It should honour ctx for cancellation. If it
// returns an error, nothing is stored and the error is propagated to every
// waiter for that key.
//
// © 2025 arena-cache authors. MIT License.

import "context"

// LoaderFunc produces a value for key when Loader.Get misses. The same
// LoaderFunc may be invoked concurrently for different keys and must be
// safe for that.
type LoaderFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)
