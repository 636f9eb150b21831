package cache

import (
	"sync/atomic"

	"github.com/vsdmars/lrucache/internal/reclist"
)

// accessor.go defines Accessor, the pinning handle returned by the
// linked-LRU engine's FindAccessor: a zero-copy handle that keeps a found
// entry's payload valid until the caller releases it, with a refcount that
// is bookkeeping only. Go's GC already keeps *entryNode[K,V] reachable for
// as long as an Accessor holds a pointer to it. refs is incremented by bind
// and decremented by Release, and nothing else in the package reads it:
// Erase and capacity-trim unlink an entry whether or not an Accessor still
// has it pinned.

// Accessor pins a found entry so its payload stays valid and stable across
// concurrent eviction until Release is called. The zero value is not
// usable; obtain one via FindAccessor.
type Accessor[K comparable, V any] struct {
	node *entryNode[K, V]
}

// Get returns the pinned entry's current value. Release drops the binding,
// so Get after Release (or on an unbound Accessor) returns the zero value.
func (a *Accessor[K, V]) Get() V {
	var zero V
	if a.node == nil {
		return zero
	}
	return a.node.value
}

// Key returns the pinned entry's key.
func (a *Accessor[K, V]) Key() K {
	var zero K
	if a.node == nil {
		return zero
	}
	return a.node.key
}

// Valid reports whether the accessor is bound to an entry. A freshly
// declared Accessor[K,V]{} or one passed to a failed FindAccessor call is
// not valid.
func (a *Accessor[K, V]) Valid() bool { return a.node != nil }

// Release unpins the entry. It is idempotent and safe to call multiple
// times or on a zero-value Accessor.
func (a *Accessor[K, V]) Release() {
	if a.node == nil {
		return
	}
	a.node.refs.Add(-1)
	a.node = nil
}

func (a *Accessor[K, V]) bind(n *entryNode[K, V]) {
	n.refs.Add(1)
	a.node = n
}

// entryNode is the linked engine's intrusive payload: the recency-list
// node wraps a *entryNode, and the sync.Map index also stores *entryNode
// directly, so both structures observe the same instance without copying V.
type entryNode[K comparable, V any] struct {
	key      K
	value    V
	refs     atomic.Int32
	removed  atomic.Bool
	listNode *reclist.Node[*entryNode[K, V]]
}
