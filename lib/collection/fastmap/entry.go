package fastmap

import (
	"github.com/fastcoll/fastcoll/lib/collection"
)

// entry is the engine-owned key/value association. The key is immutable
// after creation; the value is mutated in place, exclusively by the owning
// map's update path.
type entry[K, V any] struct {
	key   K
	value V
}

func (e *entry[K, V]) Key() K   { return e.key }
func (e *entry[K, V]) Value() V { return e.value }

func (e *entry[K, V]) SetValue(V) V {
	panic(collection.ErrUnsupportedOperation)
}

func (e *entry[K, V]) String() string { return collection.FormatEntry[K, V](e) }
