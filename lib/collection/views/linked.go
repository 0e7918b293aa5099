package views

import (
	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/collection/fasttable"
	"github.com/fastcoll/fastcoll/lib/order"
)

// Linked returns a view of m that iterates entries in insertion order,
// tracked in a side table of keys. Updates to an existing key keep its
// original position; removal deletes from both the map and the side table.
// Entries already present in m are seeded into the side table in m's
// iteration order.
func Linked[K, V any](m collection.Map[K, V]) collection.Map[K, V] {
	v := &linkedMap[K, V]{
		inner: m,
		seq:   fasttable.New(order.OrderedEquality(m.KeyOrder())),
	}
	it := m.Iterator()
	for it.Next() {
		v.seq.AddLast(it.Value().Key())
	}
	return v
}

type linkedMap[K, V any] struct {
	inner collection.Map[K, V]
	seq   *fasttable.Table[K]
}

func (v *linkedMap[K, V]) KeyOrder() order.Order[K]         { return v.inner.KeyOrder() }
func (v *linkedMap[K, V]) ValueEquality() order.Equality[V] { return v.inner.ValueEquality() }
func (v *linkedMap[K, V]) Size() int                        { return v.inner.Size() }
func (v *linkedMap[K, V]) IsEmpty() bool                    { return v.inner.IsEmpty() }
func (v *linkedMap[K, V]) ContainsKey(key K) bool           { return v.inner.ContainsKey(key) }
func (v *linkedMap[K, V]) ContainsValue(val V) bool         { return v.inner.ContainsValue(val) }

func (v *linkedMap[K, V]) Get(key K) (V, bool) { return v.inner.Get(key) }

func (v *linkedMap[K, V]) GetEntry(key K) collection.Entry[K, V] {
	return v.inner.GetEntry(key)
}

func (v *linkedMap[K, V]) Put(key K, value V) (V, bool) {
	previous, replaced := v.inner.Put(key, value)
	if !replaced {
		v.seq.AddLast(key)
	}
	return previous, replaced
}

func (v *linkedMap[K, V]) PutIfAbsent(key K, value V) (V, bool) {
	current, inserted := v.inner.PutIfAbsent(key, value)
	if inserted {
		v.seq.AddLast(key)
	}
	return current, inserted
}

// Remove keeps the side table and the inner map consistent: a mapping
// deleted from one must leave the other.
func (v *linkedMap[K, V]) Remove(key K) (V, bool) {
	previous, removed := v.inner.Remove(key)
	if removed {
		v.seq.Remove(key)
	}
	return previous, removed
}

func (v *linkedMap[K, V]) RemoveIf(p collection.Predicate[collection.Entry[K, V]]) bool {
	changed := v.inner.RemoveIf(p)
	if changed {
		v.seq.RemoveIf(func(key K) bool { return !v.inner.ContainsKey(key) })
	}
	return changed
}

func (v *linkedMap[K, V]) Clear() {
	v.inner.Clear()
	v.seq.Clear()
}

func (v *linkedMap[K, V]) entryAt(key K) collection.Entry[K, V] {
	return v.inner.GetEntry(key)
}

func (v *linkedMap[K, V]) iterate(keys collection.Iterator[K]) collection.Iterator[collection.Entry[K, V]] {
	return collection.FuncIterator(func() (collection.Entry[K, V], bool) {
		for keys.Next() {
			if e := v.entryAt(keys.Value()); e != nil {
				return e, true
			}
		}
		return nil, false
	})
}

func (v *linkedMap[K, V]) Iterator() collection.Iterator[collection.Entry[K, V]] {
	return v.iterate(v.seq.Iterator())
}

func (v *linkedMap[K, V]) DescendingIterator() collection.Iterator[collection.Entry[K, V]] {
	return v.iterate(v.seq.DescendingIterator())
}

// IteratorFrom starts the pass at fromKey's insertion position; an absent
// seed key yields an empty pass.
func (v *linkedMap[K, V]) IteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	i := v.seq.IndexOf(fromKey)
	if i < 0 {
		return collection.EmptyIterator[collection.Entry[K, V]]()
	}
	keys := v.seq.Iterator()
	for skip := 0; skip < i; skip++ {
		keys.Next()
	}
	return v.iterate(keys)
}

func (v *linkedMap[K, V]) DescendingIteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	i := v.seq.IndexOf(fromKey)
	if i < 0 {
		return collection.EmptyIterator[collection.Entry[K, V]]()
	}
	keys := v.seq.DescendingIterator()
	for skip := 0; skip < v.seq.Size()-1-i; skip++ {
		keys.Next()
	}
	return v.iterate(keys)
}

func (v *linkedMap[K, V]) KeySet() collection.Collection[K] {
	return collection.KeySetOf[K, V](v)
}

func (v *linkedMap[K, V]) Values() collection.Collection[V] {
	return collection.ValuesOf[K, V](v)
}

func (v *linkedMap[K, V]) EntrySet() collection.Collection[collection.Entry[K, V]] {
	return collection.EntrySetOf[K, V](v)
}

func (v *linkedMap[K, V]) Clone() collection.Map[K, V] {
	cp := &linkedMap[K, V]{inner: v.inner.Clone()}
	cp.seq = v.seq.Clone().(*fasttable.Table[K])
	return cp
}

func (v *linkedMap[K, V]) String() string { return collection.StringOfMap[K, V](v) }
