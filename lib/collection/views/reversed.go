package views

import (
	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
)

// Reversed returns a view of c with ascending and descending iteration
// swapped. O(1) to construct; nothing is copied.
func Reversed[E any](c collection.Collection[E]) collection.Collection[E] {
	if v, ok := c.(*reversedCollection[E]); ok {
		return v.inner
	}
	return &reversedCollection[E]{inner: c}
}

type reversedCollection[E any] struct {
	inner collection.Collection[E]
}

func (v *reversedCollection[E]) Equality() order.Equality[E] { return v.inner.Equality() }
func (v *reversedCollection[E]) Size() int                   { return v.inner.Size() }
func (v *reversedCollection[E]) IsEmpty() bool               { return v.inner.IsEmpty() }
func (v *reversedCollection[E]) Contains(e E) bool           { return v.inner.Contains(e) }
func (v *reversedCollection[E]) Add(e E) bool                { return v.inner.Add(e) }
func (v *reversedCollection[E]) Remove(e E) bool             { return v.inner.Remove(e) }

func (v *reversedCollection[E]) RemoveIf(p collection.Predicate[E]) bool {
	return v.inner.RemoveIf(p)
}

func (v *reversedCollection[E]) Clear() { v.inner.Clear() }

func (v *reversedCollection[E]) Iterator() collection.Iterator[E] {
	return v.inner.DescendingIterator()
}

func (v *reversedCollection[E]) DescendingIterator() collection.Iterator[E] {
	return v.inner.Iterator()
}

func (v *reversedCollection[E]) Clone() collection.Collection[E] {
	return &reversedCollection[E]{inner: v.inner.Clone()}
}

func (v *reversedCollection[E]) TrySplit(n int) []collection.Collection[E] {
	return v.inner.TrySplit(n)
}

func (v *reversedCollection[E]) String() string { return collection.StringOf[E](v) }

// --------------------------------------------------------------------------
// Reversed Map
// --------------------------------------------------------------------------

// ReversedMap returns a view of m with ascending and descending iteration
// swapped, including the seeded variants.
func ReversedMap[K, V any](m collection.Map[K, V]) collection.Map[K, V] {
	if v, ok := m.(*reversedMap[K, V]); ok {
		return v.inner
	}
	return &reversedMap[K, V]{inner: m}
}

type reversedMap[K, V any] struct {
	inner collection.Map[K, V]
}

func (v *reversedMap[K, V]) KeyOrder() order.Order[K]         { return v.inner.KeyOrder() }
func (v *reversedMap[K, V]) ValueEquality() order.Equality[V] { return v.inner.ValueEquality() }
func (v *reversedMap[K, V]) Size() int                        { return v.inner.Size() }
func (v *reversedMap[K, V]) IsEmpty() bool                    { return v.inner.IsEmpty() }
func (v *reversedMap[K, V]) ContainsKey(key K) bool           { return v.inner.ContainsKey(key) }
func (v *reversedMap[K, V]) ContainsValue(val V) bool         { return v.inner.ContainsValue(val) }
func (v *reversedMap[K, V]) Get(key K) (V, bool)              { return v.inner.Get(key) }

func (v *reversedMap[K, V]) GetEntry(key K) collection.Entry[K, V] {
	return v.inner.GetEntry(key)
}

func (v *reversedMap[K, V]) Put(key K, value V) (V, bool) { return v.inner.Put(key, value) }

func (v *reversedMap[K, V]) PutIfAbsent(key K, value V) (V, bool) {
	return v.inner.PutIfAbsent(key, value)
}

func (v *reversedMap[K, V]) Remove(key K) (V, bool) { return v.inner.Remove(key) }

func (v *reversedMap[K, V]) RemoveIf(p collection.Predicate[collection.Entry[K, V]]) bool {
	return v.inner.RemoveIf(p)
}

func (v *reversedMap[K, V]) Clear() { v.inner.Clear() }

func (v *reversedMap[K, V]) Iterator() collection.Iterator[collection.Entry[K, V]] {
	return v.inner.DescendingIterator()
}

func (v *reversedMap[K, V]) DescendingIterator() collection.Iterator[collection.Entry[K, V]] {
	return v.inner.Iterator()
}

func (v *reversedMap[K, V]) IteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	return v.inner.DescendingIteratorFrom(fromKey)
}

func (v *reversedMap[K, V]) DescendingIteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	return v.inner.IteratorFrom(fromKey)
}

func (v *reversedMap[K, V]) KeySet() collection.Collection[K] {
	return collection.KeySetOf[K, V](v)
}

func (v *reversedMap[K, V]) Values() collection.Collection[V] {
	return collection.ValuesOf[K, V](v)
}

func (v *reversedMap[K, V]) EntrySet() collection.Collection[collection.Entry[K, V]] {
	return collection.EntrySetOf[K, V](v)
}

func (v *reversedMap[K, V]) Clone() collection.Map[K, V] {
	return &reversedMap[K, V]{inner: v.inner.Clone()}
}

func (v *reversedMap[K, V]) String() string { return collection.StringOfMap[K, V](v) }
