package views

import (
	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
)

// Unmodifiable returns a view of c that rejects every write with
// ErrUnsupportedOperation.
func Unmodifiable[E any](c collection.Collection[E]) collection.Collection[E] {
	return &unmodifiableCollection[E]{inner: c}
}

type unmodifiableCollection[E any] struct {
	inner collection.Collection[E]
}

func (v *unmodifiableCollection[E]) Equality() order.Equality[E] { return v.inner.Equality() }
func (v *unmodifiableCollection[E]) Size() int                   { return v.inner.Size() }
func (v *unmodifiableCollection[E]) IsEmpty() bool               { return v.inner.IsEmpty() }
func (v *unmodifiableCollection[E]) Contains(e E) bool           { return v.inner.Contains(e) }

func (v *unmodifiableCollection[E]) Add(E) bool    { panic(collection.ErrUnsupportedOperation) }
func (v *unmodifiableCollection[E]) Remove(E) bool { panic(collection.ErrUnsupportedOperation) }
func (v *unmodifiableCollection[E]) RemoveIf(collection.Predicate[E]) bool {
	panic(collection.ErrUnsupportedOperation)
}
func (v *unmodifiableCollection[E]) Clear() { panic(collection.ErrUnsupportedOperation) }

func (v *unmodifiableCollection[E]) Iterator() collection.Iterator[E] {
	return v.inner.Iterator()
}

func (v *unmodifiableCollection[E]) DescendingIterator() collection.Iterator[E] {
	return v.inner.DescendingIterator()
}

func (v *unmodifiableCollection[E]) Clone() collection.Collection[E] {
	return Unmodifiable(v.inner.Clone())
}

func (v *unmodifiableCollection[E]) TrySplit(n int) []collection.Collection[E] {
	return v.inner.TrySplit(n)
}

func (v *unmodifiableCollection[E]) String() string { return collection.StringOf[E](v) }

// UnmodifiableMap returns a view of m that rejects every write with
// ErrUnsupportedOperation.
func UnmodifiableMap[K, V any](m collection.Map[K, V]) collection.Map[K, V] {
	return &unmodifiableMap[K, V]{inner: m}
}

type unmodifiableMap[K, V any] struct {
	inner collection.Map[K, V]
}

func (v *unmodifiableMap[K, V]) KeyOrder() order.Order[K]         { return v.inner.KeyOrder() }
func (v *unmodifiableMap[K, V]) ValueEquality() order.Equality[V] { return v.inner.ValueEquality() }
func (v *unmodifiableMap[K, V]) Size() int                        { return v.inner.Size() }
func (v *unmodifiableMap[K, V]) IsEmpty() bool                    { return v.inner.IsEmpty() }
func (v *unmodifiableMap[K, V]) ContainsKey(key K) bool           { return v.inner.ContainsKey(key) }
func (v *unmodifiableMap[K, V]) ContainsValue(val V) bool         { return v.inner.ContainsValue(val) }
func (v *unmodifiableMap[K, V]) Get(key K) (V, bool)              { return v.inner.Get(key) }

func (v *unmodifiableMap[K, V]) GetEntry(key K) collection.Entry[K, V] {
	return v.inner.GetEntry(key)
}

func (v *unmodifiableMap[K, V]) Put(K, V) (V, bool) {
	panic(collection.ErrUnsupportedOperation)
}

func (v *unmodifiableMap[K, V]) PutIfAbsent(K, V) (V, bool) {
	panic(collection.ErrUnsupportedOperation)
}

func (v *unmodifiableMap[K, V]) Remove(K) (V, bool) {
	panic(collection.ErrUnsupportedOperation)
}

func (v *unmodifiableMap[K, V]) RemoveIf(collection.Predicate[collection.Entry[K, V]]) bool {
	panic(collection.ErrUnsupportedOperation)
}

func (v *unmodifiableMap[K, V]) Clear() { panic(collection.ErrUnsupportedOperation) }

func (v *unmodifiableMap[K, V]) Iterator() collection.Iterator[collection.Entry[K, V]] {
	return v.inner.Iterator()
}

func (v *unmodifiableMap[K, V]) DescendingIterator() collection.Iterator[collection.Entry[K, V]] {
	return v.inner.DescendingIterator()
}

func (v *unmodifiableMap[K, V]) IteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	return v.inner.IteratorFrom(fromKey)
}

func (v *unmodifiableMap[K, V]) DescendingIteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	return v.inner.DescendingIteratorFrom(fromKey)
}

func (v *unmodifiableMap[K, V]) KeySet() collection.Collection[K] {
	return Unmodifiable(v.inner.KeySet())
}

func (v *unmodifiableMap[K, V]) Values() collection.Collection[V] {
	return Unmodifiable(v.inner.Values())
}

func (v *unmodifiableMap[K, V]) EntrySet() collection.Collection[collection.Entry[K, V]] {
	return Unmodifiable(v.inner.EntrySet())
}

func (v *unmodifiableMap[K, V]) Clone() collection.Map[K, V] {
	return UnmodifiableMap(v.inner.Clone())
}

func (v *unmodifiableMap[K, V]) String() string { return collection.StringOfMap[K, V](v) }
