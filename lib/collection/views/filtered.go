package views

import (
	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
)

// Filtered returns a view of c restricted to elements accepted by p.
// Membership can change underneath the view, so Size counts by iteration.
func Filtered[E any](c collection.Collection[E], p collection.Predicate[E]) collection.Collection[E] {
	return &filteredCollection[E]{inner: c, p: p}
}

type filteredCollection[E any] struct {
	inner collection.Collection[E]
	p     collection.Predicate[E]
}

func (v *filteredCollection[E]) Equality() order.Equality[E] { return v.inner.Equality() }

func (v *filteredCollection[E]) Size() int {
	return collection.CountIterator(v.Iterator())
}

func (v *filteredCollection[E]) IsEmpty() bool { return !v.Iterator().Next() }

func (v *filteredCollection[E]) Contains(e E) bool {
	return v.p(e) && v.inner.Contains(e)
}

// Add forwards only when the predicate accepts e; a rejected element
// reports no change without touching the inner collection.
func (v *filteredCollection[E]) Add(e E) bool {
	if !v.p(e) {
		return false
	}
	return v.inner.Add(e)
}

func (v *filteredCollection[E]) Remove(e E) bool {
	if !v.p(e) {
		return false
	}
	return v.inner.Remove(e)
}

// RemoveIf forwards the combined predicate so removal only touches
// elements visible through the filter.
func (v *filteredCollection[E]) RemoveIf(f collection.Predicate[E]) bool {
	return v.inner.RemoveIf(func(e E) bool { return v.p(e) && f(e) })
}

// Clear removes only the visible elements.
func (v *filteredCollection[E]) Clear() {
	v.inner.RemoveIf(v.p)
}

func (v *filteredCollection[E]) Iterator() collection.Iterator[E] {
	return filterIterator(v.inner.Iterator(), v.p)
}

func (v *filteredCollection[E]) DescendingIterator() collection.Iterator[E] {
	return filterIterator(v.inner.DescendingIterator(), v.p)
}

func (v *filteredCollection[E]) Clone() collection.Collection[E] {
	return Filtered(v.inner.Clone(), v.p)
}

func (v *filteredCollection[E]) TrySplit(n int) []collection.Collection[E] {
	inner := v.inner.TrySplit(n)
	if inner == nil {
		return nil
	}
	parts := make([]collection.Collection[E], len(inner))
	for i, part := range inner {
		parts[i] = Filtered(part, v.p)
	}
	return parts
}

func (v *filteredCollection[E]) String() string { return collection.StringOf[E](v) }

// filterIterator lazily skips elements failing p.
func filterIterator[E any](it collection.Iterator[E], p collection.Predicate[E]) collection.Iterator[E] {
	return collection.FuncIterator(func() (E, bool) {
		for it.Next() {
			if e := it.Value(); p(e) {
				return e, true
			}
		}
		var zero E
		return zero, false
	})
}

// --------------------------------------------------------------------------
// Filtered Map
// --------------------------------------------------------------------------

// FilteredMap returns a view of m restricted to entries accepted by p.
// Writes for rejected entries report no change without mutating m.
func FilteredMap[K, V any](m collection.Map[K, V], p collection.Predicate[collection.Entry[K, V]]) collection.Map[K, V] {
	return &filteredMap[K, V]{inner: m, p: p}
}

type filteredMap[K, V any] struct {
	inner collection.Map[K, V]
	p     collection.Predicate[collection.Entry[K, V]]
}

func (v *filteredMap[K, V]) KeyOrder() order.Order[K]         { return v.inner.KeyOrder() }
func (v *filteredMap[K, V]) ValueEquality() order.Equality[V] { return v.inner.ValueEquality() }

func (v *filteredMap[K, V]) Size() int {
	return collection.CountIterator(v.Iterator())
}

func (v *filteredMap[K, V]) IsEmpty() bool { return !v.Iterator().Next() }

func (v *filteredMap[K, V]) ContainsKey(key K) bool {
	e := v.inner.GetEntry(key)
	return e != nil && v.p(e)
}

func (v *filteredMap[K, V]) ContainsValue(val V) bool {
	it := v.Iterator()
	for it.Next() {
		if v.inner.ValueEquality().AreEqual(it.Value().Value(), val) {
			return true
		}
	}
	return false
}

func (v *filteredMap[K, V]) Get(key K) (V, bool) {
	if e := v.GetEntry(key); e != nil {
		return e.Value(), true
	}
	var zero V
	return zero, false
}

func (v *filteredMap[K, V]) GetEntry(key K) collection.Entry[K, V] {
	if e := v.inner.GetEntry(key); e != nil && v.p(e) {
		return e
	}
	return nil
}

func (v *filteredMap[K, V]) Put(key K, value V) (V, bool) {
	if !v.p(collection.NewEntry(key, value)) {
		var zero V
		return zero, false
	}
	return v.inner.Put(key, value)
}

func (v *filteredMap[K, V]) PutIfAbsent(key K, value V) (V, bool) {
	if !v.p(collection.NewEntry(key, value)) {
		var zero V
		return zero, false
	}
	return v.inner.PutIfAbsent(key, value)
}

func (v *filteredMap[K, V]) Remove(key K) (V, bool) {
	if e := v.GetEntry(key); e == nil {
		var zero V
		return zero, false
	}
	return v.inner.Remove(key)
}

func (v *filteredMap[K, V]) RemoveIf(f collection.Predicate[collection.Entry[K, V]]) bool {
	return v.inner.RemoveIf(func(e collection.Entry[K, V]) bool { return v.p(e) && f(e) })
}

func (v *filteredMap[K, V]) Clear() {
	v.inner.RemoveIf(v.p)
}

func (v *filteredMap[K, V]) Iterator() collection.Iterator[collection.Entry[K, V]] {
	return filterIterator(v.inner.Iterator(), v.p)
}

func (v *filteredMap[K, V]) DescendingIterator() collection.Iterator[collection.Entry[K, V]] {
	return filterIterator(v.inner.DescendingIterator(), v.p)
}

func (v *filteredMap[K, V]) IteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	return filterIterator(v.inner.IteratorFrom(fromKey), v.p)
}

func (v *filteredMap[K, V]) DescendingIteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	return filterIterator(v.inner.DescendingIteratorFrom(fromKey), v.p)
}

func (v *filteredMap[K, V]) KeySet() collection.Collection[K] {
	return collection.KeySetOf[K, V](v)
}

func (v *filteredMap[K, V]) Values() collection.Collection[V] {
	return collection.ValuesOf[K, V](v)
}

func (v *filteredMap[K, V]) EntrySet() collection.Collection[collection.Entry[K, V]] {
	return collection.EntrySetOf[K, V](v)
}

func (v *filteredMap[K, V]) Clone() collection.Map[K, V] {
	return FilteredMap(v.inner.Clone(), v.p)
}

func (v *filteredMap[K, V]) String() string { return collection.StringOfMap[K, V](v) }
