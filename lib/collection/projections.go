package collection

import (
	"github.com/fastcoll/fastcoll/lib/order"
)

// This file implements the keySet/values/entrySet projections shared by all
// map implementations. Projections are live, write-through views: they hold
// the map itself, never copies of its entries.

// EntrySplitter is an optional capability: maps able to partition their
// entries without copying (e.g. by backing-table ranges or shards) implement
// it, and EntrySetOf's TrySplit uses it.
type EntrySplitter[K, V any] interface {
	TrySplitEntries(n int) []Collection[Entry[K, V]]
}

// --------------------------------------------------------------------------
// Key Set Projection
// --------------------------------------------------------------------------

// KeySetOf returns the live key view over m. Add inserts a key mapped to the
// zero value if absent; Remove removes the whole mapping.
func KeySetOf[K, V any](m Map[K, V]) Collection[K] {
	return &keySetView[K, V]{m: m}
}

type keySetView[K, V any] struct {
	m Map[K, V]
}

func (v *keySetView[K, V]) Equality() order.Equality[K] {
	return order.OrderedEquality(v.m.KeyOrder())
}

func (v *keySetView[K, V]) Size() int            { return v.m.Size() }
func (v *keySetView[K, V]) IsEmpty() bool        { return v.m.IsEmpty() }
func (v *keySetView[K, V]) Contains(key K) bool  { return v.m.ContainsKey(key) }

func (v *keySetView[K, V]) Add(key K) bool {
	var zero V
	_, inserted := v.m.PutIfAbsent(key, zero)
	return inserted
}

func (v *keySetView[K, V]) Remove(key K) bool {
	_, removed := v.m.Remove(key)
	return removed
}

func (v *keySetView[K, V]) RemoveIf(p Predicate[K]) bool {
	return v.m.RemoveIf(func(e Entry[K, V]) bool { return p(e.Key()) })
}

func (v *keySetView[K, V]) Clear() { v.m.Clear() }

func (v *keySetView[K, V]) Iterator() Iterator[K] {
	return projectIterator(v.m.Iterator(), Entry[K, V].Key)
}

func (v *keySetView[K, V]) DescendingIterator() Iterator[K] {
	return projectIterator(v.m.DescendingIterator(), Entry[K, V].Key)
}

func (v *keySetView[K, V]) Clone() Collection[K] {
	return &keySetView[K, V]{m: v.m.Clone()}
}

func (v *keySetView[K, V]) TrySplit(n int) []Collection[K] {
	parts := EntrySetOf(v.m).TrySplit(n)
	out := make([]Collection[K], len(parts))
	for i, p := range parts {
		out[i] = &projectedSplit[Entry[K, V], K]{
			inner: p,
			fn:    Entry[K, V].Key,
			eq:    v.Equality(),
		}
	}
	return out
}

// --------------------------------------------------------------------------
// Values Projection
// --------------------------------------------------------------------------

// ValuesOf returns the live value view over m. Removal is supported (it
// removes one mapping holding an equal value); adding is not, since a value
// alone does not determine a key.
func ValuesOf[K, V any](m Map[K, V]) Collection[V] {
	return &valuesView[K, V]{m: m}
}

type valuesView[K, V any] struct {
	m Map[K, V]
}

func (v *valuesView[K, V]) Equality() order.Equality[V] { return v.m.ValueEquality() }
func (v *valuesView[K, V]) Size() int                   { return v.m.Size() }
func (v *valuesView[K, V]) IsEmpty() bool               { return v.m.IsEmpty() }

func (v *valuesView[K, V]) Contains(val V) bool { return v.m.ContainsValue(val) }

func (v *valuesView[K, V]) Add(V) bool {
	panic(ErrUnsupportedOperation)
}

func (v *valuesView[K, V]) Remove(val V) bool {
	eq := v.m.ValueEquality()
	for it := v.m.Iterator(); it.Next(); {
		if e := it.Value(); eq.AreEqual(e.Value(), val) {
			_, removed := v.m.Remove(e.Key())
			return removed
		}
	}
	return false
}

func (v *valuesView[K, V]) RemoveIf(p Predicate[V]) bool {
	return v.m.RemoveIf(func(e Entry[K, V]) bool { return p(e.Value()) })
}

func (v *valuesView[K, V]) Clear() { v.m.Clear() }

func (v *valuesView[K, V]) Iterator() Iterator[V] {
	return projectIterator(v.m.Iterator(), Entry[K, V].Value)
}

func (v *valuesView[K, V]) DescendingIterator() Iterator[V] {
	return projectIterator(v.m.DescendingIterator(), Entry[K, V].Value)
}

func (v *valuesView[K, V]) Clone() Collection[V] {
	return &valuesView[K, V]{m: v.m.Clone()}
}

func (v *valuesView[K, V]) TrySplit(n int) []Collection[V] {
	parts := EntrySetOf(v.m).TrySplit(n)
	out := make([]Collection[V], len(parts))
	for i, p := range parts {
		out[i] = &projectedSplit[Entry[K, V], V]{
			inner: p,
			fn:    Entry[K, V].Value,
			eq:    v.m.ValueEquality(),
		}
	}
	return out
}

// --------------------------------------------------------------------------
// Entry Set Projection
// --------------------------------------------------------------------------

// EntrySetOf returns the live entry view over m. Add puts the entry's
// association; Remove removes the mapping only if the stored value equals
// the entry's value.
func EntrySetOf[K, V any](m Map[K, V]) Collection[Entry[K, V]] {
	return &entrySetView[K, V]{m: m}
}

type entrySetView[K, V any] struct {
	m Map[K, V]
}

func (v *entrySetView[K, V]) Equality() order.Equality[Entry[K, V]] {
	return order.EqualityFunc(
		func(a, b Entry[K, V]) bool { return EntryEqual(a, b) },
		func(e Entry[K, V]) uint64 {
			return order.HashUint64(uint64(v.m.KeyOrder().IndexOf(e.Key())))
		},
	)
}

func (v *entrySetView[K, V]) Size() int     { return v.m.Size() }
func (v *entrySetView[K, V]) IsEmpty() bool { return v.m.IsEmpty() }

func (v *entrySetView[K, V]) Contains(e Entry[K, V]) bool {
	if e == nil {
		return false
	}
	stored, ok := v.m.Get(e.Key())
	return ok && v.m.ValueEquality().AreEqual(stored, e.Value())
}

func (v *entrySetView[K, V]) Add(e Entry[K, V]) bool {
	v.m.Put(e.Key(), e.Value())
	return true
}

func (v *entrySetView[K, V]) Remove(e Entry[K, V]) bool {
	if !v.Contains(e) {
		return false
	}
	_, removed := v.m.Remove(e.Key())
	return removed
}

func (v *entrySetView[K, V]) RemoveIf(p Predicate[Entry[K, V]]) bool {
	return v.m.RemoveIf(p)
}

func (v *entrySetView[K, V]) Clear() { v.m.Clear() }

func (v *entrySetView[K, V]) Iterator() Iterator[Entry[K, V]] {
	return v.m.Iterator()
}

func (v *entrySetView[K, V]) DescendingIterator() Iterator[Entry[K, V]] {
	return v.m.DescendingIterator()
}

func (v *entrySetView[K, V]) Clone() Collection[Entry[K, V]] {
	return &entrySetView[K, V]{m: v.m.Clone()}
}

func (v *entrySetView[K, V]) TrySplit(n int) []Collection[Entry[K, V]] {
	if s, ok := v.m.(EntrySplitter[K, V]); ok {
		if parts := s.TrySplitEntries(n); len(parts) > 0 {
			return parts
		}
	}
	// Fallback: materialize one snapshot and hand out read-only chunks.
	entries := DrainIterator(v.m.Iterator())
	return splitSlice(entries, n, v.Equality())
}

// --------------------------------------------------------------------------
// Split Support
// --------------------------------------------------------------------------

// splitSlice chunks elems into up to n read-only sub-views.
func splitSlice[E any](elems []E, n int, eq order.Equality[E]) []Collection[E] {
	if n < 1 {
		n = 1
	}
	if n > len(elems) {
		n = len(elems)
	}
	if n <= 1 {
		return []Collection[E]{NewConst(eq, elems...)}
	}
	out := make([]Collection[E], 0, n)
	chunk := (len(elems) + n - 1) / n
	for start := 0; start < len(elems); start += chunk {
		end := start + chunk
		if end > len(elems) {
			end = len(elems)
		}
		out = append(out, NewConst(eq, elems[start:end]...))
	}
	return out
}

// projectedSplit is a read-only projection over a split partition.
type projectedSplit[T, R any] struct {
	inner Collection[T]
	fn    Function[T, R]
	eq    order.Equality[R]
}

func (s *projectedSplit[T, R]) Equality() order.Equality[R] { return s.eq }
func (s *projectedSplit[T, R]) Size() int                   { return s.inner.Size() }
func (s *projectedSplit[T, R]) IsEmpty() bool               { return s.inner.IsEmpty() }

func (s *projectedSplit[T, R]) Contains(v R) bool {
	for it := s.Iterator(); it.Next(); {
		if s.eq.AreEqual(it.Value(), v) {
			return true
		}
	}
	return false
}

func (s *projectedSplit[T, R]) Add(R) bool               { panic(ErrUnsupportedOperation) }
func (s *projectedSplit[T, R]) Remove(R) bool            { panic(ErrUnsupportedOperation) }
func (s *projectedSplit[T, R]) RemoveIf(Predicate[R]) bool { panic(ErrUnsupportedOperation) }
func (s *projectedSplit[T, R]) Clear()                   { panic(ErrUnsupportedOperation) }

func (s *projectedSplit[T, R]) Iterator() Iterator[R] {
	return projectIterator(s.inner.Iterator(), s.fn)
}

func (s *projectedSplit[T, R]) DescendingIterator() Iterator[R] {
	return projectIterator(s.inner.DescendingIterator(), s.fn)
}

func (s *projectedSplit[T, R]) Clone() Collection[R] {
	return &projectedSplit[T, R]{inner: s.inner.Clone(), fn: s.fn, eq: s.eq}
}

func (s *projectedSplit[T, R]) TrySplit(n int) []Collection[R] {
	parts := s.inner.TrySplit(n)
	out := make([]Collection[R], len(parts))
	for i, p := range parts {
		out[i] = &projectedSplit[T, R]{inner: p, fn: s.fn, eq: s.eq}
	}
	return out
}

// projectIterator lazily applies fn to every element of it.
func projectIterator[T, R any](it Iterator[T], fn Function[T, R]) Iterator[R] {
	return FuncIterator(func() (R, bool) {
		if !it.Next() {
			var zero R
			return zero, false
		}
		return fn(it.Value()), true
	})
}
