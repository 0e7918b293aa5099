package views

import (
	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
)

// KeyRange declares the bounds of a sub-map view. A nil bound is
// unbounded on that side.
type KeyRange[K any] struct {
	From          *K
	FromInclusive bool
	To            *K
	ToInclusive   bool
}

// RangeFromTo is the common half-open range [from, to).
func RangeFromTo[K any](from, to K) KeyRange[K] {
	return KeyRange[K]{From: &from, FromInclusive: true, To: &to}
}

// RangeFrom is the unbounded-above range [from, ...).
func RangeFrom[K any](from K) KeyRange[K] {
	return KeyRange[K]{From: &from, FromInclusive: true}
}

// RangeTo is the unbounded-below range (..., to).
func RangeTo[K any](to K) KeyRange[K] {
	return KeyRange[K]{To: &to}
}

func (r KeyRange[K]) contains(o order.Order[K], key K) bool {
	if r.From != nil {
		c := o.Compare(key, *r.From)
		if c < 0 || (c == 0 && !r.FromInclusive) {
			return false
		}
	}
	if r.To != nil {
		c := o.Compare(key, *r.To)
		if c > 0 || (c == 0 && !r.ToInclusive) {
			return false
		}
	}
	return true
}

// SubMap returns a view of m restricted to keys within r. Keyed reads
// outside the range report absent; keyed writes outside the range panic
// ErrKeyOutOfRange, since silently inserting outside the declared bounds
// would corrupt the view's contract.
func SubMap[K, V any](m collection.Map[K, V], r KeyRange[K]) collection.Map[K, V] {
	return &subMap[K, V]{inner: m, r: r}
}

type subMap[K, V any] struct {
	inner collection.Map[K, V]
	r     KeyRange[K]
}

func (v *subMap[K, V]) inRange(key K) bool {
	return v.r.contains(v.inner.KeyOrder(), key)
}

func (v *subMap[K, V]) checkRange(key K) {
	if !v.inRange(key) {
		panic(collection.ErrKeyOutOfRange)
	}
}

func (v *subMap[K, V]) KeyOrder() order.Order[K]         { return v.inner.KeyOrder() }
func (v *subMap[K, V]) ValueEquality() order.Equality[V] { return v.inner.ValueEquality() }

// Size counts by range iteration; the inner size includes out-of-range
// entries.
func (v *subMap[K, V]) Size() int {
	return collection.CountIterator(v.Iterator())
}

func (v *subMap[K, V]) IsEmpty() bool { return !v.Iterator().Next() }

func (v *subMap[K, V]) ContainsKey(key K) bool {
	return v.inRange(key) && v.inner.ContainsKey(key)
}

func (v *subMap[K, V]) ContainsValue(val V) bool {
	it := v.Iterator()
	for it.Next() {
		if v.inner.ValueEquality().AreEqual(it.Value().Value(), val) {
			return true
		}
	}
	return false
}

func (v *subMap[K, V]) Get(key K) (V, bool) {
	if !v.inRange(key) {
		var zero V
		return zero, false
	}
	return v.inner.Get(key)
}

func (v *subMap[K, V]) GetEntry(key K) collection.Entry[K, V] {
	if !v.inRange(key) {
		return nil
	}
	return v.inner.GetEntry(key)
}

func (v *subMap[K, V]) Put(key K, value V) (V, bool) {
	v.checkRange(key)
	return v.inner.Put(key, value)
}

func (v *subMap[K, V]) PutIfAbsent(key K, value V) (V, bool) {
	v.checkRange(key)
	return v.inner.PutIfAbsent(key, value)
}

// Remove outside the range is absent, not an error; removal of a missing
// mapping was never a contract violation.
func (v *subMap[K, V]) Remove(key K) (V, bool) {
	if !v.inRange(key) {
		var zero V
		return zero, false
	}
	return v.inner.Remove(key)
}

func (v *subMap[K, V]) RemoveIf(p collection.Predicate[collection.Entry[K, V]]) bool {
	return v.inner.RemoveIf(func(e collection.Entry[K, V]) bool {
		return v.inRange(e.Key()) && p(e)
	})
}

func (v *subMap[K, V]) Clear() {
	v.inner.RemoveIf(func(e collection.Entry[K, V]) bool { return v.inRange(e.Key()) })
}

func (v *subMap[K, V]) rangeFilter(it collection.Iterator[collection.Entry[K, V]]) collection.Iterator[collection.Entry[K, V]] {
	return filterIterator(it, func(e collection.Entry[K, V]) bool { return v.inRange(e.Key()) })
}

func (v *subMap[K, V]) Iterator() collection.Iterator[collection.Entry[K, V]] {
	return v.rangeFilter(v.inner.Iterator())
}

func (v *subMap[K, V]) DescendingIterator() collection.Iterator[collection.Entry[K, V]] {
	return v.rangeFilter(v.inner.DescendingIterator())
}

func (v *subMap[K, V]) IteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	return v.rangeFilter(v.inner.IteratorFrom(fromKey))
}

func (v *subMap[K, V]) DescendingIteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	return v.rangeFilter(v.inner.DescendingIteratorFrom(fromKey))
}

func (v *subMap[K, V]) KeySet() collection.Collection[K] {
	return collection.KeySetOf[K, V](v)
}

func (v *subMap[K, V]) Values() collection.Collection[V] {
	return collection.ValuesOf[K, V](v)
}

func (v *subMap[K, V]) EntrySet() collection.Collection[collection.Entry[K, V]] {
	return collection.EntrySetOf[K, V](v)
}

func (v *subMap[K, V]) Clone() collection.Map[K, V] {
	return SubMap(v.inner.Clone(), v.r)
}

func (v *subMap[K, V]) String() string { return collection.StringOfMap[K, V](v) }
