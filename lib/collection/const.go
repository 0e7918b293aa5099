package collection

import (
	"github.com/fastcoll/fastcoll/lib/order"
)

// NewEntry returns an immutable entry, useful for EntrySet.Add and for
// comparisons in tests. SetValue panics like every other entry.
func NewEntry[K, V any](key K, value V) Entry[K, V] {
	return basicEntry[K, V]{key: key, value: value}
}

type basicEntry[K, V any] struct {
	key   K
	value V
}

func (e basicEntry[K, V]) Key() K   { return e.key }
func (e basicEntry[K, V]) Value() V { return e.value }

func (e basicEntry[K, V]) SetValue(V) V {
	panic(ErrUnsupportedOperation)
}

func (e basicEntry[K, V]) String() string { return FormatEntry[K, V](e) }

// NewConst returns an immutable collection over the given elements. Write
// operations panic with ErrUnsupportedOperation; the elements slice is not
// copied and must not be mutated by the caller afterwards.
func NewConst[E any](eq order.Equality[E], elems ...E) Collection[E] {
	return &constCollection[E]{eq: eq, elems: elems}
}

type constCollection[E any] struct {
	eq    order.Equality[E]
	elems []E
}

func (c *constCollection[E]) Equality() order.Equality[E] { return c.eq }
func (c *constCollection[E]) Size() int                   { return len(c.elems) }
func (c *constCollection[E]) IsEmpty() bool               { return len(c.elems) == 0 }

func (c *constCollection[E]) Contains(e E) bool {
	for _, v := range c.elems {
		if c.eq.AreEqual(v, e) {
			return true
		}
	}
	return false
}

func (c *constCollection[E]) Add(E) bool                 { panic(ErrUnsupportedOperation) }
func (c *constCollection[E]) Remove(E) bool              { panic(ErrUnsupportedOperation) }
func (c *constCollection[E]) RemoveIf(Predicate[E]) bool { panic(ErrUnsupportedOperation) }
func (c *constCollection[E]) Clear()                     { panic(ErrUnsupportedOperation) }

func (c *constCollection[E]) Iterator() Iterator[E] {
	return SliceIterator(c.elems)
}

func (c *constCollection[E]) DescendingIterator() Iterator[E] {
	return ReverseSliceIterator(c.elems)
}

func (c *constCollection[E]) Clone() Collection[E] {
	cp := make([]E, len(c.elems))
	copy(cp, c.elems)
	return &constCollection[E]{eq: c.eq, elems: cp}
}

func (c *constCollection[E]) TrySplit(n int) []Collection[E] {
	return splitSlice(c.elems, n, c.eq)
}
