package views

import (
	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
)

// Mapped returns a read-only view of c with fn applied lazily to each
// element. The function is generally not invertible, so every write panics
// ErrUnsupportedOperation. eq defines equality for the transformed
// elements; pass order.Standard when no better equality exists.
func Mapped[T, R any](c collection.Collection[T], fn collection.Function[T, R], eq order.Equality[R]) collection.Collection[R] {
	return &mappedCollection[T, R]{inner: c, fn: fn, eq: eq}
}

type mappedCollection[T, R any] struct {
	inner collection.Collection[T]
	fn    collection.Function[T, R]
	eq    order.Equality[R]
}

func (v *mappedCollection[T, R]) Equality() order.Equality[R] { return v.eq }
func (v *mappedCollection[T, R]) Size() int                   { return v.inner.Size() }
func (v *mappedCollection[T, R]) IsEmpty() bool               { return v.inner.IsEmpty() }

func (v *mappedCollection[T, R]) Contains(e R) bool {
	it := v.Iterator()
	for it.Next() {
		if v.eq.AreEqual(it.Value(), e) {
			return true
		}
	}
	return false
}

func (v *mappedCollection[T, R]) Add(R) bool    { panic(collection.ErrUnsupportedOperation) }
func (v *mappedCollection[T, R]) Remove(R) bool { panic(collection.ErrUnsupportedOperation) }
func (v *mappedCollection[T, R]) RemoveIf(collection.Predicate[R]) bool {
	panic(collection.ErrUnsupportedOperation)
}
func (v *mappedCollection[T, R]) Clear() { panic(collection.ErrUnsupportedOperation) }

func (v *mappedCollection[T, R]) Iterator() collection.Iterator[R] {
	return mapIterator(v.inner.Iterator(), v.fn)
}

func (v *mappedCollection[T, R]) DescendingIterator() collection.Iterator[R] {
	return mapIterator(v.inner.DescendingIterator(), v.fn)
}

func (v *mappedCollection[T, R]) Clone() collection.Collection[R] {
	return Mapped(v.inner.Clone(), v.fn, v.eq)
}

func (v *mappedCollection[T, R]) TrySplit(n int) []collection.Collection[R] {
	inner := v.inner.TrySplit(n)
	if inner == nil {
		return nil
	}
	parts := make([]collection.Collection[R], len(inner))
	for i, part := range inner {
		parts[i] = Mapped(part, v.fn, v.eq)
	}
	return parts
}

func (v *mappedCollection[T, R]) String() string { return collection.StringOf[R](v) }

func mapIterator[T, R any](it collection.Iterator[T], fn collection.Function[T, R]) collection.Iterator[R] {
	return collection.FuncIterator(func() (R, bool) {
		if !it.Next() {
			var zero R
			return zero, false
		}
		return fn(it.Value()), true
	})
}
