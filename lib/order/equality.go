package order

import (
	"fmt"
	"reflect"
)

// Standard returns a fallback equality for arbitrary types: deep structural
// equality with a hash derived from the value's printed form. It is meant
// for value types without a better capability (e.g. the output side of a
// mapped view) and for tests; prefer a typed Equality on hot paths.
func Standard[E any]() Equality[E] {
	return standardEquality[E]{}
}

type standardEquality[E any] struct{}

func (standardEquality[E]) AreEqual(a, b E) bool {
	return reflect.DeepEqual(a, b)
}

func (standardEquality[E]) Hash(e E) uint64 {
	return HashString(fmt.Sprintf("%v", e), 0)
}

// Comparable returns an equality for comparable types using == and a
// hash of the value's printed form.
func Comparable[E comparable]() Equality[E] {
	return comparableEquality[E]{}
}

type comparableEquality[E comparable] struct{}

func (comparableEquality[E]) AreEqual(a, b E) bool { return a == b }

func (comparableEquality[E]) Hash(e E) uint64 {
	return HashString(fmt.Sprintf("%v", e), 0)
}
