package collection

import (
	"github.com/fastcoll/fastcoll/lib/order"
)

// Iterator is the single traversal primitive. Usage:
//
//	it := c.Iterator()
//	for it.Next() {
//	    v := it.Value()
//	    ...
//	}
//
// Iterators are lazy, finite and not restartable; obtain a fresh iterator
// for every pass. Value panics with ErrNoSuchElement before the first Next
// and after Next has returned false.
type Iterator[E any] interface {
	// Next advances to the next element and reports whether one exists.
	Next() bool
	// Value returns the current element.
	Value() E
}

// Predicate reports whether an element matches.
type Predicate[E any] func(e E) bool

// Function transforms a T into an R.
type Function[T, R any] func(t T) R

// Consumer accepts an element during traversal.
type Consumer[E any] func(e E)

// BinaryOperator combines two elements; reduction requires it to be
// associative.
type BinaryOperator[E any] func(a, b E) E

// Collection is the uniform contract shared by the storage engines and by
// every collection view. Implementations are not safe for concurrent use
// unless documented otherwise; thread safety is obtained by wrapping with
// the atomic or shared views.
type Collection[E any] interface {
	// Equality returns the element equality this collection was built with.
	Equality() order.Equality[E]

	// Size returns the number of elements. Views that filter or
	// deduplicate count by iteration, making Size O(n) for them.
	Size() int

	// IsEmpty reports whether the collection has no elements.
	IsEmpty() bool

	// Contains reports whether the collection holds an element equal to e.
	Contains(e E) bool

	// Add inserts e and reports whether the collection changed. Views may
	// reject the insertion (filtered views return false, read-only views
	// panic ErrUnsupportedOperation).
	Add(e E) bool

	// Remove deletes one element equal to e and reports whether the
	// collection changed.
	Remove(e E) bool

	// RemoveIf deletes every element matching p and reports whether the
	// collection changed.
	RemoveIf(p Predicate[E]) bool

	// Clear removes all elements.
	Clear()

	// Iterator returns a fresh ascending iterator.
	Iterator() Iterator[E]

	// DescendingIterator returns a fresh descending iterator.
	DescendingIterator() Iterator[E]

	// Clone returns an independent copy: mutating the original never
	// affects the clone and vice versa. Views clone their delegate
	// recursively.
	Clone() Collection[E]

	// TrySplit partitions the collection into up to n disjoint read-only
	// sub-views for parallel processing. It returns at least one view;
	// containers that cannot split return themselves.
	TrySplit(n int) []Collection[E]
}

// Entry is one key to value association owned by the map that created it.
// Views hold entries by reference and never copy them for plain lookups.
type Entry[K, V any] interface {
	// Key returns the immutable key.
	Key() K
	// Value returns the current value.
	Value() V
	// SetValue always panics with ErrUnsupportedOperation: value mutation
	// is mediated by the owning map via Put so size bookkeeping and
	// derived views stay consistent.
	SetValue(v V) V
}

// Map is the uniform keyed contract shared by the storage engines and by
// every map view.
type Map[K, V any] interface {
	// KeyOrder returns the order the map organizes its keys with.
	KeyOrder() order.Order[K]

	// ValueEquality returns the equality used for ContainsValue and for
	// the Values projection.
	ValueEquality() order.Equality[V]

	// Size returns the number of entries.
	Size() int

	// IsEmpty reports whether the map has no entries.
	IsEmpty() bool

	// ContainsKey reports whether a mapping for key exists.
	ContainsKey(key K) bool

	// ContainsValue reports whether any entry holds a value equal to v
	// under ValueEquality. O(n).
	ContainsValue(v V) bool

	// Get returns the value mapped to key, with ok reporting presence.
	// A zero value with ok == true is an ordinary stored value and is
	// always distinguishable from absence.
	Get(key K) (v V, ok bool)

	// GetEntry returns the entry for key, or nil if there is no mapping.
	GetEntry(key K) Entry[K, V]

	// Put associates key with value, returning the previous value if the
	// key was already mapped.
	Put(key K, value V) (previous V, replaced bool)

	// PutIfAbsent associates key with value only if no mapping exists.
	// It returns the value now mapped to key and whether this call
	// inserted it.
	PutIfAbsent(key K, value V) (current V, inserted bool)

	// Remove deletes the mapping for key, returning the removed value.
	Remove(key K) (previous V, removed bool)

	// RemoveIf deletes every entry matching p and reports whether the map
	// changed.
	RemoveIf(p Predicate[Entry[K, V]]) bool

	// Clear removes all entries.
	Clear()

	// Iterator returns a fresh iterator over entries in the map's order.
	Iterator() Iterator[Entry[K, V]]

	// DescendingIterator returns a fresh iterator in reverse order.
	DescendingIterator() Iterator[Entry[K, V]]

	// IteratorFrom returns an ascending iterator starting at the first
	// entry whose key is not before fromKey in iteration order.
	IteratorFrom(fromKey K) Iterator[Entry[K, V]]

	// DescendingIteratorFrom returns a descending iterator starting at the
	// last entry whose key is not after fromKey in iteration order.
	DescendingIteratorFrom(fromKey K) Iterator[Entry[K, V]]

	// KeySet returns a live write-through view over the keys: removing a
	// key removes the mapping.
	KeySet() Collection[K]

	// Values returns a live view over the values; removal is supported,
	// adding is not.
	Values() Collection[V]

	// EntrySet returns a live view over the entries; Add puts, Remove
	// removes the mapping for the entry's key if the values match.
	EntrySet() Collection[Entry[K, V]]

	// Clone returns an independent deep-structural copy.
	Clone() Map[K, V]
}
