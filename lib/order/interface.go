package order

// Order defines a total order plus a fast integer index over elements of
// type E. Containers use the index for hash-style placement and the
// comparator for sorted placement; both must agree: Compare(a,b) == 0 must
// imply that a and b share a storage slot.
type Order[E any] interface {
	// Compare returns a negative value if a sorts before b, zero if they
	// are equivalent under this order, and a positive value otherwise.
	Compare(a, b E) int

	// AreEqual reports whether a and b are the same element under this
	// order. AreEqual(a, b) implies Compare(a, b) == 0.
	AreEqual(a, b E) bool

	// IndexOf returns the unsigned 32-bit index of e. Indices should be
	// consistent with Compare where cheaply possible (same relative
	// ordering), which lets index-organized storage approximate the order.
	IndexOf(e E) uint32
}

// Equality defines equality plus a 64-bit hash over elements of type E.
// It is the capability containers use for value comparison and for
// deduplication in distinct views.
type Equality[E any] interface {
	// AreEqual reports whether a and b are considered the same.
	AreEqual(a, b E) bool

	// Hash returns a hash consistent with AreEqual: equal elements must
	// hash to the same value.
	Hash(e E) uint64
}
