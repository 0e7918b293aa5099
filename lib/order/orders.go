package order

import (
	"crypto/rand"
	"encoding/binary"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Hash Helper Functions
// --------------------------------------------------------------------------

// GenerateSeed creates a random seed for per-instance hash distribution, so
// two containers never share a probe sequence.
func GenerateSeed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// HashString generates a hash value for a string with a seed.
// This function uses the FNV-1a hash algorithm, which is fast and has good
// distribution.
func HashString(s string, seed uint64) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)

	hash := uint64(offset64) ^ seed

	for i := 0; i < len(s); i++ {
		hash ^= uint64(s[i])
		hash *= prime64
	}

	return hash
}

// HashUint64 mixes a 64-bit value into a well distributed hash
// (splitmix64 finalizer).
func HashUint64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// --------------------------------------------------------------------------
// Built-in Orders
// --------------------------------------------------------------------------

// Natural returns the identity order over uint32 values: the index is the
// value itself, iteration in index-organized containers follows numeric
// order.
func Natural() Order[uint32] {
	return naturalOrder{}
}

type naturalOrder struct{}

func (naturalOrder) Compare(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (naturalOrder) AreEqual(a, b uint32) bool { return a == b }
func (naturalOrder) IndexOf(e uint32) uint32   { return e }

// Int returns the numeric order over int values. The index is a monotone
// 32-bit projection of the value (high bits, sign adjusted), so relative
// index order follows numeric order at a coarse granularity.
func Int() Order[int] {
	return intOrder{}
}

type intOrder struct{}

func (intOrder) Compare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (intOrder) AreEqual(a, b int) bool { return a == b }

func (intOrder) IndexOf(e int) uint32 {
	x := uint64(int64(e))
	return uint32(x) ^ uint32(x>>32)
}

// Uint64 returns the numeric order over uint64 values.
func Uint64() Order[uint64] {
	return uint64Order{}
}

type uint64Order struct{}

func (uint64Order) Compare(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (uint64Order) AreEqual(a, b uint64) bool { return a == b }
func (uint64Order) IndexOf(e uint64) uint32   { return uint32(e) ^ uint32(e>>32) }

// Lexical returns the lexicographic order over strings. The index is built
// from the first four bytes of the string, which keeps index order and
// lexical order consistent.
func Lexical() Order[string] {
	return lexicalOrder{}
}

type lexicalOrder struct{}

func (lexicalOrder) Compare(a, b string) int  { return strings.Compare(a, b) }
func (lexicalOrder) AreEqual(a, b string) bool { return a == b }

func (lexicalOrder) IndexOf(e string) uint32 {
	var idx uint32
	for i := 0; i < 4; i++ {
		idx <<= 8
		if i < len(e) {
			idx |= uint32(e[i])
		}
	}
	return idx
}

// String returns a hash-arbitrary order over strings: fast placement, no
// meaningful iteration order. Compare falls back to lexicographic comparison
// so the total-order contract still holds for sorted containers.
func String() Order[string] {
	return stringOrder{}
}

type stringOrder struct{}

func (stringOrder) Compare(a, b string) int  { return strings.Compare(a, b) }
func (stringOrder) AreEqual(a, b string) bool { return a == b }

func (stringOrder) IndexOf(e string) uint32 {
	return uint32(HashString(e, 0))
}

// --------------------------------------------------------------------------
// Adapters
// --------------------------------------------------------------------------

// OrderFunc assembles an Order from plain functions. The equal function may
// be nil, in which case Compare(a,b) == 0 is used.
func OrderFunc[E any](compare func(a, b E) int, index func(e E) uint32, equal func(a, b E) bool) Order[E] {
	if equal == nil {
		equal = func(a, b E) bool { return compare(a, b) == 0 }
	}
	return funcOrder[E]{compare: compare, index: index, equal: equal}
}

type funcOrder[E any] struct {
	compare func(a, b E) int
	index   func(e E) uint32
	equal   func(a, b E) bool
}

func (o funcOrder[E]) Compare(a, b E) int    { return o.compare(a, b) }
func (o funcOrder[E]) AreEqual(a, b E) bool  { return o.equal(a, b) }
func (o funcOrder[E]) IndexOf(e E) uint32    { return o.index(e) }

// EqualityFunc assembles an Equality from plain functions.
func EqualityFunc[E any](equal func(a, b E) bool, hash func(e E) uint64) Equality[E] {
	return funcEquality[E]{equal: equal, hash: hash}
}

type funcEquality[E any] struct {
	equal func(a, b E) bool
	hash  func(e E) uint64
}

func (e funcEquality[E]) AreEqual(a, b E) bool { return e.equal(a, b) }
func (e funcEquality[E]) Hash(v E) uint64      { return e.hash(v) }

// OrderedEquality exposes an Order as an Equality; the hash is derived from
// the order's index.
func OrderedEquality[E any](o Order[E]) Equality[E] {
	return orderedEquality[E]{o}
}

type orderedEquality[E any] struct {
	o Order[E]
}

func (e orderedEquality[E]) AreEqual(a, b E) bool { return e.o.AreEqual(a, b) }
func (e orderedEquality[E]) Hash(v E) uint64      { return HashUint64(uint64(e.o.IndexOf(v))) }
