package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString_SeedSeparation(t *testing.T) {
	h1 := HashString("key", 1)
	h2 := HashString("key", 2)
	assert.NotEqual(t, h1, h2, "different seeds must produce different hashes")
	assert.Equal(t, h1, HashString("key", 1), "hashing is deterministic per seed")
}

func TestHashUint64_Distribution(t *testing.T) {
	// Sequential inputs must not map to sequential outputs.
	seen := map[uint64]bool{}
	for i := uint64(0); i < 1000; i++ {
		seen[HashUint64(i)] = true
	}
	assert.Len(t, seen, 1000)
	assert.NotEqual(t, HashUint64(1), HashUint64(0)+1)
}

func TestGenerateSeed_Unique(t *testing.T) {
	assert.NotEqual(t, GenerateSeed(), GenerateSeed())
}

func TestIntOrder(t *testing.T) {
	o := Int()
	assert.Negative(t, o.Compare(1, 2))
	assert.Positive(t, o.Compare(2, 1))
	assert.Zero(t, o.Compare(3, 3))
	assert.True(t, o.AreEqual(3, 3))
	assert.False(t, o.AreEqual(3, 4))
	assert.NotEqual(t, o.IndexOf(1), o.IndexOf(2), "small ints need distinct indexes")
}

func TestUint64Order(t *testing.T) {
	o := Uint64()
	assert.Negative(t, o.Compare(1, 2))
	assert.Zero(t, o.Compare(7, 7))
	assert.NotEqual(t, o.IndexOf(1), o.IndexOf(2))
}

func TestNaturalOrder(t *testing.T) {
	o := Natural()
	assert.Negative(t, o.Compare(1, 2))
	assert.Equal(t, uint32(42), o.IndexOf(42), "natural index is the identity")
}

func TestLexicalOrder(t *testing.T) {
	o := Lexical()
	assert.Negative(t, o.Compare("a", "b"))
	assert.Zero(t, o.Compare("ab", "ab"))

	// The index preserves relative order of the leading bytes.
	assert.Less(t, o.IndexOf("aaaa"), o.IndexOf("aaab"))
	assert.Less(t, o.IndexOf("a"), o.IndexOf("b"))
}

func TestStringOrder(t *testing.T) {
	o := String()
	assert.True(t, o.AreEqual("x", "x"))
	assert.NotEqual(t, o.IndexOf("key-1"), o.IndexOf("key-2"),
		"shared prefixes must still index apart")
}

func TestStandardEquality(t *testing.T) {
	eq := Standard[[]int]()
	assert.True(t, eq.AreEqual([]int{1, 2}, []int{1, 2}))
	assert.False(t, eq.AreEqual([]int{1, 2}, []int{2, 1}))
	assert.Equal(t, eq.Hash([]int{1, 2}), eq.Hash([]int{1, 2}))
}

func TestComparableEquality(t *testing.T) {
	eq := Comparable[string]()
	assert.True(t, eq.AreEqual("a", "a"))
	assert.False(t, eq.AreEqual("a", "b"))
}

func TestOrderFunc(t *testing.T) {
	reverse := OrderFunc[int](
		func(a, b int) int { return b - a },
		func(e int) uint32 { return uint32(e) },
		func(a, b int) bool { return a == b },
	)
	assert.Positive(t, reverse.Compare(1, 2))
	assert.True(t, reverse.AreEqual(2, 2))
}

func TestOrderedEquality(t *testing.T) {
	eq := OrderedEquality(Int())
	assert.True(t, eq.AreEqual(5, 5))
	assert.NotEqual(t, eq.Hash(5), eq.Hash(6))
}
