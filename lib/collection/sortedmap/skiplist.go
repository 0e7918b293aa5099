package sortedmap

import (
	"math"
	"math/rand"
	"time"

	"github.com/golang-collections/collections/stack"
)

// node is one skiplist tower. The head tower carries no entry.
type node[K, V any] struct {
	next []*node[K, V]
	e    *entry[K, V]
}

// newRand returns the height source for a map instance.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// heightFor derives the tower height bound from the estimated element count.
func heightFor(estimate int) int {
	if estimate < 16 {
		estimate = 16
	}
	h := int(math.Ceil(math.Log(float64(estimate)) / math.Log(2)))
	if h < 4 {
		h = 4
	}
	if h > 32 {
		h = 32
	}
	return h
}

// randomHeight draws a tower height with P(h >= k) = 2^-(k-1), capped at
// maxHeight.
func randomHeight(rnd *rand.Rand, maxHeight int) int {
	num := rnd.Intn(1 << 30)
	height := 1
	for (num&1) != 0 && height < maxHeight {
		height++
		num >>= 1
	}
	return height
}

// descend walks the list toward key, pushing the last node visited on each
// level onto the returned stack (level 0 on top). before decides whether a
// candidate still precedes the search target.
func (m *SortedMap[K, V]) descend(before func(e *entry[K, V]) bool) *stack.Stack {
	prevs := stack.New()
	n := m.head
	for level := m.maxHeight - 1; level >= 0; level-- {
		for n.next[level] != nil && before(n.next[level].e) {
			n = n.next[level]
		}
		prevs.Push(n)
	}
	return prevs
}

// firstNodeWhen returns the last node on level 0 for which every visited
// candidate satisfied before; its successor is the first node that does not.
func (m *SortedMap[K, V]) firstNodeWhen(before func(e *entry[K, V]) bool) *node[K, V] {
	n := m.head
	for level := m.maxHeight - 1; level >= 0; level-- {
		for n.next[level] != nil && before(n.next[level].e) {
			n = n.next[level]
		}
	}
	return n
}
