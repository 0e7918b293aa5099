package collection

// --------------------------------------------------------------------------
// Iterator Building Blocks
// --------------------------------------------------------------------------

// SliceIterator returns an iterator over the given slice. The slice is not
// copied; callers that need isolation must pass a private copy.
func SliceIterator[E any](elems []E) Iterator[E] {
	return &sliceIterator[E]{elems: elems, pos: -1}
}

// ReverseSliceIterator returns an iterator over the given slice from last
// element to first.
func ReverseSliceIterator[E any](elems []E) Iterator[E] {
	return &sliceIterator[E]{elems: elems, pos: len(elems), reverse: true}
}

type sliceIterator[E any] struct {
	elems   []E
	pos     int
	reverse bool
	valid   bool
}

func (it *sliceIterator[E]) Next() bool {
	if it.reverse {
		it.pos--
		it.valid = it.pos >= 0
	} else {
		it.pos++
		it.valid = it.pos < len(it.elems)
	}
	return it.valid
}

func (it *sliceIterator[E]) Value() E {
	if !it.valid {
		panic(ErrNoSuchElement)
	}
	return it.elems[it.pos]
}

// EmptyIterator returns an iterator that yields nothing.
func EmptyIterator[E any]() Iterator[E] {
	return &sliceIterator[E]{pos: -1}
}

// FuncIterator adapts a pull function into an Iterator. The function
// returns the next element and whether one existed.
func FuncIterator[E any](next func() (E, bool)) Iterator[E] {
	return &funcIterator[E]{next: next}
}

type funcIterator[E any] struct {
	next    func() (E, bool)
	current E
	valid   bool
}

func (it *funcIterator[E]) Next() bool {
	e, ok := it.next()
	if !ok {
		it.valid = false
		return false
	}
	it.current = e
	it.valid = true
	return true
}

func (it *funcIterator[E]) Value() E {
	if !it.valid {
		panic(ErrNoSuchElement)
	}
	return it.current
}

// --------------------------------------------------------------------------
// Traversal Helpers
// --------------------------------------------------------------------------

// ForEach applies fn to every element of a fresh pass over c.
func ForEach[E any](c Collection[E], fn Consumer[E]) {
	for it := c.Iterator(); it.Next(); {
		fn(it.Value())
	}
}

// Reduce folds the collection with op starting from initial. For parallel
// use op must be associative.
func Reduce[E any](c Collection[E], initial E, op BinaryOperator[E]) E {
	acc := initial
	for it := c.Iterator(); it.Next(); {
		acc = op(acc, it.Value())
	}
	return acc
}

// AnyMatch reports whether any element matches p; it stops at the first
// match.
func AnyMatch[E any](c Collection[E], p Predicate[E]) bool {
	for it := c.Iterator(); it.Next(); {
		if p(it.Value()) {
			return true
		}
	}
	return false
}

// FindAny returns an arbitrary element matching p.
func FindAny[E any](c Collection[E], p Predicate[E]) (E, bool) {
	for it := c.Iterator(); it.Next(); {
		if v := it.Value(); p(v) {
			return v, true
		}
	}
	var zero E
	return zero, false
}

// CollectSlice drains a fresh pass over c into a new slice.
func CollectSlice[E any](c Collection[E]) []E {
	out := make([]E, 0, c.Size())
	for it := c.Iterator(); it.Next(); {
		out = append(out, it.Value())
	}
	return out
}

// DrainIterator consumes the remainder of it into a new slice.
func DrainIterator[E any](it Iterator[E]) []E {
	var out []E
	for it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// CountIterator consumes the remainder of it and returns the element count.
func CountIterator[E any](it Iterator[E]) int {
	n := 0
	for it.Next() {
		n++
	}
	return n
}
