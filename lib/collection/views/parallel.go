package views

import (
	"runtime"
	"sync"

	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
	"github.com/puzpuzpuz/xsync/v3"
)

// ParallelOptions configures the fan-out of bulk operations.
type ParallelOptions struct {
	// Concurrency is the maximum partition count; 0 selects
	// runtime.NumCPU().
	Concurrency int
}

// DefaultParallelOptions returns the default parallel view options.
func DefaultParallelOptions() *ParallelOptions {
	return &ParallelOptions{Concurrency: runtime.NumCPU()}
}

// Parallel returns a view of c whose bulk operations (ForEach, Reduce,
// AnyMatch, FindAny, RemoveIf, ParallelSize, Collect) fan out over disjoint
// partitions obtained from TrySplit. Non-bulk operations delegate to the
// inner collection unchanged.
//
// The inner collection must be safe for the concurrent reads the fan-out
// performs; wrap it with Atomic or Shared first when writers run
// concurrently. Bulk operations run to completion; cancellation, if
// needed, belongs in the caller's predicate.
func Parallel[E any](c collection.Collection[E], opts *ParallelOptions) *ParallelView[E] {
	concurrency := DefaultParallelOptions().Concurrency
	if opts != nil && opts.Concurrency > 0 {
		concurrency = opts.Concurrency
	}
	return &ParallelView[E]{inner: c, concurrency: concurrency}
}

// ParallelView wraps a collection with fan-out bulk operations. It also
// implements the plain collection contract by delegation, so it nests like
// any other view.
type ParallelView[E any] struct {
	inner       collection.Collection[E]
	concurrency int
}

// partitions returns disjoint sub-views covering the inner collection,
// falling back to a single partition when splitting is unavailable.
func (v *ParallelView[E]) partitions() []collection.Collection[E] {
	parts := v.inner.TrySplit(v.concurrency)
	if len(parts) == 0 {
		return []collection.Collection[E]{v.inner}
	}
	return parts
}

// fanOut runs fn over each partition on its own goroutine.
func fanOut[E any](parts []collection.Collection[E], fn func(i int, part collection.Collection[E])) {
	var wg sync.WaitGroup
	for i, part := range parts {
		wg.Add(1)
		go func(i int, part collection.Collection[E]) {
			defer wg.Done()
			fn(i, part)
		}(i, part)
	}
	wg.Wait()
}

// ForEach applies fn to every element; partitions run concurrently, so fn
// must be safe to call from multiple goroutines.
func (v *ParallelView[E]) ForEach(fn collection.Consumer[E]) {
	fanOut(v.partitions(), func(_ int, part collection.Collection[E]) {
		collection.ForEach(part, fn)
	})
}

// Reduce folds every element with op, which must be associative and treat
// identity as neutral; partial results per partition combine in partition
// order.
func (v *ParallelView[E]) Reduce(identity E, op collection.BinaryOperator[E]) E {
	parts := v.partitions()
	partials := make([]E, len(parts))
	fanOut(parts, func(i int, part collection.Collection[E]) {
		partials[i] = collection.Reduce(part, identity, op)
	})
	result := identity
	for _, partial := range partials {
		result = op(result, partial)
	}
	return result
}

// AnyMatch reports whether any element satisfies p.
func (v *ParallelView[E]) AnyMatch(p collection.Predicate[E]) bool {
	found := xsync.NewCounter()
	fanOut(v.partitions(), func(_ int, part collection.Collection[E]) {
		if collection.AnyMatch(part, p) {
			found.Inc()
		}
	})
	return found.Value() > 0
}

// FindAny returns some element satisfying p; which one is unspecified when
// several partitions match.
func (v *ParallelView[E]) FindAny(p collection.Predicate[E]) (E, bool) {
	var (
		mu    sync.Mutex
		match E
		ok    bool
	)
	fanOut(v.partitions(), func(_ int, part collection.Collection[E]) {
		if e, found := collection.FindAny(part, p); found {
			mu.Lock()
			if !ok {
				match, ok = e, true
			}
			mu.Unlock()
		}
	})
	return match, ok
}

// RemoveIf evaluates p concurrently per partition, then applies one
// coordinated removal against the unsplit inner collection, so structural
// mutation never races across partitions.
func (v *ParallelView[E]) RemoveIf(p collection.Predicate[E]) bool {
	parts := v.partitions()
	matched := make([][]E, len(parts))
	fanOut(parts, func(i int, part collection.Collection[E]) {
		it := part.Iterator()
		for it.Next() {
			if e := it.Value(); p(e) {
				matched[i] = append(matched[i], e)
			}
		}
	})

	doomed := newSeenSet(v.inner.Equality())
	any := false
	for _, elems := range matched {
		for _, e := range elems {
			doomed.add(e)
			any = true
		}
	}
	if !any {
		return false
	}
	return v.inner.RemoveIf(doomed.contains)
}

// ParallelSize counts elements partition by partition.
func (v *ParallelView[E]) ParallelSize() int {
	n := xsync.NewCounter()
	fanOut(v.partitions(), func(_ int, part collection.Collection[E]) {
		n.Add(int64(part.Size()))
	})
	return int(n.Value())
}

// Collect materializes every element, partition results concatenated in
// partition order.
func (v *ParallelView[E]) Collect() []E {
	parts := v.partitions()
	chunks := make([][]E, len(parts))
	fanOut(parts, func(i int, part collection.Collection[E]) {
		chunks[i] = collection.CollectSlice(part)
	})
	var out []E
	for _, chunk := range chunks {
		out = append(out, chunk...)
	}
	return out
}

// --------------------------------------------------------------------------
// Collection Contract (delegation)
// --------------------------------------------------------------------------

func (v *ParallelView[E]) Equality() order.Equality[E] { return v.inner.Equality() }
func (v *ParallelView[E]) Size() int                   { return v.inner.Size() }
func (v *ParallelView[E]) IsEmpty() bool               { return v.inner.IsEmpty() }
func (v *ParallelView[E]) Contains(e E) bool           { return v.inner.Contains(e) }
func (v *ParallelView[E]) Add(e E) bool                { return v.inner.Add(e) }
func (v *ParallelView[E]) Remove(e E) bool             { return v.inner.Remove(e) }
func (v *ParallelView[E]) Clear()                      { v.inner.Clear() }

func (v *ParallelView[E]) Iterator() collection.Iterator[E] {
	return v.inner.Iterator()
}

func (v *ParallelView[E]) DescendingIterator() collection.Iterator[E] {
	return v.inner.DescendingIterator()
}

func (v *ParallelView[E]) Clone() collection.Collection[E] {
	return Parallel(v.inner.Clone(), &ParallelOptions{Concurrency: v.concurrency})
}

func (v *ParallelView[E]) TrySplit(n int) []collection.Collection[E] {
	return v.inner.TrySplit(n)
}

func (v *ParallelView[E]) String() string { return collection.StringOf[E](v) }
