package views_test

import (
	"testing"

	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/collection/fastmap"
	"github.com/fastcoll/fastcoll/lib/collection/fastset"
	"github.com/fastcoll/fastcoll/lib/collection/fasttable"
	"github.com/fastcoll/fastcoll/lib/collection/sortedmap"
	colltesting "github.com/fastcoll/fastcoll/lib/collection/testing"
	"github.com/fastcoll/fastcoll/lib/collection/views"
	"github.com/fastcoll/fastcoll/lib/order"
)

// The wrappers must uphold the full map and collection contracts on top of
// any engine, so each one runs the shared conformance suite.

func TestInterface_Maps(t *testing.T) {
	newHashMap := func() collection.Map[string, int] {
		return fastmap.New[string, int](order.String(), order.Comparable[int](), nil)
	}
	newSortedMap := func() collection.Map[string, int] {
		return sortedmap.New[string, int](order.String(), order.Comparable[int](), nil)
	}

	colltesting.RunMapTests(t, "Atomic(FastMap)", func() collection.Map[string, int] {
		return views.Atomic(newHashMap())
	}, colltesting.Unordered())

	colltesting.RunMapTests(t, "Atomic(SortedMap)", func() collection.Map[string, int] {
		return views.Atomic(newSortedMap())
	}, colltesting.SortedOrder())

	colltesting.RunMapTests(t, "Shared(FastMap)", func() collection.Map[string, int] {
		return views.Shared(newHashMap())
	}, colltesting.Unordered())

	colltesting.RunMapTests(t, "Shared(SortedMap)", func() collection.Map[string, int] {
		return views.Shared(newSortedMap())
	}, colltesting.SortedOrder())

	colltesting.RunMapTests(t, "Linked(FastMap)", func() collection.Map[string, int] {
		return views.Linked(newHashMap())
	}, colltesting.Unordered())

	colltesting.RunMapTests(t, "ReversedMap(SortedMap)", func() collection.Map[string, int] {
		// Double reversal restores the ascending contract
		return views.ReversedMap(views.ReversedMap(newSortedMap()))
	}, colltesting.SortedOrder())

	colltesting.RunMapTests(t, "FilteredMap(all)", func() collection.Map[string, int] {
		return views.FilteredMap(newHashMap(), func(collection.Entry[string, int]) bool { return true })
	}, colltesting.Unordered())

	colltesting.RunMapTests(t, "UnmodifiableMap", func() collection.Map[string, int] {
		m := newHashMap()
		m.Put("seed", 0)
		return views.UnmodifiableMap(m)
	}, colltesting.ReadOnly())
}

func TestInterface_Collections(t *testing.T) {
	newTable := func() collection.Collection[int] {
		return fasttable.New(order.Comparable[int]())
	}
	newSet := func() collection.Collection[int] {
		return fastset.New(order.Int(), nil)
	}

	colltesting.RunCollectionTests(t, "AtomicCollection(Table)", func() collection.Collection[int] {
		return views.AtomicCollection(newTable())
	})

	colltesting.RunCollectionTests(t, "SharedCollection(Set)", func() collection.Collection[int] {
		return views.SharedCollection(newSet())
	}, colltesting.Unordered())

	colltesting.RunCollectionTests(t, "Filtered(all)", func() collection.Collection[int] {
		return views.Filtered(newTable(), func(int) bool { return true })
	})

	colltesting.RunCollectionTests(t, "Distinct(Table)", func() collection.Collection[int] {
		return views.Distinct(newTable())
	})

	colltesting.RunCollectionTests(t, "Reversed(Reversed(Table))", func() collection.Collection[int] {
		return views.Reversed(views.Reversed(newTable()))
	})

	colltesting.RunCollectionTests(t, "Parallel(Table)", func() collection.Collection[int] {
		return views.Parallel(newTable(), nil)
	})

	colltesting.RunCollectionTests(t, "Mapped(identity)", func() collection.Collection[int] {
		src := newTable()
		src.Add(1)
		src.Add(2)
		return views.Mapped(src, func(e int) int { return e }, order.Comparable[int]())
	}, colltesting.ReadOnly())

	colltesting.RunCollectionTests(t, "Unmodifiable(Table)", func() collection.Collection[int] {
		src := newTable()
		src.Add(1)
		return views.Unmodifiable(src)
	}, colltesting.ReadOnly())
}
