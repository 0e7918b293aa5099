package sortedmap

import (
	"testing"

	"github.com/fastcoll/fastcoll/lib/collection"
	colltesting "github.com/fastcoll/fastcoll/lib/collection/testing"
	"github.com/fastcoll/fastcoll/lib/order"
)

func TestInterface(t *testing.T) {
	colltesting.RunMapTests(t, "SortedMap", func() collection.Map[string, int] {
		return New[string, int](order.String(), order.Comparable[int](), nil)
	}, colltesting.SortedOrder())
}

func BenchmarkInterface(b *testing.B) {
	colltesting.RunMapBenchmarks(b, "SortedMap", func() collection.Map[string, int] {
		return New[string, int](order.String(), order.Comparable[int](), nil)
	})
}
