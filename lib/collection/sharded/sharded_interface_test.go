package sharded

import (
	"testing"

	"github.com/fastcoll/fastcoll/lib/collection"
	colltesting "github.com/fastcoll/fastcoll/lib/collection/testing"
	"github.com/fastcoll/fastcoll/lib/order"
)

func TestInterface(t *testing.T) {
	colltesting.RunMapTests(t, "ShardedMap", func() collection.Map[string, int] {
		return New[string, int](order.String(), order.Comparable[int](), nil)
	}, colltesting.Unordered())
}

func BenchmarkInterface(b *testing.B) {
	colltesting.RunMapBenchmarks(b, "ShardedMap", func() collection.Map[string, int] {
		return New[string, int](order.String(), order.Comparable[int](), nil)
	})
}
