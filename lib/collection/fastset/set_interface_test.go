package fastset

import (
	"testing"

	"github.com/fastcoll/fastcoll/lib/collection"
	colltesting "github.com/fastcoll/fastcoll/lib/collection/testing"
	"github.com/fastcoll/fastcoll/lib/order"
)

func TestInterface(t *testing.T) {
	colltesting.RunCollectionTests(t, "Set", func() collection.Collection[int] {
		return New(order.Int(), nil)
	}, colltesting.Unordered())
}
