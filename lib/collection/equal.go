package collection

import (
	"fmt"
	"reflect"
	"strings"
)

// Equal reports whether two collections hold the same elements in the same
// iteration order, compared with eq. This is the library's container
// equality surface, done as package functions the way the standard library's
// maps.Equal and slices.Equal are.
func Equal[E any](a, b Collection[E], eq func(x, y E) bool) bool {
	if a.Size() != b.Size() {
		return false
	}
	ia, ib := a.Iterator(), b.Iterator()
	for ia.Next() {
		if !ib.Next() || !eq(ia.Value(), ib.Value()) {
			return false
		}
	}
	return !ib.Next()
}

// EqualMaps reports whether two maps hold the same key to value
// associations, irrespective of iteration order. Keys are matched with b's
// lookup (i.e. b's key order) and values with a's value equality.
func EqualMaps[K, V any](a, b Map[K, V]) bool {
	if a.Size() != b.Size() {
		return false
	}
	eq := a.ValueEquality()
	for it := a.Iterator(); it.Next(); {
		e := it.Value()
		v, ok := b.Get(e.Key())
		if !ok || !eq.AreEqual(e.Value(), v) {
			return false
		}
	}
	return true
}

// EntryEqual implements the standard entry equality contract: two entries
// are equal iff both keys and both values are deeply equal. Note that this
// deliberately uses default (deep) equality, not the owning map's configured
// value equality.
func EntryEqual[K, V any](a, b Entry[K, V]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return reflect.DeepEqual(a.Key(), b.Key()) && reflect.DeepEqual(a.Value(), b.Value())
}

// StringOf renders a collection as "{e1, e2, ...}" in iteration order.
func StringOf[E any](c Collection[E]) string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for it := c.Iterator(); it.Next(); {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", it.Value())
	}
	sb.WriteByte('}')
	return sb.String()
}

// StringOfMap renders a map as "{k1=v1, k2=v2, ...}" in iteration order.
func StringOfMap[K, V any](m Map[K, V]) string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for it := m.Iterator(); it.Next(); {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		e := it.Value()
		fmt.Fprintf(&sb, "%v=%v", e.Key(), e.Value())
	}
	sb.WriteByte('}')
	return sb.String()
}

// FormatEntry renders one entry as "key=value".
func FormatEntry[K, V any](e Entry[K, V]) string {
	return fmt.Sprintf("%v=%v", e.Key(), e.Value())
}
