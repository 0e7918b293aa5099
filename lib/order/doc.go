// Package order provides the ordering and equality capabilities used by all
// containers in this library. An Order decides where an element is placed
// inside a container and how it is found again; an Equality decides when two
// elements (or two values) are considered the same.
//
// The package focuses on:
//   - A minimal capability surface (Compare, AreEqual, IndexOf / Hash)
//   - Stateless, allocation-free implementations safe for concurrent use
//   - Adapters so plain functions can act as orders or equalities
//
// Key Components:
//
//   - Order[E]: total order + equality + 32-bit unsigned index. The index is
//     what hash-organized containers use for placement, the comparator is
//     what sorted containers use. Compare(a,b)==0 must imply that a and b
//     occupy the same storage slot.
//
//   - Equality[E]: equality + 64-bit hash, used for container values and for
//     deduplication in distinct views.
//
//   - Built-in orders: Natural (uint32 identity), Int, Uint64, Lexical
//     (strings, sorted), String (strings, hash-arbitrary order).
//
//   - Adapters: OrderFunc, EqualityFunc, OrderedEquality and Standard (a
//     reflect.DeepEqual based fallback equality).
//
// Contract note: an Order must be a strict total order over the element
// domain it is used with. Violating this is a caller error and is not
// detected by the containers (lookups may silently misbehave).
package order
