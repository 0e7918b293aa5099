// Package collection defines the uniform container contracts implemented by
// every storage engine and every view in this library. A container is either
// a Collection (a bag of elements) or a Map (ordered key to value
// associations); views wrap an inner container and implement the identical
// contract, which makes arbitrary view nesting possible (a sorted view of a
// filtered view of an atomic view behaves like any other map).
//
// The package focuses on:
//   - One flat interface per container kind, composition over inheritance
//   - Lazy, non-restartable iterators as the single traversal primitive
//   - Explicit absence: lookups return (value, ok), never errors
//   - Typed panics for contract violations, mirroring the standard library's
//     treatment of programmer errors
//
// Key Components:
//
//   - Collection[E]: size, membership, add/remove, bulk removal, ascending
//     and descending iteration, cloning and splitting for parallel work.
//
//   - Map[K, V]: the keyed counterpart, plus entry access and the
//     keySet/values/entrySet projection views.
//
//   - Entry[K, V]: an immutable-key key/value association owned by the
//     storage engine that created it. SetValue always panics: value mutation
//     is mediated by the owning map (Put) so derived views stay consistent.
//
//   - Iterator[E]: Next/Value pull iterator. A fresh iterator is required
//     for every pass; iterators are not safe for concurrent use unless the
//     underlying container provides it.
//
//   - Function types (Predicate, Function, Consumer, BinaryOperator) used by
//     views and bulk operations.
//
//   - Package-level helpers (ForEach, Reduce, AnyMatch, CollectSlice, Equal,
//     EqualMaps, StringOf) covering the traversal and comparison surface the
//     way the standard library's maps and slices packages do.
//
// Error Handling:
//
// Absence is not an error: Get on a missing key returns the zero value and
// false. Contract violations (writing to a read-only view, writing outside a
// sub-range view's bounds, reading an exhausted iterator, capacity overflow
// on resize) panic with one of the typed sentinel errors of this package and
// are never silently ignored.
package collection
