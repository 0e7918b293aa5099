// Package fastset implements a set on top of the hash storage engine:
// elements are the keys of a fastmap with empty values, so placement,
// probing and resize behavior are exactly those of the map engine.
//
// Thread-safety: a Set is not safe for concurrent use; wrap it with the
// atomic or shared views of the views package when concurrency is needed.
package fastset
