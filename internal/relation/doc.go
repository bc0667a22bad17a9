// Package relation implements an in-memory tabular data structure: an
// ordered sequence of string-keyed rows with a fluent query surface of
// projection, filtering, nested-loop joins, multi-key ordering, first-wins
// grouping and sum/average aggregation.
//
// All transformations are pure, returning a new Relation and leaving the
// receiver untouched; the indexed accessors (At, SetAt, Append, RemoveAt)
// are the only mutation path. The engine holds its row set fully
// materialized and evaluates everything eagerly on a single goroutine.
package relation
