package relation

import (
	"iter"
	"sort"

	"github.com/google/uuid"
)

// Relation is an ordered sequence of rows. Transformations (Select, Where,
// joins, OrderBy, GroupBy) are pure: they return a new Relation and never
// mutate the receiver's row sequence. The only mutators are the indexed
// accessors in access.go, which act on the owning Relation in place.
//
// A Relation is not safe for concurrent use without external synchronization.
type Relation struct {
	id   string
	rows []*Row
}

// Source is a row collection accepted wherever rows enter the engine:
// construction and the right-hand side of joins. Each variant resolves to a
// concrete row slice exactly once, at the boundary; no lazy reference to the
// source is retained.
type Source interface {
	materialize() []*Row
}

// Rows is a raw row slice used as a Source.
type Rows []*Row

func (r Rows) materialize() []*Row {
	out := make([]*Row, len(r))
	copy(out, r)
	return out
}

// Seq is a finite row sequence used as a Source. It is drained fully at the
// boundary; infinite sequences must not be passed.
type Seq iter.Seq[*Row]

func (s Seq) materialize() []*Row {
	rows := make([]*Row, 0)
	for row := range iter.Seq[*Row](s) {
		rows = append(rows, row)
	}
	return rows
}

func (r *Relation) materialize() []*Row {
	out := make([]*Row, len(r.rows))
	copy(out, r.rows)
	return out
}

// New creates a Relation from any Source. A nil Source yields an empty
// Relation.
func New(src Source) *Relation {
	if src == nil {
		return newRelation(make([]*Row, 0))
	}
	return newRelation(src.materialize())
}

// Of creates a Relation from the given rows. A single row wraps into a
// one-element Relation; no arguments yield an empty one.
func Of(rows ...*Row) *Relation {
	return New(Rows(rows))
}

// FromRelation snapshots another Relation's rows into a new one. The rows
// themselves are shared, the sequence is not.
func FromRelation(other *Relation) *Relation {
	return New(other)
}

// FromMaps creates a Relation from plain maps. Go maps carry no key order,
// so each row's field order is the sorted key order.
func FromMaps(maps []map[string]any) *Relation {
	rows := make([]*Row, 0, len(maps))
	for _, m := range maps {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		row := NewRow()
		for _, k := range keys {
			row.Set(k, m[k])
		}
		rows = append(rows, row)
	}
	return newRelation(rows)
}

func newRelation(rows []*Row) *Relation {
	return &Relation{
		id:   uuid.New().String(),
		rows: rows,
	}
}

// ID returns the relation's identity, carried in log attributes.
func (r *Relation) ID() string {
	return r.id
}

// Len returns the current row count.
func (r *Relation) Len() int {
	return len(r.rows)
}

// First returns the row at position 0, or def when the Relation is empty.
func (r *Relation) First(def *Row) *Row {
	if len(r.rows) == 0 {
		return def
	}
	return r.rows[0]
}

// Last returns the row at the final position, or def when the Relation is
// empty.
func (r *Relation) Last(def *Row) *Row {
	if len(r.rows) == 0 {
		return def
	}
	return r.rows[len(r.rows)-1]
}

// Rows returns a fresh slice of the current rows. The rows themselves are
// shared; appending to or reordering the returned slice does not affect the
// Relation.
func (r *Relation) Rows() []*Row {
	out := make([]*Row, len(r.rows))
	copy(out, r.rows)
	return out
}
