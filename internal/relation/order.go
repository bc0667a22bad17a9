package relation

import (
	"fmt"
	"log/slog"
	"sort"
)

// Sort directions accepted by OrderBy.
const (
	Asc  = "asc"
	Desc = "desc"
)

// OrderBy sorts by the given keys with a composite comparator: rows compare
// by the first key, then the second on ties, and so on. The sort is stable,
// so rows equal on every key keep their input order.
//
// dirs supplies per-key directions ("asc" or "desc"). A single direction
// broadcasts to every key; a shorter list pads with "asc". An error is
// returned for an unknown direction, an empty key list, or a key absent from
// any row.
func (r *Relation) OrderBy(keys []string, dirs ...string) (*Relation, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("order by requires at least one key")
	}

	descending, err := resolveDirections(keys, dirs)
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		if err := r.requireField(key); err != nil {
			return nil, fmt.Errorf("order by %q: %w", key, err)
		}
	}

	slog.Debug("ordering relation",
		slog.String("relation_id", r.id),
		slog.Any("keys", keys),
		slog.Int("rows", len(r.rows)),
	)

	rows := make([]*Row, len(r.rows))
	copy(rows, r.rows)
	sort.SliceStable(rows, func(i, j int) bool {
		for k, key := range keys {
			cmp := compareValues(rows[i].data[key], rows[j].data[key])
			if descending[k] {
				cmp = -cmp
			}
			if cmp != 0 {
				return cmp < 0
			}
		}
		return false
	})
	return newRelation(rows), nil
}

// resolveDirections expands dirs against keys: one direction broadcasts,
// shorter lists default the remainder to ascending.
func resolveDirections(keys []string, dirs []string) ([]bool, error) {
	descending := make([]bool, len(keys))
	for i := range keys {
		dir := Asc
		switch {
		case len(dirs) == 1:
			dir = dirs[0]
		case i < len(dirs):
			dir = dirs[i]
		}
		switch dir {
		case Asc:
		case Desc:
			descending[i] = true
		default:
			return nil, fmt.Errorf("unknown sort direction %q (want %q or %q)", dir, Asc, Desc)
		}
	}
	return descending, nil
}

// requireField verifies the field is present in every row.
func (r *Relation) requireField(key string) error {
	for i, row := range r.rows {
		if !row.Has(key) {
			return fmt.Errorf("row %d: %w", i, NewKeyError(key))
		}
	}
	return nil
}
