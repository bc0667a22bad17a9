package relation

// Select projects every row onto the requested fields. The projected row
// keeps the original row's field order, not the requested-key order; fields
// absent from a row are dropped silently. Row count and order are preserved.
func (r *Relation) Select(keys ...string) *Relation {
	wanted := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		wanted[key] = struct{}{}
	}

	rows := make([]*Row, 0, len(r.rows))
	for _, row := range r.rows {
		projected := NewRow()
		for _, field := range row.fields {
			if _, ok := wanted[field]; ok {
				projected.Set(field, row.data[field])
			}
		}
		rows = append(rows, projected)
	}
	return newRelation(rows)
}

// Where keeps exactly the rows for which pred returns true, preserving
// relative order. The kept rows are the input rows themselves, not copies.
// The predicate receives each row and its position in the receiver.
func (r *Relation) Where(pred func(row *Row, index int) bool) *Relation {
	rows := make([]*Row, 0)
	for i, row := range r.rows {
		if pred(row, i) {
			rows = append(rows, row)
		}
	}
	return newRelation(rows)
}
