package relation

// The indexed-access surface below is the only mutation path into a
// Relation. It acts on the owning Relation's row sequence in place, so it
// needs external synchronization when embedded in a concurrent host.

// HasIndex reports whether a row exists at the given position.
func (r *Relation) HasIndex(i int) bool {
	return i >= 0 && i < len(r.rows)
}

// At returns the row at the given position. Positions outside the current
// range yield an IndexError; check HasIndex first, or use First/Last for
// default-returning access.
func (r *Relation) At(i int) (*Row, error) {
	if !r.HasIndex(i) {
		return nil, NewIndexError(i, len(r.rows))
	}
	return r.rows[i], nil
}

// SetAt replaces the row at the given position.
func (r *Relation) SetAt(i int, row *Row) error {
	if !r.HasIndex(i) {
		return NewIndexError(i, len(r.rows))
	}
	r.rows[i] = row
	return nil
}

// Append adds a row after the final position.
func (r *Relation) Append(row *Row) {
	r.rows = append(r.rows, row)
}

// RemoveAt deletes the row at the given position, shifting later rows down.
func (r *Relation) RemoveAt(i int) error {
	if !r.HasIndex(i) {
		return NewIndexError(i, len(r.rows))
	}
	r.rows = append(r.rows[:i], r.rows[i+1:]...)
	return nil
}
