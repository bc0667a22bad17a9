package relation

import "iter"

// All returns a forward, restartable iterator over the current rows and
// their positions. Iterating does not mutate the Relation; the sequence is
// snapshotted when All is called, so indexed mutations during iteration are
// not observed.
func (r *Relation) All() iter.Seq2[int, *Row] {
	rows := r.Rows()
	return func(yield func(int, *Row) bool) {
		for i, row := range rows {
			if !yield(i, row) {
				return
			}
		}
	}
}
