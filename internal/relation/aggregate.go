package relation

import "fmt"

// Sum totals the named field across all rows. Values coerce numerically
// (numeric strings parse, other non-numeric values contribute 0); callers
// wanting strict numeric sums should pre-filter. An empty Relation sums to
// 0. A row missing the field is an error.
func (r *Relation) Sum(key string) (float64, error) {
	var total float64
	for i, row := range r.rows {
		val, err := row.MustGet(key)
		if err != nil {
			return 0, fmt.Errorf("sum row %d: %w", i, err)
		}
		total += coerceNumeric(val)
	}
	return total, nil
}

// Avg returns Sum divided by the row count. When the sum is exactly zero —
// including when positives and negatives cancel — the zero is returned as is
// without dividing; this mirrors the observable behavior of the source
// collection and also makes the empty-Relation case total (never 0/0).
func (r *Relation) Avg(key string) (float64, error) {
	total, err := r.Sum(key)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return total, nil
	}
	return total / float64(len(r.rows)), nil
}
