package relation

import "log/slog"

// JoinPredicate tests whether a left/right row pair should be joined.
type JoinPredicate func(left, right *Row) bool

// InnerJoin joins the receiver against the right-hand collection. For each
// left row the right rows are scanned in order and the first row for which
// on returns true produces the merged output row; the scan for that left row
// then stops, so no left row fans out to more than one match. Left rows
// without a match produce no output.
//
// Merging puts the left row's fields first; right-hand fields override on
// key collision. Worst case is len(left) * len(right) predicate calls.
func (r *Relation) InnerJoin(right Source, on JoinPredicate) *Relation {
	rightRows := normalizeJoinSide(right)

	slog.Debug("starting inner join",
		slog.String("relation_id", r.id),
		slog.Int("left_rows", len(r.rows)),
		slog.Int("right_rows", len(rightRows)),
	)

	rows := make([]*Row, 0)
	unmatched := 0
	for _, leftRow := range r.rows {
		matched := false
		for _, rightRow := range rightRows {
			if on(leftRow, rightRow) {
				rows = append(rows, combineRows(leftRow, rightRow))
				matched = true
				break
			}
		}
		if !matched {
			unmatched++
		}
	}

	slog.Info("inner join completed",
		slog.String("relation_id", r.id),
		slog.Int("result_rows", len(rows)),
		slog.Int("unmatched_left", unmatched),
	)
	return newRelation(rows)
}

// LeftJoin joins like InnerJoin but every left row emits exactly one output
// row. Unmatched left rows are padded with a null row: the first right row's
// field set with all values nil (empty when the right side is empty).
func (r *Relation) LeftJoin(right Source, on JoinPredicate) *Relation {
	rightRows := normalizeJoinSide(right)
	nullRow := buildNullRow(rightRows)

	slog.Debug("starting left join",
		slog.String("relation_id", r.id),
		slog.Int("left_rows", len(r.rows)),
		slog.Int("right_rows", len(rightRows)),
	)

	rows := make([]*Row, 0, len(r.rows))
	unmatched := 0
	for _, leftRow := range r.rows {
		merged := combineRows(leftRow, nullRow)
		matched := false
		for _, rightRow := range rightRows {
			if on(leftRow, rightRow) {
				merged = combineRows(leftRow, rightRow)
				matched = true
				break
			}
		}
		if !matched {
			unmatched++
		}
		rows = append(rows, merged)
	}

	slog.Info("left join completed",
		slog.String("relation_id", r.id),
		slog.Int("result_rows", len(rows)),
		slog.Int("unmatched_left", unmatched),
	)
	return newRelation(rows)
}

// RightJoin is LeftJoin with the operand roles swapped: the right-hand
// collection drives the output and the receiver's rows pad it. The predicate
// keeps its orientation, receiving the driving row first.
func (r *Relation) RightJoin(right Source, on JoinPredicate) *Relation {
	return New(right).LeftJoin(r, on)
}

// normalizeJoinSide resolves the right-hand Source the same way construction
// does. A nil Source behaves as an empty collection.
func normalizeJoinSide(src Source) []*Row {
	if src == nil {
		return nil
	}
	return src.materialize()
}

// buildNullRow derives the right side's field shape from its first row, with
// every value nil.
func buildNullRow(rightRows []*Row) *Row {
	nullRow := NewRow()
	if len(rightRows) == 0 {
		return nullRow
	}
	for _, field := range rightRows[0].fields {
		nullRow.Set(field, nil)
	}
	return nullRow
}

// combineRows merges two rows into a new one: left fields in order, then
// right fields, right values overriding shared keys.
func combineRows(left, right *Row) *Row {
	merged := NewRow()
	for _, field := range left.fields {
		merged.Set(field, left.data[field])
	}
	for _, field := range right.fields {
		merged.Set(field, right.data[field])
	}
	return merged
}
