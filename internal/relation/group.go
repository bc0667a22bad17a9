package relation

import (
	"fmt"
	"log/slog"
	"strings"
)

// groupKeySeparator joins the stringified key values of a group signature.
const groupKeySeparator = ","

// GroupBy deduplicates rows by group signature: the string forms of each
// row's values at the given keys, joined by a comma, in key order. The FIRST
// row seen with a signature represents its group; output order is first
// occurrence order. This is first-wins deduplication, not aggregation.
//
// An error is returned when no keys are given or a key is absent from a row.
func (r *Relation) GroupBy(keys ...string) (*Relation, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("group by requires at least one key")
	}

	seen := make(map[string]struct{})
	rows := make([]*Row, 0)
	for i, row := range r.rows {
		signature, err := groupSignature(row, keys)
		if err != nil {
			return nil, fmt.Errorf("group by row %d: %w", i, err)
		}
		if _, exists := seen[signature]; exists {
			continue
		}
		seen[signature] = struct{}{}
		rows = append(rows, row)
	}

	slog.Debug("grouped relation",
		slog.String("relation_id", r.id),
		slog.Any("keys", keys),
		slog.Int("input_rows", len(r.rows)),
		slog.Int("groups", len(rows)),
	)
	return newRelation(rows), nil
}

// groupSignature concatenates the row's values at the group keys.
func groupSignature(row *Row, keys []string) (string, error) {
	parts := make([]string, len(keys))
	for i, key := range keys {
		val, err := row.MustGet(key)
		if err != nil {
			return "", err
		}
		parts[i] = fmt.Sprintf("%v", val)
	}
	return strings.Join(parts, groupKeySeparator), nil
}
