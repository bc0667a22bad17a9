package relation

// ToArray materializes every row into a plain ordered-agnostic map,
// recursively converting nested Relations and Rows. The result is a fully
// detached snapshot: mutating it never affects the source Relation.
//
// Field order is not representable in a Go map; use the output formatters or
// Row.MarshalJSON where order matters.
func (r *Relation) ToArray() []map[string]any {
	out := make([]map[string]any, len(r.rows))
	for i, row := range r.rows {
		out[i] = rowToMap(row)
	}
	return out
}

func rowToMap(row *Row) map[string]any {
	out := make(map[string]any, len(row.fields))
	for _, field := range row.fields {
		out[field] = convertValue(row.data[field])
	}
	return out
}

func convertValue(v any) any {
	switch val := v.(type) {
	case *Relation:
		return val.ToArray()
	case *Row:
		return rowToMap(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = convertValue(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = convertValue(elem)
		}
		return out
	default:
		return v
	}
}
