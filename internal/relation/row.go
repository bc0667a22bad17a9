package relation

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Row represents a single record: an ordered mapping from field name to value.
// Field order is insertion order and is preserved across operations that don't
// explicitly reorder. Field sets may vary between rows of the same Relation.
type Row struct {
	fields []string
	data   map[string]any
}

// NewRow creates an empty Row.
func NewRow() *Row {
	return &Row{
		fields: make([]string, 0),
		data:   make(map[string]any),
	}
}

// RowOf builds a Row from alternating key/value pairs, preserving pair order.
// Panics if given an odd number of arguments or a non-string key; it exists
// for literal construction where the shape is known at the call site.
func RowOf(pairs ...any) *Row {
	if len(pairs)%2 != 0 {
		panic(fmt.Sprintf("RowOf: odd number of arguments (%d)", len(pairs)))
	}
	row := NewRow()
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("RowOf: key at position %d is %T, not string", i, pairs[i]))
		}
		row.Set(key, pairs[i+1])
	}
	return row
}

// Get retrieves a value by field name.
func (r *Row) Get(key string) (any, bool) {
	val, exists := r.data[key]
	return val, exists
}

// Value retrieves a value by field name, or nil when absent.
func (r *Row) Value(key string) any {
	return r.data[key]
}

// MustGet retrieves a value by field name and returns a KeyError when the
// field is absent. Callers that cannot guarantee presence should use Get.
func (r *Row) MustGet(key string) (any, error) {
	val, exists := r.data[key]
	if !exists {
		return nil, NewKeyError(key)
	}
	return val, nil
}

// Has reports whether the field is present.
func (r *Row) Has(key string) bool {
	_, exists := r.data[key]
	return exists
}

// Set adds or updates a value. A new field is appended after all existing
// fields; updating an existing field keeps its position.
func (r *Row) Set(key string, value any) {
	if _, exists := r.data[key]; !exists {
		r.fields = append(r.fields, key)
	}
	r.data[key] = value
}

// Delete removes a field. Removing an absent field is a no-op.
func (r *Row) Delete(key string) {
	if _, exists := r.data[key]; !exists {
		return
	}
	delete(r.data, key)
	for i, f := range r.fields {
		if f == key {
			r.fields = append(r.fields[:i], r.fields[i+1:]...)
			break
		}
	}
}

// Fields returns the field names in insertion order.
func (r *Row) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Len returns the number of fields.
func (r *Row) Len() int {
	return len(r.fields)
}

// Copy creates a deep copy of the row to prevent mutation.
// Nested Rows and Relations are copied recursively.
func (r *Row) Copy() *Row {
	out := NewRow()
	for _, key := range r.fields {
		out.Set(key, copyValue(r.data[key]))
	}
	return out
}

// String returns a string representation for debugging.
func (r *Row) String() string {
	var buf bytes.Buffer
	buf.WriteString("Row{")
	for i, key := range r.fields {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: %v", key, r.data[key])
	}
	buf.WriteString("}")
	return buf.String()
}

// MarshalJSON implements json.Marshaler, emitting fields in insertion order.
func (r *Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := json.Marshal(r.data[key])
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", key, err)
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, preserving the document's
// field order.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("row must be a JSON object, got %v", tok)
	}
	row, err := decodeObject(dec)
	if err != nil {
		return err
	}
	*r = *row
	return nil
}

// decodeObject reads an object body (opening brace already consumed) into a
// Row, keeping key order.
func decodeObject(dec *json.Decoder) (*Row, error) {
	row := NewRow()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, not string", tok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		row.Set(key, val)
	}
	// Closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return row, nil
}

// decodeValue reads one JSON value. Nested objects become *Row so that field
// order survives round-trips; arrays become []any.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			arr := make([]any, 0)
			for dec.More() {
				elem, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, elem)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		return t.Float64()
	default:
		return tok, nil
	}
}

// copyValue deep-copies row values. Scalars pass through; nested Rows,
// Relations, maps and slices are cloned.
func copyValue(v any) any {
	switch val := v.(type) {
	case *Row:
		return val.Copy()
	case *Relation:
		return FromRelation(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = copyValue(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = copyValue(elem)
		}
		return out
	default:
		return v
	}
}
