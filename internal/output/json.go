package output

import (
	"encoding/json"
	"io"

	"github.com/GooBeMoO/associative-array/internal/relation"
)

// JSONFormatter outputs the relation as a single JSON array
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *JSONFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes the relation as a JSON array, one object per row with
// fields in row order.
func (f *JSONFormatter) Format(r *relation.Relation) error {
	enc := json.NewEncoder(f.writer)
	return enc.Encode(r.Rows())
}

// JSONLFormatter outputs one JSON object per line
type JSONLFormatter struct {
	writer io.Writer
}

// NewJSONLFormatter creates a new JSONL formatter
func NewJSONLFormatter(w io.Writer) *JSONLFormatter {
	return &JSONLFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *JSONLFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes each row as one JSON line
func (f *JSONLFormatter) Format(r *relation.Relation) error {
	enc := json.NewEncoder(f.writer)
	for _, row := range r.Rows() {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
