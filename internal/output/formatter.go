// Package output renders relations to an io.Writer in several formats.
package output

import (
	"fmt"
	"io"

	"github.com/GooBeMoO/associative-array/internal/relation"
)

// Formatter writes a relation to its output writer.
type Formatter interface {
	Format(r *relation.Relation) error
	SetOutput(w io.Writer)
}

// New returns the formatter for the given name: "json", "jsonl", "csv" or
// "table".
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "json":
		return NewJSONFormatter(w), nil
	case "jsonl":
		return NewJSONLFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "table":
		return NewTableFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// formatValue converts a cell value to its display string. nil renders
// empty.
func formatValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
