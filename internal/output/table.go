package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/GooBeMoO/associative-array/internal/relation"
)

// TableFormatter renders the relation as an ASCII table
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format renders the relation with the first row's field order as the
// header.
func (f *TableFormatter) Format(r *relation.Relation) error {
	first := r.First(nil)
	if first == nil {
		return nil
	}
	columns := first.Fields()

	table := tablewriter.NewWriter(f.writer)
	table.SetHeader(columns)
	for _, row := range r.Rows() {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = formatValue(row.Value(col))
		}
		table.Append(record)
	}
	table.Render()
	return nil
}
