package output

import (
	"encoding/csv"
	"io"

	"github.com/GooBeMoO/associative-array/internal/relation"
)

// CSVFormatter outputs the relation as CSV
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *CSVFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes the relation as CSV. The header comes from the first row's
// field order; later rows emit their values in that column order, blank for
// fields they lack.
func (f *CSVFormatter) Format(r *relation.Relation) error {
	first := r.First(nil)
	if first == nil {
		return nil
	}
	columns := first.Fields()

	csvWriter := csv.NewWriter(f.writer)
	defer csvWriter.Flush()

	if err := csvWriter.Write(columns); err != nil {
		return err
	}
	for _, row := range r.Rows() {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = formatValue(row.Value(col))
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}
	return nil
}
