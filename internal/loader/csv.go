package loader

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/GooBeMoO/associative-array/internal/relation"
)

// ReadCSV loads rows from a CSV file. The header row supplies the field
// names; every value stays a string, so callers aggregating CSV columns rely
// on the engine's numeric coercion.
func ReadCSV(path string) ([]*relation.Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return make([]*relation.Row, 0), nil
	}

	header := records[0]
	rows := make([]*relation.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := relation.NewRow()
		for i, field := range header {
			if i < len(record) {
				row.Set(field, record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
