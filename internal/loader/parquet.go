package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/segmentio/parquet-go"

	"github.com/GooBeMoO/associative-array/internal/relation"
)

// ReadParquet loads all rows from a parquet file into memory. Parquet row
// maps carry no key order, so each row's field order is the sorted column
// name order.
func ReadParquet(path string) ([]*relation.Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	reader := parquet.NewReader(pqFile)
	defer reader.Close()

	rows := make([]*relation.Row, 0)
	for {
		record := make(map[string]interface{})
		err := reader.Read(&record)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		keys := make([]string, 0, len(record))
		for k := range record {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		row := relation.NewRow()
		for _, k := range keys {
			row.Set(k, record[k])
		}
		rows = append(rows, row)
	}
	return rows, nil
}
