// Package loader builds relation rows from files. Every loader reads its
// source fully and returns a materialized row slice; no lazy handle escapes.
package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/GooBeMoO/associative-array/internal/relation"
)

// Read loads rows from the given path, dispatching on the file extension.
// Supported: .json, .csv, .parquet.
func Read(path string) ([]*relation.Row, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ReadJSON(path)
	case ".csv":
		return ReadCSV(path)
	case ".parquet":
		return ReadParquet(path)
	default:
		return nil, fmt.Errorf("unsupported file extension %q (want .json, .csv or .parquet)", ext)
	}
}
