package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/GooBeMoO/associative-array/internal/relation"
)

// ReadJSON loads rows from a JSON file holding an array of objects. Each
// row's field order follows the document's key order.
func ReadJSON(path string) ([]*relation.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	var rows []*relation.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if rows == nil {
		rows = make([]*relation.Row, 0)
	}
	return rows, nil
}
