package relation

import "fmt"

// IndexError reports access outside the Relation's row range.
type IndexError struct {
	Index int // requested position
	Len   int // row count at the time of access
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for relation of %d rows", e.Index, e.Len)
}

func NewIndexError(index, length int) *IndexError {
	return &IndexError{Index: index, Len: length}
}

// KeyError reports access to a field absent from a row.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("undefined field %q", e.Key)
}

func NewKeyError(key string) *KeyError {
	return &KeyError{Key: key}
}
