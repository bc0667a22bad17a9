package relation_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/GooBeMoO/associative-array/internal/relation"
)

func TestRow_InsertionOrderPreserved(t *testing.T) {
	row := relation.NewRow()
	row.Set("z", 1)
	row.Set("a", 2)
	row.Set("m", 3)

	fields := row.Fields()
	want := []string{"z", "a", "m"}
	for i, f := range want {
		if fields[i] != f {
			t.Fatalf("Expected field order %v, got %v", want, fields)
		}
	}

	// Updating an existing field keeps its position
	row.Set("a", 20)
	fields = row.Fields()
	if fields[1] != "a" {
		t.Errorf("Updating field moved it: %v", fields)
	}
	if row.Value("a") != 20 {
		t.Errorf("Expected updated value 20, got %v", row.Value("a"))
	}
}

func TestRow_Delete(t *testing.T) {
	row := relation.RowOf("a", 1, "b", 2, "c", 3)
	row.Delete("b")

	if row.Has("b") {
		t.Error("Field b still present after Delete")
	}
	fields := row.Fields()
	if len(fields) != 2 || fields[0] != "a" || fields[1] != "c" {
		t.Errorf("Expected fields [a c], got %v", fields)
	}

	// Deleting an absent field is a no-op
	row.Delete("missing")
	if row.Len() != 2 {
		t.Errorf("Deleting absent field changed length: %d", row.Len())
	}
}

func TestRow_MustGet(t *testing.T) {
	row := relation.RowOf("a", 1)

	if _, err := row.MustGet("a"); err != nil {
		t.Errorf("MustGet on present field failed: %v", err)
	}

	_, err := row.MustGet("missing")
	if err == nil {
		t.Fatal("Expected error for absent field")
	}
	var keyErr *relation.KeyError
	if !errors.As(err, &keyErr) {
		t.Errorf("Expected *KeyError, got %T", err)
	}
}

func TestRow_CopyIsDeep(t *testing.T) {
	nested := relation.Of(relation.RowOf("x", 1))
	row := relation.RowOf("name", "outer", "inner", nested, "tags", []any{"a", "b"})

	dup := row.Copy()

	// Mutating the copy's nested relation must not touch the original
	innerCopy := dup.Value("inner").(*relation.Relation)
	innerCopy.Append(relation.RowOf("x", 2))
	if nested.Len() != 1 {
		t.Errorf("Copy shared nested relation: original grew to %d rows", nested.Len())
	}

	tagsCopy := dup.Value("tags").([]any)
	tagsCopy[0] = "mutated"
	if row.Value("tags").([]any)[0] != "a" {
		t.Error("Copy shared nested slice")
	}
}

func TestRow_JSONRoundTripKeepsOrder(t *testing.T) {
	doc := []byte(`{"z":1,"a":"two","nested":{"y":true,"b":null}}`)

	var row relation.Row
	if err := json.Unmarshal(doc, &row); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	fields := row.Fields()
	want := []string{"z", "a", "nested"}
	for i, f := range want {
		if fields[i] != f {
			t.Fatalf("Expected field order %v, got %v", want, fields)
		}
	}

	out, err := json.Marshal(&row)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `{"z":1,"a":"two","nested":{"y":true,"b":null}}` {
		t.Errorf("Round trip changed document: %s", out)
	}
}

func TestRowOf_PanicsOnOddPairs(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for odd pair count")
		}
	}()
	relation.RowOf("a", 1, "dangling")
}
