package relation_test

import (
	"errors"
	"testing"

	"github.com/GooBeMoO/associative-array/internal/relation"
)

func TestHasIndex(t *testing.T) {
	r := employees()

	if !r.HasIndex(0) || !r.HasIndex(2) {
		t.Error("Expected indexes 0 and 2 to exist")
	}
	if r.HasIndex(3) || r.HasIndex(-1) {
		t.Error("Out-of-range index reported as present")
	}
}

func TestAt(t *testing.T) {
	r := employees()

	row, err := r.At(1)
	if err != nil {
		t.Fatalf("At(1) failed: %v", err)
	}
	if row.Value("id") != 2 {
		t.Errorf("Expected id=2 at position 1, got %v", row.Value("id"))
	}

	_, err = r.At(99)
	if err == nil {
		t.Fatal("Expected error for out-of-range access")
	}
	var idxErr *relation.IndexError
	if !errors.As(err, &idxErr) {
		t.Fatalf("Expected *IndexError, got %T", err)
	}
	if idxErr.Index != 99 || idxErr.Len != 3 {
		t.Errorf("IndexError carries wrong context: %+v", idxErr)
	}
}

func TestSetAt(t *testing.T) {
	r := employees()

	if err := r.SetAt(0, relation.RowOf("id", 42)); err != nil {
		t.Fatalf("SetAt failed: %v", err)
	}
	if r.First(nil).Value("id") != 42 {
		t.Errorf("SetAt did not replace the row: %v", r.First(nil))
	}

	if err := r.SetAt(10, relation.RowOf("id", 0)); err == nil {
		t.Error("Expected error for out-of-range SetAt")
	}
}

func TestAppend(t *testing.T) {
	r := employees()
	r.Append(relation.RowOf("id", 4, "dept", "C", "sal", 400))

	if r.Len() != 4 {
		t.Fatalf("Expected 4 rows after append, got %d", r.Len())
	}
	if r.Last(nil).Value("id") != 4 {
		t.Errorf("Appended row not at final position: %v", r.Last(nil))
	}
}

func TestRemoveAt(t *testing.T) {
	r := employees()

	if err := r.RemoveAt(1); err != nil {
		t.Fatalf("RemoveAt failed: %v", err)
	}
	got := ids(t, r)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Expected remaining ids [1 3], got %v", got)
	}

	if err := r.RemoveAt(5); err == nil {
		t.Error("Expected error for out-of-range RemoveAt")
	}
}

func TestMutatorsAffectOnlyOwner(t *testing.T) {
	src := employees()
	derived := src.Select("id", "dept", "sal")

	if err := derived.RemoveAt(0); err != nil {
		t.Fatal(err)
	}
	if src.Len() != 3 {
		t.Errorf("Mutating a derived relation changed the source: %d rows", src.Len())
	}
}
