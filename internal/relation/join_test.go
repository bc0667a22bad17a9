package relation_test

import (
	"testing"

	"github.com/GooBeMoO/associative-array/internal/relation"
)

// Helper to create the orders side for join tests
func orders() *relation.Relation {
	return relation.Of(
		relation.RowOf("order_id", 10, "id", 1, "product", "Laptop"),
		relation.RowOf("order_id", 11, "id", 1, "product", "Mouse"),
		relation.RowOf("order_id", 12, "id", 2, "product", "Keyboard"),
	)
}

func onID(left, right *relation.Row) bool {
	return left.Value("id") == right.Value("id")
}

func TestInnerJoin_FirstMatchWins(t *testing.T) {
	r := employees().InnerJoin(orders(), onID)

	// One output row per matched left row, never one per matching right row:
	// employee 1 has two orders but must join only the first.
	if r.Len() != 2 {
		t.Fatalf("Expected 2 rows, got %d", r.Len())
	}

	first := r.First(nil)
	if first.Value("product") != "Laptop" {
		t.Errorf("Expected first matching right row (Laptop), got %v", first.Value("product"))
	}
}

func TestInnerJoin_UnmatchedLeftDropped(t *testing.T) {
	r := employees().InnerJoin(orders(), onID)

	for _, row := range r.Rows() {
		if row.Value("id") == 3 {
			t.Error("Employee 3 has no orders and must not appear in inner join output")
		}
	}
	if r.Len() > employees().Len() {
		t.Errorf("Inner join output (%d) exceeds left row count", r.Len())
	}
}

func TestInnerJoin_RightOverridesOnCollision(t *testing.T) {
	left := relation.Of(relation.RowOf("id", 1, "name", "left-name"))
	right := relation.Of(relation.RowOf("id", 1, "name", "right-name"))

	r := left.InnerJoin(right, onID)
	row := r.First(nil)
	if row.Value("name") != "right-name" {
		t.Errorf("Expected right field to override, got %v", row.Value("name"))
	}
	// Left field order still leads
	if fields := row.Fields(); fields[0] != "id" || fields[1] != "name" {
		t.Errorf("Unexpected merged field order %v", fields)
	}
}

func TestInnerJoin_RawRowsSource(t *testing.T) {
	r := employees().InnerJoin(relation.Rows{
		relation.RowOf("id", 2, "bonus", 50),
	}, onID)

	if r.Len() != 1 {
		t.Fatalf("Expected 1 row, got %d", r.Len())
	}
	if r.First(nil).Value("bonus") != 50 {
		t.Errorf("Expected merged bonus field, got %v", r.First(nil))
	}
}

func TestLeftJoin_AlwaysEmitsEveryLeftRow(t *testing.T) {
	left := employees()
	r := left.LeftJoin(orders(), onID)

	if r.Len() != left.Len() {
		t.Fatalf("Expected %d rows (one per left row), got %d", left.Len(), r.Len())
	}
}

func TestLeftJoin_NullRowPadding(t *testing.T) {
	r := employees().LeftJoin(orders(), onID)

	// Employee 3 has no orders: the right shape appears with nil values
	var padded *relation.Row
	for _, row := range r.Rows() {
		if row.Value("order_id") == nil && row.Value("dept") == "A" && row.Value("sal") == 300 {
			padded = row
		}
	}
	if padded == nil {
		t.Fatal("Unmatched left row not found in left join output")
	}
	if !padded.Has("product") {
		t.Error("Null row missing right-side field product")
	}
	if padded.Value("product") != nil {
		t.Errorf("Expected nil product for unmatched row, got %v", padded.Value("product"))
	}
}

func TestLeftJoin_EmptyRightYieldsEmptyNullRow(t *testing.T) {
	left := employees()
	r := left.LeftJoin(relation.Of(), onID)

	if r.Len() != left.Len() {
		t.Fatalf("Expected %d rows, got %d", left.Len(), r.Len())
	}
	for i, row := range r.Rows() {
		if row.Has("order_id") || row.Has("product") {
			t.Errorf("Row %d gained right-side fields from an empty right relation", i)
		}
	}
}

func TestLeftJoin_KeyCollisionWithNullRow(t *testing.T) {
	// The right shape shares the id field; unmatched left rows must keep
	// their own id overwritten to nil per merge semantics.
	left := relation.Of(relation.RowOf("id", 9, "name", "solo"))
	right := relation.Of(relation.RowOf("id", 1, "product", "Laptop"))

	r := left.LeftJoin(right, onID)
	row := r.First(nil)
	if row.Value("id") != nil {
		t.Errorf("Expected null-row id to override left id, got %v", row.Value("id"))
	}
	if row.Value("name") != "solo" {
		t.Errorf("Left-only field lost: %v", row)
	}
}

func TestRightJoin_RoleSwapSymmetry(t *testing.T) {
	left := employees()
	right := orders()

	viaRight := left.RightJoin(right, onID)
	viaLeft := right.LeftJoin(left, onID)

	if viaRight.Len() != viaLeft.Len() {
		t.Fatalf("Right join (%d rows) differs from swapped left join (%d rows)",
			viaRight.Len(), viaLeft.Len())
	}
	for i := range viaRight.Rows() {
		a, _ := viaRight.At(i)
		b, _ := viaLeft.At(i)
		for _, field := range b.Fields() {
			av, _ := a.Get(field)
			bv, _ := b.Get(field)
			if av != bv {
				t.Errorf("Row %d field %s: %v != %v", i, field, av, bv)
			}
		}
	}
}

func TestRightJoin_SizeMatchesRight(t *testing.T) {
	r := employees().RightJoin(orders(), onID)
	if r.Len() != orders().Len() {
		t.Errorf("Expected one output row per right row (%d), got %d", orders().Len(), r.Len())
	}
}

func TestJoins_DoNotMutateOperands(t *testing.T) {
	left := employees()
	right := orders()
	left.InnerJoin(right, onID)
	left.LeftJoin(right, onID)
	left.RightJoin(right, onID)

	if left.Len() != 3 || right.Len() != 3 {
		t.Errorf("Join mutated an operand: left=%d right=%d", left.Len(), right.Len())
	}
	if row := left.First(nil); row.Has("product") {
		t.Error("Join leaked right-side fields into a left operand row")
	}
}
