package bondbook

import (
	"reflect"
	"slices"
	"testing"
)

func TestCollection_InsertPrependsReversedBlock(t *testing.T) {
	c := NewCollection()

	// Ingesting 0000001-0000003 accepts ascending; the visible list shows
	// the block reversed, most recent-looking first.
	c.Insert([]Identifier{"0000001", "0000002", "0000003"})
	want := []Identifier{"0000003", "0000002", "0000001"}
	if got := c.Filter(""); !reflect.DeepEqual(got, want) {
		t.Fatalf("after first insert: %v, want %v", got, want)
	}

	// A later block lands in front of the earlier one.
	c.Insert([]Identifier{"0000042"})
	want = []Identifier{"0000042", "0000003", "0000002", "0000001"}
	if got := c.Filter(""); !reflect.DeepEqual(got, want) {
		t.Fatalf("after second insert: %v, want %v", got, want)
	}
}

func TestCollection_Uniqueness(t *testing.T) {
	c := NewCollection()
	c.Insert([]Identifier{"0000001", "0000002"})
	c.Insert([]Identifier{"0000002", "0000003"})
	c.Insert([]Identifier{"0000001"})

	seen := make(map[Identifier]int)
	for id := range c.All() {
		seen[id]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("identifier %q appears %d times", id, n)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestCollection_Delete(t *testing.T) {
	c := NewCollection()
	c.Insert([]Identifier{"0000001", "0000002", "0000003"})

	if !c.Delete("0000002") {
		t.Error("Delete of a present identifier should report true")
	}
	if c.Has("0000002") {
		t.Error("deleted identifier still present")
	}
	want := []Identifier{"0000003", "0000001"}
	if got := c.Filter(""); !reflect.DeepEqual(got, want) {
		t.Errorf("after delete: %v, want %v", got, want)
	}

	// Deleting an absent identifier is a no-op.
	if c.Delete("0000002") {
		t.Error("Delete of an absent identifier should report false")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCollection_Clear(t *testing.T) {
	c := NewCollection()
	c.Insert([]Identifier{"0000001", "0000002"})
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if c.Has("0000001") {
		t.Error("cleared collection still has entries")
	}
	// The collection remains usable after a clear.
	c.Insert([]Identifier{"0000001"})
	if c.Len() != 1 {
		t.Errorf("Len() after re-insert = %d, want 1", c.Len())
	}
}

func TestCollection_Filter(t *testing.T) {
	c := NewCollection()
	// Insert reverses, so list order is 1234568, 1234567, 0000001.
	c.Insert([]Identifier{"0000001", "1234567", "1234568"})

	testCases := []struct {
		query string
		want  []Identifier
	}{
		{"", []Identifier{"1234568", "1234567", "0000001"}},
		{"1234", []Identifier{"1234568", "1234567"}},
		{"567", []Identifier{"1234567"}},
		{"00001", []Identifier{"0000001"}},
		{"9", nil},
	}
	for _, tc := range testCases {
		if got := c.Filter(tc.query); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Filter(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestCollection_FilterPreservesOrder(t *testing.T) {
	c := NewCollection()
	c.Insert([]Identifier{"1234568", "1234567", "0000001"})

	full := c.Filter("")
	filtered := c.Filter("1234")
	// Relative order of the filtered view matches the full view.
	var fromFull []Identifier
	for _, id := range full {
		if slices.Contains(filtered, id) {
			fromFull = append(fromFull, id)
		}
	}
	if !reflect.DeepEqual(filtered, fromFull) {
		t.Errorf("filtered order %v diverges from collection order %v", filtered, fromFull)
	}
}
