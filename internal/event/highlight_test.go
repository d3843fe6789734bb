package event

import "testing"

func highlightFixture() *Mapping {
	input := []Row{
		NewRow(0, false, "Monday, March 4, 2024"),
		NewRow(1, true, "9:00 AM", "Grand Rounds", "Room 2"),
		NewRow(2, false, "10:00 AM", "Sign-out", "Room 3"),
		NewRow(3, false, "Tuesday, March 5, 2024"),
		NewRow(4, false, "8:00 AM", "Breakfast", "Lobby"),
		NewRow(5, true, "11:30 AM", "Journal Club", "Papers", "Library"),
	}
	m, _ := Assemble(NewClassifier(nil), input)
	return m
}

func TestFilterHighlighted(t *testing.T) {
	full := highlightFixture()
	filtered := FilterHighlighted(full)

	if filtered.Len() != full.Len() {
		t.Fatalf("filtered should keep every day: got %d, want %d", filtered.Len(), full.Len())
	}

	monday := filtered.Events("Monday, March 4, 2024")
	if len(monday) != 1 || monday[0].Cells[1] != "Grand Rounds" {
		t.Errorf("Monday highlighted = %v", monday)
	}
	tuesday := filtered.Events("Tuesday, March 5, 2024")
	if len(tuesday) != 1 || tuesday[0].Cells[1] != "Journal Club" {
		t.Errorf("Tuesday highlighted = %v", tuesday)
	}

	if full.EventCount() != 4 {
		t.Errorf("filtering must not modify the input mapping, got %d events", full.EventCount())
	}
}

func TestFilterBySet(t *testing.T) {
	full := highlightFixture()

	set := NewHighlightSet(
		[]string{"10:00 AM", "Sign-out", "Room 3"},
		[]string{"8:00 AM ", "Breakfast", "Lobby"}, // whitespace differs: no match
		[]string{"Not", "On", "Page"},
	)

	filtered := FilterBySet(full, set)

	monday := filtered.Events("Monday, March 4, 2024")
	if len(monday) != 1 || monday[0].Cells[1] != "Sign-out" {
		t.Errorf("Monday matched = %v", monday)
	}
	if got := filtered.Events("Tuesday, March 5, 2024"); len(got) != 0 {
		t.Errorf("Tuesday should have no matches, got %v", got)
	}
}

func TestFilter_Subset(t *testing.T) {
	full := highlightFixture()
	set := NewHighlightSet([]string{"9:00 AM", "Grand Rounds", "Room 2"})

	for _, filtered := range []*Mapping{FilterHighlighted(full), FilterBySet(full, set)} {
		for _, label := range full.Labels() {
			all := full.Events(label)
			sub := filtered.Events(label)
			if len(sub) > len(all) {
				t.Errorf("%s: filtered has %d events, full has %d", label, len(sub), len(all))
			}
			for _, row := range sub {
				found := false
				for _, candidate := range all {
					if sameCells(row, candidate) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("%s: filtered row %q not in full mapping", label, row.Cells)
				}
			}
		}
	}
}

func TestHighlightSet(t *testing.T) {
	set := NewHighlightSet([]string{"a", "b"})

	tests := []struct {
		cells []string
		want  bool
	}{
		{[]string{"a", "b"}, true},
		{[]string{"b", "a"}, false},
		{[]string{"a"}, false},
		{[]string{"a", "b", ""}, false},
		{[]string{"a|b"}, false},
	}

	for _, tt := range tests {
		if got := set.Contains(tt.cells); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.cells, got, tt.want)
		}
	}

	var empty *HighlightSet
	if empty.Contains([]string{"a", "b"}) || empty.Len() != 0 {
		t.Error("nil set should be empty")
	}
}

func sameCells(a, b Row) bool {
	if len(a.Cells) != len(b.Cells) {
		return false
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			return false
		}
	}
	return true
}
