package scraper

import (
	"reflect"
	"strings"
	"testing"
)

func TestParsePage_EdgeCases(t *testing.T) {
	tests := []struct {
		name            string
		html            string
		wantCells       [][]string
		wantHighlighted []bool
	}{
		{
			name:            "html entities decoded",
			html:            `<table><tr><td>9:00 AM</td><td>Q&amp;A Session</td><td>Room&nbsp;4</td></tr></table>`,
			wantCells:       [][]string{{"9:00 AM", "Q&A Session", "Room\u00a04"}},
			wantHighlighted: []bool{false},
		},
		{
			name:            "whitespace trimmed and empty cells dropped",
			html:            "<table><tr><td>  Monday, March 4, 2024  </td><td> </td><td></td></tr></table>",
			wantCells:       [][]string{{"Monday, March 4, 2024"}},
			wantHighlighted: []bool{false},
		},
		{
			name:            "empty rows skipped",
			html:            "<table><tr><td></td></tr><tr><td>x</td></tr></table>",
			wantCells:       [][]string{{"x"}},
			wantHighlighted: []bool{false},
		},
		{
			name:            "bold by cell style",
			html:            `<table><tr><td style="font-weight:700">1:00 PM</td><td style="font-weight:bold">Lab Meeting</td><td style="font-weight:bold">Room 9</td></tr></table>`,
			wantCells:       [][]string{{"1:00 PM", "Lab Meeting", "Room 9"}},
			wantHighlighted: []bool{true},
		},
		{
			name:            "partially bold row is not highlighted",
			html:            `<table><tr><td>1:00 PM</td><td><b>Lab</b> Meeting</td><td><b>Room 9</b></td></tr></table>`,
			wantCells:       [][]string{{"1:00 PM", "Lab Meeting", "Room 9"}},
			wantHighlighted: []bool{false},
		},
		{
			name: "nested table cells counted by both rows",
			html: `<table><tr><td><table><tr><td>a</td><td>b</td></tr></table></td></tr></table>`,
			wantCells: [][]string{
				{"ab", "a", "b"},
				{"a", "b"},
			},
			wantHighlighted: []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := ParsePage(strings.NewReader(tt.html))
			if err != nil {
				t.Fatalf("ParsePage() error: %v", err)
			}

			rows := page.Rows()
			if len(rows) != len(tt.wantCells) {
				t.Fatalf("got %d rows, want %d: %+v", len(rows), len(tt.wantCells), rows)
			}
			for i, row := range rows {
				if !reflect.DeepEqual(row.Cells, tt.wantCells[i]) {
					t.Errorf("row %d cells = %q, want %q", i, row.Cells, tt.wantCells[i])
				}
				if row.Highlighted != tt.wantHighlighted[i] {
					t.Errorf("row %d highlighted = %v, want %v", i, row.Highlighted, tt.wantHighlighted[i])
				}
			}
		})
	}
}

func TestRows_IndexStable(t *testing.T) {
	html := `<table><tr><td>first</td></tr><tr><td></td></tr><tr><td>third</td></tr></table>`

	page, err := ParsePage(strings.NewReader(html))
	if err != nil {
		t.Fatalf("ParsePage() error: %v", err)
	}

	rows := page.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Indices count every <tr>, including skipped empty ones.
	if rows[0].Index != 0 || rows[1].Index != 2 {
		t.Errorf("indices = %d, %d; want 0, 2", rows[0].Index, rows[1].Index)
	}
}

func TestHighlightSet_NestedStyle(t *testing.T) {
	html := `<div style="font-weight: bold"><table><tr><td>2:00 PM</td><td>Board</td><td>Hall</td></tr></table></div>`

	page, err := ParsePage(strings.NewReader(html))
	if err != nil {
		t.Fatalf("ParsePage() error: %v", err)
	}

	set := page.HighlightSet()
	if !set.Contains([]string{"2:00 PM", "Board", "Hall"}) {
		t.Error("cells below a bold element should be harvested as one row")
	}
}
