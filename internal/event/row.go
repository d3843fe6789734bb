package event

import (
	"strconv"
	"strings"
)

// Row is one table row as enumerated from the page: its trimmed, non-empty
// cell texts in document order.
type Row struct {
	// Index is the row's position among all table rows of the document.
	Index int `json:"index"`
	// Cells holds the cell texts; empty cells are already removed.
	Cells []string `json:"cells"`
	// Highlighted is set when the row was rendered with bold/emphasis styling.
	Highlighted bool `json:"highlighted,omitempty"`
}

// NewRow builds a Row from cell texts.
func NewRow(index int, highlighted bool, cells ...string) Row {
	return Row{Index: index, Cells: cells, Highlighted: highlighted}
}

// Len returns the number of cells.
func (r Row) Len() int {
	return len(r.Cells)
}

// contentKey encodes the cell texts unambiguously so rows can be used as map keys.
func contentKey(cells []string) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(cells)))
	for _, c := range cells {
		b.WriteByte('|')
		b.WriteString(strconv.Quote(c))
	}
	return b.String()
}
