package event

import "strings"

// RowKind is the label the classifier assigns to a row.
type RowKind int

const (
	RowNoise RowKind = iota
	RowDayHeader
	RowEvent
)

func (k RowKind) String() string {
	switch k {
	case RowDayHeader:
		return "day_header"
	case RowEvent:
		return "event"
	default:
		return "noise"
	}
}

// DefaultWeekdays lists the weekday names accepted in day headers. The
// source calendar never carries weekend entries.
func DefaultWeekdays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
}

// Classification is the classifier's verdict for a single row.
type Classification struct {
	Kind RowKind
	// Label is the day label for RowDayHeader, empty otherwise.
	Label string
	Row   Row
}

// Classifier labels rows as day headers, events or noise.
type Classifier struct {
	weekdays map[string]bool
}

// NewClassifier creates a Classifier recognising the given weekday names.
// A nil or empty list falls back to DefaultWeekdays.
func NewClassifier(weekdays []string) *Classifier {
	if len(weekdays) == 0 {
		weekdays = DefaultWeekdays()
	}
	set := make(map[string]bool, len(weekdays))
	for _, d := range weekdays {
		set[d] = true
	}
	return &Classifier{weekdays: set}
}

// Classify labels a row. It has no side effects.
//
// A single-cell row whose text before the first comma is a known weekday is
// a day header. A row of three or four cells whose first cell starts with a
// decimal digit and holds no line break is an event. Everything else is noise.
func (c *Classifier) Classify(row Row) Classification {
	switch {
	case c.isDayHeader(row):
		return Classification{Kind: RowDayHeader, Label: row.Cells[0], Row: row}
	case isEventRow(row):
		return Classification{Kind: RowEvent, Row: row}
	default:
		return Classification{Kind: RowNoise, Row: row}
	}
}

func (c *Classifier) isDayHeader(row Row) bool {
	if row.Len() != 1 {
		return false
	}
	weekday, _, _ := strings.Cut(row.Cells[0], ",")
	return c.weekdays[weekday]
}

func isEventRow(row Row) bool {
	if row.Len() != 3 && row.Len() != 4 {
		return false
	}
	first := row.Cells[0]
	if first == "" || first[0] < '0' || first[0] > '9' {
		return false
	}
	// A line break marks stray numeric text from table formatting, not a time.
	return !strings.Contains(first, "\n")
}
