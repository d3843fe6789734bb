package event

// HighlightSet is the set of row contents harvested from bold-styled
// elements, matched by exact cell-for-cell equality.
type HighlightSet struct {
	rows map[string]struct{}
}

// NewHighlightSet builds a set from harvested cell lists.
func NewHighlightSet(rows ...[]string) *HighlightSet {
	s := &HighlightSet{rows: make(map[string]struct{}, len(rows))}
	for _, cells := range rows {
		s.Add(cells)
	}
	return s
}

// Add records one harvested row.
func (s *HighlightSet) Add(cells []string) {
	s.rows[contentKey(cells)] = struct{}{}
}

// Contains reports whether a row with exactly these cells was harvested.
func (s *HighlightSet) Contains(cells []string) bool {
	if s == nil {
		return false
	}
	_, ok := s.rows[contentKey(cells)]
	return ok
}

// Len returns the number of distinct rows in the set.
func (s *HighlightSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rows)
}

// FilterHighlighted returns a new Mapping with, for each day, only the
// events whose Highlighted flag was set during parsing. Every day of m is
// kept, possibly with no events.
func FilterHighlighted(m *Mapping) *Mapping {
	return filterMapping(m, func(row Row) bool { return row.Highlighted })
}

// FilterBySet returns a new Mapping with, for each day, only the events whose
// cells exactly equal an entry of set. Rows that differ in whitespace or cell
// order from their harvested counterpart are dropped.
func FilterBySet(m *Mapping, set *HighlightSet) *Mapping {
	return filterMapping(m, func(row Row) bool { return set.Contains(row.Cells) })
}

func filterMapping(m *Mapping, keep func(Row) bool) *Mapping {
	out := NewMapping()
	for _, label := range m.labels {
		out.startDay(label)
		for _, row := range m.events[label] {
			if keep(row) {
				out.add(label, row)
			}
		}
	}
	return out
}
