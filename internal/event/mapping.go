package event

// Mapping is an insertion-ordered mapping from day label to that day's event
// rows. Day order follows the document.
type Mapping struct {
	labels []string
	events map[string][]Row
}

// NewMapping creates an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{events: make(map[string][]Row)}
}

// startDay creates or empties the entry for label. A label seen again keeps
// its original position but loses its earlier events.
func (m *Mapping) startDay(label string) {
	if _, ok := m.events[label]; !ok {
		m.labels = append(m.labels, label)
	}
	m.events[label] = []Row{}
}

func (m *Mapping) add(label string, row Row) {
	m.events[label] = append(m.events[label], row)
}

// Labels returns the day labels in document order.
func (m *Mapping) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)
	return out
}

// Events returns a copy of the event rows recorded for label.
func (m *Mapping) Events(label string) []Row {
	rows := m.events[label]
	out := make([]Row, len(rows))
	copy(out, rows)
	return out
}

// Len returns the number of days.
func (m *Mapping) Len() int {
	return len(m.labels)
}

// EventCount returns the number of event rows across all days.
func (m *Mapping) EventCount() int {
	n := 0
	for _, rows := range m.events {
		n += len(rows)
	}
	return n
}
