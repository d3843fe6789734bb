package event

// assemblyState is the assembler's position in the row stream: either no day
// header has been seen yet, or events attach to the current day.
type assemblyState int

const (
	noCurrentDay assemblyState = iota
	currentDay
)

// AssemblyStats counts what the assembler saw.
type AssemblyStats struct {
	Rows       int `json:"rows"`
	DayHeaders int `json:"day_headers"`
	Events     int `json:"events"`
	Orphans    int `json:"orphans"` // events seen before any day header
	Noise      int `json:"noise"`
}

// Assembler folds a classified row stream, in document order, into a Mapping.
// An event row attaches to the nearest preceding day header.
type Assembler struct {
	classifier *Classifier
	state      assemblyState
	current    string
	mapping    *Mapping
	stats      AssemblyStats
}

// NewAssembler creates an Assembler in the no-current-day state.
func NewAssembler(classifier *Classifier) *Assembler {
	return &Assembler{
		classifier: classifier,
		state:      noCurrentDay,
		mapping:    NewMapping(),
	}
}

// Feed classifies a row and applies it to the mapping. It returns the row's kind.
func (a *Assembler) Feed(row Row) RowKind {
	c := a.classifier.Classify(row)
	a.stats.Rows++

	switch c.Kind {
	case RowDayHeader:
		a.stats.DayHeaders++
		a.mapping.startDay(c.Label)
		a.current = c.Label
		a.state = currentDay
	case RowEvent:
		if a.state == noCurrentDay {
			// No owning header: dropped silently.
			a.stats.Orphans++
			break
		}
		a.stats.Events++
		a.mapping.add(a.current, row)
	default:
		a.stats.Noise++
	}

	return c.Kind
}

// Mapping returns the mapping built so far.
func (a *Assembler) Mapping() *Mapping {
	return a.mapping
}

// Stats returns the counters accumulated so far.
func (a *Assembler) Stats() AssemblyStats {
	return a.stats
}

// Assemble runs a fresh Assembler over rows and returns the completed mapping.
func Assemble(classifier *Classifier, rows []Row) (*Mapping, AssemblyStats) {
	a := NewAssembler(classifier)
	for _, row := range rows {
		a.Feed(row)
	}
	return a.Mapping(), a.Stats()
}
