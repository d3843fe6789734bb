package event

import (
	"errors"
	"strings"
	"time"
)

// Resolver turns a day label and an event row into a ResolvedEvent. It holds
// no state beyond its configuration.
type Resolver struct {
	months   MonthTable
	location *time.Location
	endTime  EndTimePolicy
}

// NewResolver creates a Resolver. A nil months table falls back to
// DefaultMonths, a nil location to UTC and an invalid policy to EndTimeSource.
func NewResolver(months MonthTable, location *time.Location, policy EndTimePolicy) *Resolver {
	if months == nil {
		months = DefaultMonths()
	}
	if location == nil {
		location = time.UTC
	}
	if !policy.Valid() {
		policy = EndTimeSource
	}
	return &Resolver{months: months, location: location, endTime: policy}
}

// Resolve builds the ResolvedEvent for one event row under label.
func (r *Resolver) Resolve(label string, row Row) (*ResolvedEvent, error) {
	date, err := ParseDayLabel(label, r.months)
	if err != nil {
		return nil, err
	}
	return r.resolveOn(date, label, row)
}

func (r *Resolver) resolveOn(date Date, label string, row Row) (*ResolvedEvent, error) {
	if row.Len() != 3 && row.Len() != 4 {
		return nil, startTimeError(strings.Join(row.Cells, " | "), "event rows have 3 or 4 cells, got %d", row.Len())
	}

	start, err := ParseClock(row.Cells[0])
	if err != nil {
		return nil, err
	}
	end, days := r.endTime.End(start)

	// The offset from UTC comes from the zone rules on the event's own date.
	startAt := date.At(start.Hour24(), start.Minute, r.location)
	endAt := date.At(end.Hour24(), end.Minute, r.location).AddDate(0, 0, days)

	var description string
	if row.Len() == 4 {
		description = stripLineBreaks(row.Cells[2])
	}

	return &ResolvedEvent{
		ID:          GenerateID(label, row),
		Day:         label,
		Subject:     row.Cells[1],
		Start:       startAt,
		End:         endAt,
		Description: description,
		Location:    row.Cells[row.Len()-1],
		StartText:   row.Cells[0],
		Highlighted: row.Highlighted,
	}, nil
}

// ResolveDay resolves every event of one day. Events with an unreadable
// start time are skipped and reported in the returned error; the remaining
// events are still returned. A bad label fails the whole day.
func (r *Resolver) ResolveDay(label string, rows []Row) (ResolvedDay, error) {
	date, err := ParseDayLabel(label, r.months)
	if err != nil {
		return ResolvedDay{}, err
	}

	day := ResolvedDay{Label: label, Date: date, Events: make([]*ResolvedEvent, 0, len(rows))}
	var errs []error
	for _, row := range rows {
		evt, err := r.resolveOn(date, label, row)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		day.Events = append(day.Events, evt)
	}
	return day, errors.Join(errs...)
}

// ResolveAll resolves a whole mapping in day order. A day whose label cannot
// be parsed is left out, a single bad event is left out of its day; both are
// reported through the joined error while every other day is returned.
func (r *Resolver) ResolveAll(m *Mapping) ([]ResolvedDay, error) {
	days := make([]ResolvedDay, 0, m.Len())
	var errs []error
	for _, label := range m.labels {
		day, err := r.ResolveDay(label, m.events[label])
		if err != nil {
			errs = append(errs, err)
		}
		if day.Label == "" {
			continue
		}
		days = append(days, day)
	}
	return days, errors.Join(errs...)
}

func stripLineBreaks(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
