package calendar

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pfrederiksen/calendar-scrape/internal/event"
)

const (
	csvDateLayout = "2006/01/02"
	csvTimeLayout = "3:04 PM"
)

// CSVHeader is the first line of every CSV file
var CSVHeader = []string{
	"Subject",
	"Start Date", "Start Time",
	"End Date", "End Time",
	"Description", "Location",
}

// CSVSink writes one row per event
type CSVSink struct{}

// Format implements Sink
func (CSVSink) Format() Format {
	return FormatCSV
}

// Write implements Sink
func (CSVSink) Write(w io.Writer, days []event.ResolvedDay) error {
	return WriteCSV(w, days)
}

// WriteCSV writes the header followed by one row per event, in day order
func WriteCSV(w io.Writer, days []event.ResolvedDay) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, day := range days {
		for _, evt := range day.Events {
			if err := cw.Write(csvRecord(evt)); err != nil {
				return fmt.Errorf("writing event %s: %w", evt.ID, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvRecord(evt *event.ResolvedEvent) []string {
	return []string{
		evt.Subject,
		evt.Start.Format(csvDateLayout), evt.Start.Format(csvTimeLayout),
		evt.End.Format(csvDateLayout), evt.End.Format(csvTimeLayout),
		evt.Description,
		evt.Location,
	}
}
