package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pfrederiksen/calendar-scrape/internal/event"
)

// Format names an output format
type Format string

const (
	FormatCSV Format = "csv"
	FormatICS Format = "ics"
)

// Sink writes resolved days in one output format
type Sink interface {
	// Format returns the format written, which doubles as the file extension
	Format() Format
	// Write serializes days to w
	Write(w io.Writer, days []event.ResolvedDay) error
}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatICS:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be 'csv' or 'ics')", s)
	}
}

// NewSink returns the sink for a format. sourceURL seeds the iCalendar UIDs.
func NewSink(format Format, sourceURL string) (Sink, error) {
	switch format {
	case FormatCSV:
		return CSVSink{}, nil
	case FormatICS:
		return &ICSSink{SourceURL: sourceURL, Now: time.Now}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// CountEvents returns the number of events across days
func CountEvents(days []event.ResolvedDay) int {
	n := 0
	for _, d := range days {
		n += len(d.Events)
	}
	return n
}
