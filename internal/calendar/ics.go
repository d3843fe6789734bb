package calendar

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/pfrederiksen/calendar-scrape/internal/event"
)

const ProductID = "-//Pathology Calendar//calendar-scrape//EN"

// ICSSink writes an iCalendar file with one VEVENT per event. Start and end
// are written as absolute UTC instants.
type ICSSink struct {
	// SourceURL namespaces the event UIDs
	SourceURL string
	// Now stamps DTSTAMP; defaults to time.Now
	Now func() time.Time
}

// Format implements Sink
func (s *ICSSink) Format() Format {
	return FormatICS
}

// Write implements Sink
func (s *ICSSink) Write(w io.Writer, days []event.ResolvedDay) error {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	if _, err := io.WriteString(w, GenerateICS(days, s.SourceURL, now())); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}

// GenerateICS generates an iCalendar document for all events of days
func GenerateICS(days []event.ResolvedDay, sourceURL string, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetProductId(ProductID)
	cal.SetMethod(ics.MethodPublish)

	for _, day := range days {
		for _, evt := range day.Events {
			vevent := cal.AddEvent(EventUID(sourceURL, evt))
			vevent.SetDtStampTime(stamp)
			vevent.SetStartAt(evt.Start)
			vevent.SetEndAt(evt.End)
			vevent.SetSummary(evt.Subject)
			vevent.SetDescription(evt.Description)
			vevent.SetLocation(evt.Location)
			vevent.SetStatus(ics.ObjectStatusConfirmed)
		}
	}

	return cal.Serialize(ics.WithNewLineWindows)
}

// EventUID derives a stable UID for an event, so re-importing the same
// page updates entries instead of duplicating them.
func EventUID(sourceURL string, evt *event.ResolvedEvent) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(sourceURL+"#"+evt.ID)).String()
}
