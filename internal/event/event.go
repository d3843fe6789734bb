package event

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"
)

// ResolvedEvent is a calendar event after date normalisation and end-time
// inference. Start and End carry the calendar's time zone; use UTC() on them
// for absolute instants.
type ResolvedEvent struct {
	ID          string    `json:"id"`
	Day         string    `json:"day"`
	Subject     string    `json:"subject"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	StartText   string    `json:"start_text"` // raw time cell, e.g. "9:00 AM"
	Highlighted bool      `json:"highlighted,omitempty"`
}

// DST reports whether daylight saving time is in effect at the event's start.
func (e *ResolvedEvent) DST() bool {
	return e.Start.IsDST()
}

// UTCOffset returns the duration to add to the wall-clock start to reach UTC:
// 4h for Eastern daylight time, 5h for Eastern standard time.
func (e *ResolvedEvent) UTCOffset() time.Duration {
	_, offset := e.Start.Zone()
	return -time.Duration(offset) * time.Second
}

// ResolvedDay groups the resolved events of one day label, in document order.
type ResolvedDay struct {
	Label  string           `json:"label"`
	Date   Date             `json:"-"`
	Events []*ResolvedEvent `json:"events"`
}

// GenerateID creates a deterministic ID for an event from its day label and
// raw cell texts.
func GenerateID(label string, row Row) string {
	h := sha1.New()
	h.Write([]byte(label + "|" + strings.Join(row.Cells, "|")))
	return fmt.Sprintf("%x", h.Sum(nil))
}
