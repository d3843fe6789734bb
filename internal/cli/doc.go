// Package cli implements the command-line interface for calendar-scrape.
//
// The cli package provides the Cobra-based command that loads configuration,
// fetches (or reads) the calendar page, runs the event pipeline, writes CSV
// and iCalendar files for all events and for highlighted events, and prints
// a text or JSON run summary.
package cli
