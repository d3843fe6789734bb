// Package storage manages the directory generated calendar files are written to.
//
// Files are named after the run date and the event selection, for example
// "03-04-2024 all calendar items.ics" or "03-04-2024 bold calendar items.csv",
// and are written atomically so a calendar client never imports a partial file.
// The default location is ~/.local/share/calendar-scrape/.
package storage
