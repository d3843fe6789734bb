// Package event reconstructs structured per-day event lists from the table
// rows of a rendered calendar page.
//
// Rows flow through a fixed pipeline: each Row is classified as a day
// header, an event or noise (Classifier); the classified stream is folded
// into an ordered Mapping from day label to event rows (Assemble); the
// Mapping is optionally narrowed to highlighted events (FilterHighlighted,
// FilterBySet); finally every event is resolved into absolute start and end
// instants (Resolver). Nothing in this package performs I/O.
package event
