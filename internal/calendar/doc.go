// Package calendar writes resolved events to output files.
//
// Two sinks are provided: a tabular CSV writer whose columns match the
// common calendar-import layout (Subject, Start Date, Start Time, End Date,
// End Time, Description, Location), and an iCalendar (.ics) writer with one
// VEVENT per event. Both consume days in document order and keep event order
// within a day.
package calendar
