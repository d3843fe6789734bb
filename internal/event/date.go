package event

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthTable maps month names as printed in day labels to calendar months.
type MonthTable map[string]time.Month

// DefaultMonths returns a fresh table of the English month names.
func DefaultMonths() MonthTable {
	t := make(MonthTable, 12)
	for m := time.January; m <= time.December; m++ {
		t[m.String()] = m
	}
	return t
}

// Date is a calendar date without time of day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// String formats the date as YYYY/MM/DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, int(d.Month), d.Day)
}

// At returns the wall-clock instant hour:minute on this date in loc.
func (d Date) At(hour, minute int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, loc)
}

// ParseDayLabel decomposes a label of the form "Monday, March 4, 2024".
//
// The label is split on commas into weekday, "Month Day" and year; the month
// name is looked up in months. The weekday token itself is not validated
// against the date.
func ParseDayLabel(label string, months MonthTable) (Date, error) {
	parts := strings.Split(label, ",")
	if len(parts) != 3 {
		return Date{}, dayLabelError(label, "expected 3 comma-separated parts, got %d", len(parts))
	}

	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return Date{}, dayLabelError(label, "invalid year %q", strings.TrimSpace(parts[2]))
	}

	monthDay := strings.Fields(parts[1])
	if len(monthDay) != 2 {
		return Date{}, dayLabelError(label, "expected month and day, got %q", strings.TrimSpace(parts[1]))
	}

	month, ok := months[monthDay[0]]
	if !ok {
		return Date{}, dayLabelError(label, "unknown month %q", monthDay[0])
	}

	day, err := strconv.Atoi(monthDay[1])
	if err != nil {
		return Date{}, dayLabelError(label, "invalid day %q", monthDay[1])
	}

	// Reject dates time.Date would silently normalise, e.g. February 30.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, dayLabelError(label, "no such date")
	}

	return Date{Year: year, Month: month, Day: day}, nil
}
