package event

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a 12-hour wall-clock time as printed on the page, e.g. "9:00 AM".
type Clock struct {
	Hour   int // 1..12
	Minute int
	PM     bool
}

// ParseClock parses "H:MM AM" or "H:MM PM". The indicator occupies the final
// two characters; the space before it is optional.
func ParseClock(text string) (Clock, error) {
	s := strings.TrimSpace(text)
	if len(s) < 2 {
		return Clock{}, startTimeError(text, "too short")
	}

	var pm bool
	switch strings.ToUpper(s[len(s)-2:]) {
	case "AM":
	case "PM":
		pm = true
	default:
		return Clock{}, startTimeError(text, "missing AM/PM indicator")
	}

	hh, mm, ok := strings.Cut(strings.TrimSpace(s[:len(s)-2]), ":")
	if !ok {
		return Clock{}, startTimeError(text, "expected H:MM")
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 1 || hour > 12 {
		return Clock{}, startTimeError(text, "invalid hour %q", hh)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 || minute < 0 || minute > 59 {
		return Clock{}, startTimeError(text, "invalid minute %q", mm)
	}

	return Clock{Hour: hour, Minute: minute, PM: pm}, nil
}

// Hour24 returns the hour on a 24-hour clock (12 AM is 0, 12 PM is 12).
func (c Clock) Hour24() int {
	h := c.Hour % 12
	if c.PM {
		h += 12
	}
	return h
}

// Indicator returns "AM" or "PM".
func (c Clock) Indicator() string {
	if c.PM {
		return "PM"
	}
	return "AM"
}

func (c Clock) String() string {
	return fmt.Sprintf("%d:%02d %s", c.Hour, c.Minute, c.Indicator())
}

// EndTimePolicy decides when an event ends; the page never says.
type EndTimePolicy string

const (
	// EndTimeSource is the calendar's historical rule: an 11 AM start ends
	// at 12:00 PM, any 12 o'clock start ends at 1:00 PM, anything else ends
	// one hour later on the clock face with the same AM/PM indicator.
	EndTimeSource EndTimePolicy = "source"
	// EndTimeHourLater keeps the two whole-hour rules for late morning and
	// noon but otherwise ends exactly one hour after the start, rolling AM/PM
	// and the date where needed.
	EndTimeHourLater EndTimePolicy = "hour-later"
)

// Valid reports whether p is a known policy.
func (p EndTimePolicy) Valid() bool {
	return p == EndTimeSource || p == EndTimeHourLater
}

// End returns the end clock for a start clock and the number of days the end
// lies after the start date.
func (p EndTimePolicy) End(start Clock) (Clock, int) {
	if start.Hour == 11 && !start.PM {
		return Clock{Hour: 12, Minute: 0, PM: true}, 0
	}

	if p == EndTimeHourLater {
		switch {
		case start.Hour == 12:
			return Clock{Hour: 1, Minute: 0, PM: start.PM}, 0
		case start.Hour == 11 && start.PM:
			return Clock{Hour: 12, Minute: start.Minute, PM: false}, 1
		default:
			return Clock{Hour: start.Hour + 1, Minute: start.Minute, PM: start.PM}, 0
		}
	}

	if start.Hour == 12 {
		return Clock{Hour: 1, Minute: 0, PM: true}, 0
	}
	// The indicator is never flipped here, so 11:30 PM ends at 12:30 PM.
	return Clock{Hour: start.Hour + 1, Minute: start.Minute, PM: start.PM}, 0
}
