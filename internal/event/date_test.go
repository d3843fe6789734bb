package event

import (
	"errors"
	"testing"
	"time"
)

func TestParseDayLabel(t *testing.T) {
	months := DefaultMonths()

	tests := []struct {
		label   string
		want    Date
		wantErr bool
	}{
		{"Monday, March 4, 2024", Date{2024, time.March, 4}, false},
		{"Friday, December 27, 2024", Date{2024, time.December, 27}, false},
		{"Wednesday, January 01, 2025", Date{2025, time.January, 1}, false},
		{"Monday, Marchh 4, 2024", Date{}, true},
		{"Monday March 4 2024", Date{}, true},
		{"Monday, March 4, 2024, extra", Date{}, true},
		{"Monday, March, 2024", Date{}, true},
		{"Monday, March x, 2024", Date{}, true},
		{"Monday, March 4, twenty", Date{}, true},
		{"Friday, February 30, 2024", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseDayLabel(tt.label, months)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDayLabel(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if tt.wantErr {
				var pe *ParseError
				if !errors.As(err, &pe) || pe.Field != FieldDayLabel {
					t.Errorf("expected day label ParseError, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseDayLabel(%q) = %+v, want %+v", tt.label, got, tt.want)
			}
		})
	}
}

func TestParseDayLabel_InjectedMonths(t *testing.T) {
	months := MonthTable{"Sept": time.September}

	got, err := ParseDayLabel("Tuesday, Sept 3, 2024", months)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Month != time.September {
		t.Errorf("month = %v, want September", got.Month)
	}

	if _, err := ParseDayLabel("Tuesday, September 3, 2024", months); err == nil {
		t.Error("expected error for month missing from injected table")
	}
}

func TestDateString(t *testing.T) {
	d := Date{Year: 2024, Month: time.March, Day: 4}
	if got := d.String(); got != "2024/03/04" {
		t.Errorf("String() = %q, want 2024/03/04", got)
	}
}

func TestDefaultMonths(t *testing.T) {
	m := DefaultMonths()
	if len(m) != 12 || m["January"] != time.January || m["December"] != time.December {
		t.Errorf("unexpected default months: %v", m)
	}

	// Each call returns an independent table.
	m["Sept"] = time.September
	if _, ok := DefaultMonths()["Sept"]; ok {
		t.Error("DefaultMonths should not share state between calls")
	}
}
