package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)

	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "page parsed",
			fields:  Fields{"rows": 42},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "row classified",
			want:    false,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "fetch failed",
			err:     errors.New("connection refused"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			logged := buf.Len() > 0
			if logged != tt.want {
				t.Fatalf("log() logged = %v, want %v", logged, tt.want)
			}
			if !logged {
				return
			}

			var entry LogEntry
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("log line is not JSON: %v", err)
			}
			if entry.Message != tt.message || entry.Level != string(tt.level) {
				t.Errorf("entry = %+v", entry)
			}
			if tt.err != nil && entry.Error != tt.err.Error() {
				t.Errorf("Error = %q, want %q", entry.Error, tt.err.Error())
			}
		})
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug logs at debug", LevelDebug, LevelDebug, true},
		{"info logs at debug", LevelDebug, LevelInfo, true},
		{"debug doesn't log at info", LevelInfo, LevelDebug, false},
		{"warn doesn't log at error", LevelError, LevelWarn, false},
		{"error always logs", LevelDebug, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(tt.minLevel, &buf).log(tt.logLevel, "test", nil, nil)

			if logged := buf.Len() > 0; logged != tt.shouldLog {
				t.Errorf("shouldLog = %v, want %v", logged, tt.shouldLog)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" Warn ", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestSetDefault(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(New(LevelDebug, &buf))
	defer SetDefault(New(LevelInfo, &bytes.Buffer{}))

	Debug("row classified", Fields{"kind": "event"})
	Warn("day skipped", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], `"level":"WARN"`) {
		t.Errorf("second line should be a warning: %s", lines[1])
	}
}

func TestMetrics_Counter(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("rows.event")
	m.IncrCounter("rows.event")
	m.AddCounter("rows.event", 3)

	counters := m.GetSnapshot().Counters
	if counters["rows.event"] != 5 {
		t.Errorf("Counter = %v, want 5", counters["rows.event"])
	}
}

func TestMetrics_Gauge(t *testing.T) {
	m := NewMetrics()

	m.SetGauge("events.all", 12)
	m.SetGauge("events.all", 14)

	gauges := m.GetSnapshot().Gauges
	if gauges["events.all"] != 14 {
		t.Errorf("Gauge = %v, want 14", gauges["events.all"])
	}
}

func TestMetrics_Timing(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("fetch", 100*time.Millisecond)
	m.RecordTiming("fetch", 200*time.Millisecond)
	m.RecordTiming("fetch", 150*time.Millisecond)

	fetch, ok := m.GetSnapshot().Timings["fetch"]
	if !ok {
		t.Fatal("fetch timing missing")
	}
	if fetch.Count != 3 {
		t.Errorf("Timing count = %d, want 3", fetch.Count)
	}
	if fetch.Min != 100*time.Millisecond || fetch.Max != 200*time.Millisecond {
		t.Errorf("Min/Max = %v/%v, want 100ms/200ms", fetch.Min, fetch.Max)
	}
	if fetch.Average != 150*time.Millisecond {
		t.Errorf("Average = %v, want 150ms", fetch.Average)
	}
}

func TestMetrics_Reset(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("files.written")
	m.Reset()

	counters := m.GetSnapshot().Counters
	if len(counters) != 0 {
		t.Errorf("expected no counters after reset, got %v", counters)
	}
}
