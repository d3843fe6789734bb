// Package config loads the YAML configuration for calendar-scrape.
//
// A missing file is not an error: the defaults describe the public
// pathology calendar in US Eastern time. Values present in the file override
// the defaults; the month table is merged so extra spellings such as "Sept"
// can be added without repeating the whole year.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/calendar-scrape/internal/calendar"
	"github.com/pfrederiksen/calendar-scrape/internal/event"
	"github.com/pfrederiksen/calendar-scrape/internal/logger"
	"github.com/pfrederiksen/calendar-scrape/internal/scraper"
)

// Highlight matching modes.
const (
	// MatchFlag uses the bold flag recorded on each row while parsing.
	MatchFlag = "flag"
	// MatchContent re-harvests bold-styled elements and matches rows by exact cell text.
	MatchContent = "content"
)

// Duration is a time.Duration written as "30s" in YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// OutputConfig controls which files are written.
type OutputConfig struct {
	// Dir is the directory files are written to; "~/" is expanded.
	Dir string `yaml:"dir"`
	// Formats lists the output formats, "csv" and/or "ics".
	Formats []string `yaml:"formats"`
	// AllEvents writes a file with every event.
	AllEvents bool `yaml:"all_events"`
	// HighlightedOnly writes a file with only the bold events.
	HighlightedOnly bool `yaml:"highlighted_only"`
}

// Config is the top-level configuration.
type Config struct {
	URL       string   `yaml:"url"`
	UserAgent string   `yaml:"user_agent"`
	Timeout   Duration `yaml:"timeout"`

	// Timezone is the IANA zone the page's wall-clock times are in.
	Timezone string `yaml:"timezone"`

	// Weekdays are the weekday names that open a day header.
	Weekdays []string `yaml:"weekdays"`
	// Months maps month names in day headers to month numbers (1-12).
	Months map[string]int `yaml:"months"`

	// EndTimePolicy is "source" or "hour-later".
	EndTimePolicy string `yaml:"end_time_policy"`
	// HighlightMatch is "flag" or "content".
	HighlightMatch string `yaml:"highlight_match"`

	Output OutputConfig `yaml:"output"`

	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the in-memory defaults.
func DefaultConfig() *Config {
	months := make(map[string]int, 12)
	for name, m := range event.DefaultMonths() {
		months[name] = int(m)
	}

	return &Config{
		URL:            scraper.CalendarURL,
		UserAgent:      scraper.UserAgent,
		Timeout:        Duration(scraper.Timeout),
		Timezone:       "America/New_York",
		Weekdays:       event.DefaultWeekdays(),
		Months:         months,
		EndTimePolicy:  string(event.EndTimeSource),
		HighlightMatch: MatchFlag,
		Output: OutputConfig{
			Dir:             "~/.local/share/calendar-scrape",
			Formats:         []string{string(calendar.FormatICS)},
			AllEvents:       true,
			HighlightedOnly: true,
		},
		LogLevel: string(logger.LevelInfo),
	}
}

// Load reads the configuration at path on top of the defaults. An empty path
// or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Normalize fills zero values with defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.URL == "" {
		c.URL = def.URL
	}
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	if c.Timezone == "" {
		c.Timezone = def.Timezone
	}
	if len(c.Weekdays) == 0 {
		c.Weekdays = def.Weekdays
	}
	if len(c.Months) == 0 {
		c.Months = def.Months
	}
	c.EndTimePolicy = strings.ToLower(strings.TrimSpace(c.EndTimePolicy))
	if c.EndTimePolicy == "" {
		c.EndTimePolicy = def.EndTimePolicy
	}
	c.HighlightMatch = strings.ToLower(strings.TrimSpace(c.HighlightMatch))
	if c.HighlightMatch == "" {
		c.HighlightMatch = def.HighlightMatch
	}
	if c.Output.Dir == "" {
		c.Output.Dir = def.Output.Dir
	}
	if len(c.Output.Formats) == 0 {
		c.Output.Formats = def.Output.Formats
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// Validate checks the configuration for values the pipeline cannot use.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if !event.EndTimePolicy(c.EndTimePolicy).Valid() {
		return fmt.Errorf("end_time_policy must be %q or %q, got %q", event.EndTimeSource, event.EndTimeHourLater, c.EndTimePolicy)
	}
	if c.HighlightMatch != MatchFlag && c.HighlightMatch != MatchContent {
		return fmt.Errorf("highlight_match must be %q or %q, got %q", MatchFlag, MatchContent, c.HighlightMatch)
	}
	if _, err := c.MonthTable(); err != nil {
		return err
	}
	if _, err := c.OutputFormats(); err != nil {
		return err
	}
	if !c.Output.AllEvents && !c.Output.HighlightedOnly {
		return errors.New("output must enable all_events, highlighted_only or both")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Location loads the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// MonthTable converts the configured month numbers for the resolver.
func (c *Config) MonthTable() (event.MonthTable, error) {
	table := make(event.MonthTable, len(c.Months))
	for name, n := range c.Months {
		if n < 1 || n > 12 {
			return nil, fmt.Errorf("month %q has number %d, must be 1-12", name, n)
		}
		table[name] = time.Month(n)
	}
	return table, nil
}

// OutputFormats parses the configured formats, dropping duplicates.
func (c *Config) OutputFormats() ([]calendar.Format, error) {
	seen := make(map[calendar.Format]bool)
	formats := make([]calendar.Format, 0, len(c.Output.Formats))
	for _, s := range c.Output.Formats {
		f, err := calendar.ParseFormat(s)
		if err != nil {
			return nil, err
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}
	return formats, nil
}
