package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/calendar-scrape/internal/calendar"
	"github.com/pfrederiksen/calendar-scrape/internal/event"
	"github.com/pfrederiksen/calendar-scrape/internal/storage"
)

// OutputFormat specifies the summary format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt time.Time           `json:"checked_at"`
	Source    string              `json:"source"`
	Stats     event.AssemblyStats `json:"stats"`
	Outputs   []OutputSummary     `json:"outputs"`
	Files     []string            `json:"files,omitempty"`
	DryRun    bool                `json:"dry_run,omitempty"`
}

// OutputSummary describes one event selection
type OutputSummary struct {
	Selection  storage.Selection   `json:"selection"`
	EventCount int                 `json:"event_count"`
	Days       []event.ResolvedDay `json:"days"`
	Skipped    []string            `json:"skipped,omitempty"`
}

func summarize(sel Selected) OutputSummary {
	out := OutputSummary{
		Selection:  sel.Selection,
		EventCount: calendar.CountEvents(sel.Days),
		Days:       sel.Days,
	}
	for _, pe := range sel.Skipped {
		out.Skipped = append(out.Skipped, pe.Error())
	}
	return out
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	fmt.Fprintf(w, "Source: %s\n", result.Source)
	fmt.Fprintf(w, "Rows: %d (%d day headers, %d events, %d ignored)\n",
		result.Stats.Rows, result.Stats.DayHeaders, result.Stats.Events, result.Stats.Noise)
	if result.Stats.Orphans > 0 {
		fmt.Fprintf(w, "Dropped %d event(s) listed before the first day\n", result.Stats.Orphans)
	}

	for _, out := range result.Outputs {
		fmt.Fprintf(w, "\n%s: %d event(s) on %d day(s)\n", out.Selection, out.EventCount, len(out.Days))

		if verbose {
			for _, day := range out.Days {
				fmt.Fprintf(w, "  %s\n", day.Label)
				if len(day.Events) == 0 {
					fmt.Fprintln(w, "    (no events)")
				}
				for _, e := range day.Events {
					fmt.Fprintf(w, "    %s - %s  %s @ %s\n",
						e.Start.Format("3:04 PM"), e.End.Format("3:04 PM"), e.Subject, e.Location)
				}
			}
		}

		for _, s := range out.Skipped {
			fmt.Fprintf(w, "  skipped: %s\n", s)
		}
	}

	if result.DryRun {
		fmt.Fprintln(w, "\nDry run: no files written")
		return nil
	}

	if len(result.Files) > 0 {
		fmt.Fprintln(w, "\nFiles:")
		for _, f := range result.Files {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
	return nil
}
