package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/calendar-scrape/internal/calendar"
	"github.com/pfrederiksen/calendar-scrape/internal/config"
	"github.com/pfrederiksen/calendar-scrape/internal/logger"
	"github.com/pfrederiksen/calendar-scrape/internal/scraper"
	"github.com/pfrederiksen/calendar-scrape/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitSkipped = 2 // some days or events could not be parsed
)

// Event selections accepted by --events
const (
	EventsAll         = "all"
	EventsHighlighted = "highlighted"
	EventsBoth        = "both"
)

var (
	flagConfig         string
	flagURL            string
	flagInput          string
	flagOutDir         string
	flagFormats        []string
	flagEvents         string
	flagHighlightMatch string
	flagEndTime        string
	flagTimezone       string
	flagSummary        string
	flagLogLevel       string
	flagDryRun         bool
	flagVerbose        bool

	exitCode = ExitSuccess
	now      = time.Now
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar-scrape",
		Short: "Convert the pathology department calendar page into CSV and iCalendar files",
		Long: `A CLI tool that scrapes the department's multi-day event calendar,
rebuilds the per-day event lists, infers end times and writes calendar files
for all events and for the highlighted (bold) events.`,
		SilenceUsage: true,
		RunE:         runScrape,
	}

	// Define flags
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&flagURL, "url", "", "Calendar page URL (overrides config)")
	cmd.Flags().StringVar(&flagInput, "input", "", "Read a saved HTML page instead of fetching")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", "", "Output directory (overrides config)")
	cmd.Flags().StringSliceVar(&flagFormats, "format", nil, "Output formats: csv, ics (overrides config)")
	cmd.Flags().StringVar(&flagEvents, "events", "", "Events to write: all, highlighted or both (overrides config)")
	cmd.Flags().StringVar(&flagHighlightMatch, "highlight-match", "", "Highlight detection: flag or content (overrides config)")
	cmd.Flags().StringVar(&flagEndTime, "end-time", "", "End time policy: source or hour-later (overrides config)")
	cmd.Flags().StringVar(&flagTimezone, "timezone", "", "IANA time zone of the page (overrides config)")
	cmd.Flags().StringVar(&flagSummary, "summary", "text", "Summary format: text or json")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Parse and summarize without writing files")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "List every event in the summary and report metrics")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	exitCode = ExitSuccess

	summaryFormat := OutputFormat(strings.ToLower(flagSummary))
	if summaryFormat != FormatText && summaryFormat != FormatJSON {
		return fmt.Errorf("invalid summary format: %s (must be 'text' or 'json')", flagSummary)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))
	logger.ResetMetrics()

	pipeline, err := NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("building pipeline: %w", err)
	}

	// Load the page
	page, source, err := loadPage(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	report, err := pipeline.Run(page, selections(cfg))
	if err != nil {
		return err
	}

	result := &OutputResult{
		CheckedAt: now().UTC(),
		Source:    source,
		Stats:     report.Stats,
		DryRun:    flagDryRun,
	}

	formats, err := cfg.OutputFormats()
	if err != nil {
		return err
	}

	var store *storage.Storage
	if !flagDryRun {
		store, err = storage.New(cfg.Output.Dir)
		if err != nil {
			return fmt.Errorf("initializing storage: %w", err)
		}
	}

	for _, sel := range report.Selected {
		summary := summarize(sel)
		result.Outputs = append(result.Outputs, summary)
		logger.SetGauge("events."+string(sel.Selection), float64(summary.EventCount))

		if spansDSTChange(sel.Days) {
			logger.Warn("calendar spans a daylight saving change; check imported times", logger.Fields{
				"selection": string(sel.Selection),
				"timezone":  cfg.Timezone,
			})
		}

		if store == nil {
			continue
		}
		files, err := writeFiles(store, sel, formats, cfg.URL)
		if err != nil {
			return err
		}
		result.Files = append(result.Files, files...)
	}

	if report.Skipped() > 0 {
		exitCode = ExitSkipped
	}

	if flagVerbose {
		logger.Info("run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, summaryFormat, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.URL = flagURL
	}
	if flags.Changed("out-dir") {
		cfg.Output.Dir = flagOutDir
	}
	if flags.Changed("format") {
		cfg.Output.Formats = flagFormats
	}
	if flags.Changed("highlight-match") {
		cfg.HighlightMatch = flagHighlightMatch
	}
	if flags.Changed("end-time") {
		cfg.EndTimePolicy = flagEndTime
	}
	if flags.Changed("timezone") {
		cfg.Timezone = flagTimezone
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("events") {
		switch strings.ToLower(flagEvents) {
		case EventsAll:
			cfg.Output.AllEvents, cfg.Output.HighlightedOnly = true, false
		case EventsHighlighted:
			cfg.Output.AllEvents, cfg.Output.HighlightedOnly = false, true
		case EventsBoth:
			cfg.Output.AllEvents, cfg.Output.HighlightedOnly = true, true
		default:
			return nil, fmt.Errorf("invalid events selection: %s (must be 'all', 'highlighted' or 'both')", flagEvents)
		}
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadPage fetches the page or reads it from --input. It returns the page and
// a description of where it came from.
func loadPage(ctx context.Context, cfg *config.Config) (*scraper.Page, string, error) {
	start := time.Now()
	defer func() { logger.RecordTiming("page.load", time.Since(start)) }()

	if flagInput != "" {
		logger.Info("reading saved page", logger.Fields{"path": flagInput})
		page, err := scraper.LoadFile(flagInput)
		if err != nil {
			return nil, "", fmt.Errorf("reading page: %w", err)
		}
		return page, flagInput, nil
	}

	sc := scraper.New(cfg.URL, cfg.UserAgent, time.Duration(cfg.Timeout))
	logger.Info("fetching calendar page", logger.Fields{"url": sc.URL()})

	page, err := sc.Fetch(ctx)
	if err != nil {
		logger.Error("fetch failed", logger.Fields{"url": sc.URL()}, err)
		return nil, "", fmt.Errorf("fetching calendar: %w", err)
	}
	return page, sc.URL(), nil
}

func selections(cfg *config.Config) []storage.Selection {
	var out []storage.Selection
	if cfg.Output.AllEvents {
		out = append(out, storage.SelectionAll)
	}
	if cfg.Output.HighlightedOnly {
		out = append(out, storage.SelectionBold)
	}
	return out
}

// writeFiles serializes one selection in every format and stores the files
func writeFiles(store *storage.Storage, sel Selected, formats []calendar.Format, sourceURL string) ([]string, error) {
	files := make([]string, 0, len(formats))
	for _, format := range formats {
		sink, err := calendar.NewSink(format, sourceURL)
		if err != nil {
			return nil, err
		}

		var buf bytes.Buffer
		if err := sink.Write(&buf, sel.Days); err != nil {
			return nil, fmt.Errorf("encoding %s %s: %w", sel.Selection, format, err)
		}

		name := storage.FileName(now(), sel.Selection, string(sink.Format()))
		path, err := store.WriteFile(name, buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("saving %s: %w", name, err)
		}

		logger.IncrCounter("files.written")
		logger.Info("wrote calendar file", logger.Fields{
			"path":   path,
			"events": calendar.CountEvents(sel.Days),
		})
		files = append(files, path)
	}
	return files, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(exitCode)
}

// ExitCode returns the exit status of the last run
func ExitCode() int {
	return exitCode
}
