package cli

import (
	"fmt"

	"github.com/pfrederiksen/calendar-scrape/internal/config"
	"github.com/pfrederiksen/calendar-scrape/internal/event"
	"github.com/pfrederiksen/calendar-scrape/internal/logger"
	"github.com/pfrederiksen/calendar-scrape/internal/storage"
)

// RowSource supplies the rows of one parsed page
type RowSource interface {
	Rows() []event.Row
	HighlightSet() *event.HighlightSet
}

// Pipeline classifies, assembles, filters and resolves the rows of a page
type Pipeline struct {
	classifier *event.Classifier
	resolver   *event.Resolver
	match      string
}

// Selected is the resolved result for one event selection
type Selected struct {
	Selection storage.Selection
	Days      []event.ResolvedDay
	Skipped   []*event.ParseError
}

// Report is the outcome of one pipeline run
type Report struct {
	Stats    event.AssemblyStats
	Selected []Selected
}

// Skipped returns the total number of parse failures across selections
func (r *Report) Skipped() int {
	n := 0
	for _, s := range r.Selected {
		n += len(s.Skipped)
	}
	return n
}

// NewPipeline builds a pipeline from configuration
func NewPipeline(cfg *config.Config) (*Pipeline, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	months, err := cfg.MonthTable()
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		classifier: event.NewClassifier(cfg.Weekdays),
		resolver:   event.NewResolver(months, loc, event.EndTimePolicy(cfg.EndTimePolicy)),
		match:      cfg.HighlightMatch,
	}, nil
}

// Run processes src once and resolves each requested selection
func (p *Pipeline) Run(src RowSource, selections []storage.Selection) (*Report, error) {
	rows := src.Rows()

	assembler := event.NewAssembler(p.classifier)
	for _, row := range rows {
		kind := assembler.Feed(row)
		logger.Debug("row classified", logger.Fields{
			"index": row.Index,
			"kind":  kind.String(),
			"cells": row.Len(),
		})
	}
	mapping := assembler.Mapping()
	stats := assembler.Stats()

	logger.AddCounter("rows.total", int64(stats.Rows))
	logger.AddCounter("rows."+event.RowDayHeader.String(), int64(stats.DayHeaders))
	logger.AddCounter("rows."+event.RowEvent.String(), int64(stats.Events))
	logger.AddCounter("rows.orphan", int64(stats.Orphans))
	logger.AddCounter("rows."+event.RowNoise.String(), int64(stats.Noise))

	if stats.Orphans > 0 {
		logger.Warn("events before the first day header were dropped", logger.Fields{
			"count": stats.Orphans,
		})
	}

	report := &Report{Stats: stats}
	for _, sel := range selections {
		m := mapping
		if sel == storage.SelectionBold {
			m = p.highlighted(src, mapping)
		}

		days, err := p.resolver.ResolveAll(m)
		skipped := event.ParseErrors(err)
		if err != nil && len(skipped) == 0 {
			return nil, fmt.Errorf("resolving %s events: %w", sel, err)
		}
		logger.AddCounter("skipped."+string(sel), int64(len(skipped)))
		for _, pe := range skipped {
			logger.Warn("skipping unreadable "+pe.Field, logger.Fields{
				"selection": string(sel),
				"input":     pe.Input,
				"reason":    pe.Reason,
			})
		}

		report.Selected = append(report.Selected, Selected{
			Selection: sel,
			Days:      days,
			Skipped:   skipped,
		})
	}

	return report, nil
}

func (p *Pipeline) highlighted(src RowSource, mapping *event.Mapping) *event.Mapping {
	if p.match == config.MatchContent {
		return event.FilterBySet(mapping, src.HighlightSet())
	}
	return event.FilterHighlighted(mapping)
}

// spansDSTChange reports whether days contain events on both sides of a
// daylight saving transition
func spansDSTChange(days []event.ResolvedDay) bool {
	var dst, std bool
	for _, d := range days {
		for _, e := range d.Events {
			if e.DST() {
				dst = true
			} else {
				std = true
			}
		}
	}
	return dst && std
}
