package main

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/pfrederiksen/calendar-scrape/internal/calendar"
	"github.com/pfrederiksen/calendar-scrape/internal/event"
)

func main() {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading time zone: %v\n", err)
		os.Exit(1)
	}

	// Build a sample day the same way the scraper does
	resolver := event.NewResolver(event.DefaultMonths(), loc, event.EndTimeSource)
	day, err := resolver.ResolveDay("Monday, March 4, 2024", []event.Row{
		event.NewRow(0, true, "9:00 AM", "Grand Rounds", "Room 2"),
		event.NewRow(1, false, "12:15 PM", "Autopsy Seminar", "Reviewing cases", "Amphitheater"),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving sample day: %v\n", err)
		os.Exit(1)
	}

	// Generate .ics file
	icsContent := calendar.GenerateICS([]event.ResolvedDay{day}, "https://example.org/Calendar.aspx", time.Now())

	filename := "test-calendar.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated calendar file: %s\n\n", filename)
	fmt.Println("Import it into Google Calendar, Apple Calendar or Outlook and check that")
	fmt.Println("Grand Rounds runs 9:00-10:00 AM and Autopsy Seminar 12:15-1:00 PM Eastern.")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
