package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/calendar-scrape/internal/event"
)

const (
	CalendarURL = "http://bwhpathology.partners.org/Calendar.aspx"
	UserAgent   = "calendar-scrape/1.0 (github.com/pfrederiksen/calendar-scrape)"
	Timeout     = 30 * time.Second
)

// Scraper handles fetching the calendar page
type Scraper struct {
	client    *http.Client
	url       string
	userAgent string
}

// New creates a new Scraper instance. Empty arguments fall back to the
// package defaults.
func New(url, userAgent string, timeout time.Duration) *Scraper {
	if url == "" {
		url = CalendarURL
	}
	if userAgent == "" {
		userAgent = UserAgent
	}
	if timeout <= 0 {
		timeout = Timeout
	}
	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
		},
		url:       url,
		userAgent: userAgent,
	}
}

// URL returns the page address the scraper fetches.
func (s *Scraper) URL() string {
	return s.url
}

// Fetch downloads and parses the calendar page
func (s *Scraper) Fetch(ctx context.Context) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return ParsePage(resp.Body)
}

// LoadFile parses a calendar page saved on disk
func LoadFile(path string) (*Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer f.Close()

	return ParsePage(f)
}

// Page is a parsed calendar document
type Page struct {
	doc *goquery.Document
}

// ParsePage parses HTML into a Page
func ParsePage(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &Page{doc: doc}, nil
}

// Rows returns every table row that has at least one non-empty cell, in
// document order. Cells of nested tables count towards the enclosing row as
// well as their own, the same way a recursive <td> search sees them.
func (p *Page) Rows() []event.Row {
	rows := make([]event.Row, 0)

	p.doc.Find("tr").Each(func(i int, tr *goquery.Selection) {
		cells := cellTexts(tr)
		if len(cells) == 0 {
			return
		}
		rows = append(rows, event.NewRow(i, isHighlightedRow(tr), cells...))
	})

	return rows
}

// HighlightSet harvests rows from every element styled bold, independently of
// Rows. Each styled element contributes the non-empty text of all <td> cells
// beneath it as one entry.
func (p *Page) HighlightSet() *event.HighlightSet {
	set := event.NewHighlightSet()

	p.doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		if !isBoldStyle(sel.AttrOr("style", "")) {
			return
		}
		if cells := cellTexts(sel); len(cells) > 0 {
			set.Add(cells)
		}
	})

	return set
}

// cellTexts returns the trimmed, non-empty text of every <td> below sel
func cellTexts(sel *goquery.Selection) []string {
	cells := make([]string, 0)
	sel.Find("td").Each(func(_ int, td *goquery.Selection) {
		if text := strings.TrimSpace(td.Text()); text != "" {
			cells = append(cells, text)
		}
	})
	return cells
}

// isHighlightedRow reports whether a row is rendered bold: either the row
// itself carries a bold style, or every non-empty cell does (by style or by
// wrapping its whole text in <b>/<strong>).
func isHighlightedRow(tr *goquery.Selection) bool {
	if isBoldStyle(tr.AttrOr("style", "")) {
		return true
	}

	nonEmpty := 0
	allBold := true
	tr.ChildrenFiltered("td").Each(func(_ int, td *goquery.Selection) {
		text := strings.TrimSpace(td.Text())
		if text == "" {
			return
		}
		nonEmpty++
		if !isBoldCell(td, text) {
			allBold = false
		}
	})
	return nonEmpty > 0 && allBold
}

func isBoldCell(td *goquery.Selection, text string) bool {
	if isBoldStyle(td.AttrOr("style", "")) {
		return true
	}
	emphasised := strings.TrimSpace(td.ChildrenFiltered("b, strong").Text())
	return emphasised == text
}

// isBoldStyle reports whether an inline style declares a bold font weight
func isBoldStyle(style string) bool {
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(prop), "font-weight") {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "bold", "bolder", "700", "800", "900":
			return true
		}
	}
	return false
}
