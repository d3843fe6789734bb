// Package scraper provides HTTP fetching and HTML row extraction for the
// department calendar page.
//
// The page lays out a multi-day calendar as nested table rows. The scraper
// enumerates every <tr> in document order, collects the trimmed, non-empty
// text of its <td> cells and notes whether the row is rendered in bold. It
// does not interpret the rows; that is the job of the event package.
package scraper
