// Package domain contains core business entities and rules.
package domain

// PlaceholderID is the stable identifier of the placeholder quote.
const PlaceholderID = "widget-placeholder"

// Quote represents a quotation with its author.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID identifies the quote. Corpus quotes get a fresh ID on every load,
	// so it is not stable across processes.
	ID string

	// Text is the quotation itself.
	Text string

	// Author is who said or wrote the quote.
	Author string

	// Category is an optional, title-cased display label.
	Category *string
}

// CategoryOrEmpty returns the category, or "" when it is unset.
func (q Quote) CategoryOrEmpty() string {
	if q.Category == nil {
		return ""
	}

	return *q.Category
}

// Placeholder returns the quote shown when neither the host application nor
// the local corpus can provide one.
func Placeholder() Quote {
	category := "Inspiration"

	return Quote{
		ID:       PlaceholderID,
		Text:     "Every moment is a fresh beginning.",
		Author:   "T.S. Eliot",
		Category: &category,
	}
}

// DailyQuotePayload is the quote the host application selected for one
// calendar day. It is read-only from this module's point of view.
type DailyQuotePayload struct {
	Quote     Quote
	DayOfYear int
	Year      int
}

// Day returns the calendar day the payload is valid for.
func (p *DailyQuotePayload) Day() CalendarDay {
	return CalendarDay{Year: p.Year, DayOfYear: p.DayOfYear}
}
