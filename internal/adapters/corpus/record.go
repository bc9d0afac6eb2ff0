// Package corpus translates bundled quote corpora into domain quotes.
//
// It is the anti-corruption layer for the exported corpus format: a JSON
// array of objects with capitalized fields (Quote, Author, Tags, Category).
// Keys are case-sensitive and Quote and Author are required; a record that
// breaks the shape fails the whole resource. Records that fit the shape are
// normalized, and blank ones are dropped silently, so nothing outside this
// package sees the raw shape.
package corpus

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jsamuelsen/dailywisdom/internal/domain"
)

// QuoteRecord is the raw corpus entry as exported by the host application.
// Field names and optionality must stay compatible with existing corpora.
// Quote and Author are pointers so a missing or null key is distinguishable
// from an empty string.
type QuoteRecord struct {
	Quote    *string  `json:"Quote"`
	Author   *string  `json:"Author"`
	Tags     []string `json:"Tags,omitempty"`
	Category *string  `json:"Category,omitempty"`
}

// ToQuote normalizes the record. It returns false when the text or the
// author is absent or empty after trimming; such records never become
// quotes. Every accepted record gets a fresh random ID.
func (r *QuoteRecord) ToQuote() (domain.Quote, bool) {
	text, ok := cleaned(r.Quote)
	if !ok {
		return domain.Quote{}, false
	}

	author, ok := cleaned(r.Author)
	if !ok {
		return domain.Quote{}, false
	}

	return domain.Quote{
		ID:       uuid.NewString(),
		Text:     text,
		Author:   author,
		Category: r.category(),
	}, true
}

// category prefers the explicit Category field and otherwise takes the first
// tag that does not look like a machine slug (no '-' or '_').
func (r *QuoteRecord) category() *string {
	if explicit, ok := cleaned(r.Category); ok {
		return titled(explicit)
	}

	for i := range r.Tags {
		tag, ok := cleaned(&r.Tags[i])
		if !ok {
			continue
		}

		if strings.ContainsAny(tag, "-_") {
			continue
		}

		return titled(tag)
	}

	return nil
}

func cleaned(value *string) (string, bool) {
	if value == nil {
		return "", false
	}

	trimmed := strings.TrimSpace(*value)

	return trimmed, trimmed != ""
}

// titled capitalizes each word and lowercases the rest. Casers are stateful,
// so one is built per call.
func titled(s string) *string {
	t := cases.Title(language.Und).String(s)
	return &t
}
