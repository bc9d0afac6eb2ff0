package ports

import (
	"context"

	"github.com/jsamuelsen/dailywisdom/internal/domain"
)

// ResourceReader is a single source of bundled corpus bytes.
// Adapters exist per packaging target (embedded asset, file on disk).
type ResourceReader interface {
	// Name identifies the source in logs.
	Name() string

	// ReadCorpusBytes returns the raw corpus bytes, or false when this
	// source has nothing to offer. It never fails loudly.
	ReadCorpusBytes(ctx context.Context) ([]byte, bool)
}

// QuoteSource names the tier that produced a resolved quote.
type QuoteSource string

// Resolution tiers, in precedence order.
const (
	SourceSynced      QuoteSource = "synced"
	SourceCorpus      QuoteSource = "corpus"
	SourcePlaceholder QuoteSource = "placeholder"
)

// QuoteStrategy is one tier of the quote-of-day fallback chain.
type QuoteStrategy interface {
	// Source identifies the tier.
	Source() QuoteSource

	// QuoteFor returns the quote for day, or false if this tier has none.
	QuoteFor(ctx context.Context, day domain.CalendarDay) (domain.Quote, bool)
}
