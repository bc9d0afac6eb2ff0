package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/dailywisdom/internal/domain"
	"github.com/jsamuelsen/dailywisdom/internal/platform/logging"
	"github.com/jsamuelsen/dailywisdom/internal/ports"
)

// SyncedPayloadStrategy answers with the quote the host application stored
// for today. A payload stamped with another day is a miss.
type SyncedPayloadStrategy struct {
	settings ports.SharedSettings
}

// NewSyncedPayloadStrategy creates the synced-payload tier.
func NewSyncedPayloadStrategy(settings ports.SharedSettings) *SyncedPayloadStrategy {
	return &SyncedPayloadStrategy{settings: settings}
}

// Source implements ports.QuoteStrategy.
func (s *SyncedPayloadStrategy) Source() ports.QuoteSource {
	return ports.SourceSynced
}

// QuoteFor implements ports.QuoteStrategy. The stored quote is returned
// verbatim; it is not re-validated.
func (s *SyncedPayloadStrategy) QuoteFor(ctx context.Context, day domain.CalendarDay) (domain.Quote, bool) {
	if s.settings == nil {
		return domain.Quote{}, false
	}

	logger := logging.FromContext(ctx)

	payload, err := s.settings.DailyQuote(ctx)
	if err != nil {
		if !domain.IsNotFound(err) {
			logger.WarnContext(ctx, "synced quote unreadable, falling back",
				slog.Any("error", err),
			)
		}
		return domain.Quote{}, false
	}

	if payload.Day() != day {
		logger.DebugContext(ctx, "synced quote is stale",
			slog.String("stored_day", payload.Day().String()),
			slog.String("day", day.String()),
		)
		return domain.Quote{}, false
	}

	return payload.Quote, true
}

// CorpusIndexStrategy picks corpus[dayOfYear mod len(corpus)].
type CorpusIndexStrategy struct {
	corpus *CorpusProvider
}

// NewCorpusIndexStrategy creates the corpus rotation tier.
func NewCorpusIndexStrategy(corpus *CorpusProvider) *CorpusIndexStrategy {
	return &CorpusIndexStrategy{corpus: corpus}
}

// Source implements ports.QuoteStrategy.
func (s *CorpusIndexStrategy) Source() ports.QuoteSource {
	return ports.SourceCorpus
}

// QuoteFor implements ports.QuoteStrategy.
func (s *CorpusIndexStrategy) QuoteFor(ctx context.Context, day domain.CalendarDay) (domain.Quote, bool) {
	if s.corpus == nil {
		return domain.Quote{}, false
	}

	quotes := s.corpus.Quotes(ctx)
	if len(quotes) == 0 {
		return domain.Quote{}, false
	}

	return quotes[day.DayOfYear%len(quotes)], true
}

// PlaceholderStrategy always answers with the fixed placeholder quote.
type PlaceholderStrategy struct{}

// Source implements ports.QuoteStrategy.
func (PlaceholderStrategy) Source() ports.QuoteSource {
	return ports.SourcePlaceholder
}

// QuoteFor implements ports.QuoteStrategy.
func (PlaceholderStrategy) QuoteFor(context.Context, domain.CalendarDay) (domain.Quote, bool) {
	return domain.Placeholder(), true
}
