// Package app contains application services that orchestrate use cases.
// It coordinates domain logic and infrastructure through ports and never
// touches storage or resource formats directly.
package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/dailywisdom/internal/domain"
	"github.com/jsamuelsen/dailywisdom/internal/platform/logging"
	"github.com/jsamuelsen/dailywisdom/internal/ports"
)

const instrumentationName = "github.com/jsamuelsen/dailywisdom/internal/app"

// Resolution is the outcome of resolving the quote for a day.
type Resolution struct {
	Quote  domain.Quote
	Source ports.QuoteSource
	Day    domain.CalendarDay
}

// ResolverConfig contains configuration for the resolver.
type ResolverConfig struct {
	// Settings and Corpus build the default strategy chain:
	// synced payload, corpus index, placeholder.
	Settings ports.SharedSettings
	Corpus   *CorpusProvider

	// Strategies replaces the default chain when non-empty. The placeholder
	// is always appended, so resolution never comes back empty.
	Strategies []ports.QuoteStrategy

	// Location is the calendar used to compute the day. Defaults to time.Local.
	Location *time.Location

	Logger  *slog.Logger
	Metrics *Metrics
	Tracer  trace.Tracer
}

// Resolver answers "which quote is shown today". It only reads shared state
// and is safe for concurrent use.
type Resolver struct {
	strategies []ports.QuoteStrategy
	location   *time.Location
	logger     *slog.Logger
	metrics    *Metrics
	tracer     trace.Tracer
}

// NewResolver creates a resolver with the provided dependencies.
func NewResolver(cfg ResolverConfig) *Resolver {
	strategies := cfg.Strategies
	if len(strategies) == 0 {
		strategies = []ports.QuoteStrategy{
			NewSyncedPayloadStrategy(cfg.Settings),
			NewCorpusIndexStrategy(cfg.Corpus),
		}
	}

	strategies = append(append([]ports.QuoteStrategy(nil), strategies...), PlaceholderStrategy{})

	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(instrumentationName)
	}

	return &Resolver{
		strategies: strategies,
		location:   location,
		logger:     logger.With(slog.String("component", "app.Resolver")),
		metrics:    cfg.Metrics,
		tracer:     tracer,
	}
}

// Location returns the calendar location days are computed in.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Resolve walks the strategy chain for the calendar day containing t and
// returns the first answer. It never fails.
func (r *Resolver) Resolve(ctx context.Context, t time.Time) Resolution {
	day := domain.DayOf(t, r.location)

	ctx, span := r.tracer.Start(ctx, "Resolver.Resolve",
		trace.WithAttributes(
			attribute.Int("quote.day_of_year", day.DayOfYear),
			attribute.Int("quote.year", day.Year),
		),
	)
	defer span.End()

	logger := logging.FromContextOr(ctx, r.logger)

	for _, s := range r.strategies {
		quote, ok := s.QuoteFor(ctx, day)
		if !ok {
			continue
		}

		span.SetAttributes(
			attribute.String("quote.source", string(s.Source())),
			attribute.String("quote.id", quote.ID),
		)
		r.metrics.observeResolution(s.Source())

		logger.DebugContext(ctx, "quote resolved",
			slog.String("day", day.String()),
			slog.String("source", string(s.Source())),
			slog.String("quote_id", quote.ID),
		)

		return Resolution{Quote: quote, Source: s.Source(), Day: day}
	}

	// Unreachable: the placeholder strategy always answers.
	return Resolution{Quote: domain.Placeholder(), Source: ports.SourcePlaceholder, Day: day}
}

// QuoteOfToday returns the quote for the calendar day containing t.
func (r *Resolver) QuoteOfToday(ctx context.Context, t time.Time) domain.Quote {
	return r.Resolve(ctx, t).Quote
}
