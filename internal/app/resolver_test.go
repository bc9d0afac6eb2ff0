package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/dailywisdom/internal/domain"
	"github.com/jsamuelsen/dailywisdom/internal/mocks"
	"github.com/jsamuelsen/dailywisdom/internal/ports"
)

// fixedCorpus returns a provider holding quotes "q0".."q{n-1}".
func fixedCorpus(n int) *CorpusProvider {
	quotes := make([]domain.Quote, n)
	for i := range quotes {
		quotes[i] = domain.Quote{
			ID:     fmt.Sprintf("q%d", i),
			Text:   fmt.Sprintf("quote %d", i),
			Author: "tester",
		}
	}

	return NewCorpusProvider(CorpusProviderConfig{
		Decode:   lineDecoder,
		Fallback: quotes,
		Logger:   discardLogger(),
	})
}

func noPayload(t *testing.T) *mocks.MockSharedSettings {
	m := mocks.NewMockSharedSettings(t)
	m.EXPECT().DailyQuote(mock.Anything).
		Return(nil, domain.NewNotFoundError("key", ports.DailyQuoteKey)).Maybe()
	return m
}

func payloadFor(t *testing.T, quote domain.Quote, dayOfYear, year int) *mocks.MockSharedSettings {
	m := mocks.NewMockSharedSettings(t)
	m.EXPECT().DailyQuote(mock.Anything).
		Return(&domain.DailyQuotePayload{Quote: quote, DayOfYear: dayOfYear, Year: year}, nil)
	return m
}

func newTestResolver(settings ports.SharedSettings, corpus *CorpusProvider) *Resolver {
	return NewResolver(ResolverConfig{
		Settings: settings,
		Corpus:   corpus,
		Location: time.UTC,
		Logger:   discardLogger(),
	})
}

func date(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func TestResolver_SyncedPayloadPrecedence(t *testing.T) {
	// 2026-02-10 is day 41.
	synced := domain.Quote{ID: "host-1", Text: "", Author: "  "}
	r := newTestResolver(payloadFor(t, synced, 41, 2026), fixedCorpus(5))

	res := r.Resolve(context.Background(), date(2026, time.February, 10, 9, 30))

	assert.Equal(t, ports.SourceSynced, res.Source)
	assert.Equal(t, synced, res.Quote)
	assert.Equal(t, domain.CalendarDay{Year: 2026, DayOfYear: 41}, res.Day)
}

func TestResolver_StalePayloadFallsThrough(t *testing.T) {
	synced := domain.Quote{ID: "host-1", Text: "t", Author: "a"}

	tests := []struct {
		name      string
		dayOfYear int
		year      int
	}{
		{name: "yesterday", dayOfYear: 40, year: 2026},
		{name: "same ordinal last year", dayOfYear: 41, year: 2025},
		{name: "tomorrow", dayOfYear: 42, year: 2026},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(payloadFor(t, synced, tt.dayOfYear, tt.year), fixedCorpus(5))

			res := r.Resolve(context.Background(), date(2026, time.February, 10, 9, 30))

			assert.Equal(t, ports.SourceCorpus, res.Source)
			// 41 mod 5 = 1
			assert.Equal(t, "q1", res.Quote.ID)
		})
	}
}

func TestResolver_UnreadablePayloadFallsThrough(t *testing.T) {
	settings := mocks.NewMockSharedSettings(t)
	settings.EXPECT().DailyQuote(mock.Anything).
		Return(nil, domain.NewValidationError(ports.DailyQuoteKey, "unexpected end of JSON input"))

	r := newTestResolver(settings, fixedCorpus(3))

	res := r.Resolve(context.Background(), date(2026, time.January, 1, 0, 0))

	assert.Equal(t, ports.SourceCorpus, res.Source)
	assert.Equal(t, "q1", res.Quote.ID)
}

func TestResolver_Determinism(t *testing.T) {
	r := newTestResolver(noPayload(t), fixedCorpus(7))
	ctx := context.Background()

	first := r.QuoteOfToday(ctx, date(2026, time.June, 15, 0, 0))

	for _, ts := range []time.Time{
		date(2026, time.June, 15, 0, 1),
		date(2026, time.June, 15, 12, 0),
		date(2026, time.June, 15, 23, 59),
		time.Date(2026, time.June, 15, 23, 59, 59, 999999999, time.UTC),
	} {
		assert.Equal(t, first, r.QuoteOfToday(ctx, ts), "time %s", ts)
	}
}

func TestResolver_RotationPeriod(t *testing.T) {
	const n = 7

	r := newTestResolver(noPayload(t), fixedCorpus(n))
	ctx := context.Background()
	start := date(2026, time.January, 1, 8, 0)

	for k := 0; k < 30; k++ {
		day := start.AddDate(0, 0, k)

		assert.Equal(t,
			r.QuoteOfToday(ctx, day),
			r.QuoteOfToday(ctx, day.AddDate(0, 0, n)),
			"day %d and %d", k+1, k+1+n,
		)
		assert.NotEqual(t,
			r.QuoteOfToday(ctx, day).ID,
			r.QuoteOfToday(ctx, day.AddDate(0, 0, 1)).ID,
			"day %d and %d", k+1, k+2,
		)
	}
}

func TestResolver_SingleQuoteCorpus(t *testing.T) {
	r := newTestResolver(noPayload(t), fixedCorpus(1))

	for k := 0; k < 5; k++ {
		assert.Equal(t, "q0", r.QuoteOfToday(context.Background(), date(2026, time.March, 1+k, 0, 0)).ID)
	}
}

func TestResolver_LeapYearShiftsIndex(t *testing.T) {
	r := newTestResolver(noPayload(t), fixedCorpus(10))
	ctx := context.Background()

	leap := r.Resolve(ctx, date(2024, time.March, 1, 12, 0))
	common := r.Resolve(ctx, date(2026, time.March, 1, 12, 0))

	assert.Equal(t, 61, leap.Day.DayOfYear)
	assert.Equal(t, 60, common.Day.DayOfYear)
	assert.Equal(t, "q1", leap.Quote.ID)
	assert.Equal(t, "q0", common.Quote.ID)
}

func TestResolver_EmptyCorpusServesPlaceholder(t *testing.T) {
	empty := NewCorpusProvider(CorpusProviderConfig{
		Readers: []ports.ResourceReader{missingReader("asset")},
		Decode:  lineDecoder,
		Logger:  discardLogger(),
	})
	r := newTestResolver(noPayload(t), empty)

	res := r.Resolve(context.Background(), date(2026, time.July, 4, 18, 0))

	assert.Equal(t, ports.SourcePlaceholder, res.Source)
	assert.Equal(t, domain.PlaceholderID, res.Quote.ID)
	assert.Equal(t, domain.Placeholder(), res.Quote)
}

func TestResolver_NoDependenciesServesPlaceholder(t *testing.T) {
	r := NewResolver(ResolverConfig{Logger: discardLogger()})

	assert.Equal(t, domain.PlaceholderID, r.QuoteOfToday(context.Background(), time.Now()).ID)
	assert.Equal(t, time.Local, r.Location())
}

func TestResolver_UsesConfiguredLocation(t *testing.T) {
	// 12:00 UTC on Jan 1 is already Jan 2 at UTC+14.
	kiritimati := time.FixedZone("LINT", 14*60*60)
	r := NewResolver(ResolverConfig{
		Settings: noPayload(t),
		Corpus:   fixedCorpus(10),
		Location: kiritimati,
		Logger:   discardLogger(),
	})

	res := r.Resolve(context.Background(), date(2026, time.January, 1, 12, 0))

	assert.Equal(t, domain.CalendarDay{Year: 2026, DayOfYear: 2}, res.Day)
	assert.Equal(t, "q2", res.Quote.ID)
}

// stubStrategy answers from a fixed map of day-of-year to quote.
type stubStrategy struct {
	source ports.QuoteSource
	quotes map[int]domain.Quote
}

func (s stubStrategy) Source() ports.QuoteSource { return s.source }

func (s stubStrategy) QuoteFor(_ context.Context, day domain.CalendarDay) (domain.Quote, bool) {
	q, ok := s.quotes[day.DayOfYear]
	return q, ok
}

func TestResolver_CustomStrategiesKeepPlaceholder(t *testing.T) {
	r := NewResolver(ResolverConfig{
		Strategies: []ports.QuoteStrategy{
			stubStrategy{source: "first", quotes: map[int]domain.Quote{1: {ID: "one"}}},
			stubStrategy{source: "second", quotes: map[int]domain.Quote{1: {ID: "shadowed"}, 2: {ID: "two"}}},
		},
		Location: time.UTC,
		Logger:   discardLogger(),
	})
	ctx := context.Background()

	tests := []struct {
		day      int
		expected string
		source   ports.QuoteSource
	}{
		{day: 1, expected: "one", source: "first"},
		{day: 2, expected: "two", source: "second"},
		{day: 3, expected: domain.PlaceholderID, source: ports.SourcePlaceholder},
	}

	for _, tt := range tests {
		res := r.Resolve(ctx, date(2026, time.January, tt.day, 10, 0))
		assert.Equal(t, tt.expected, res.Quote.ID)
		assert.Equal(t, tt.source, res.Source)
	}
}

func TestResolver_CountsResolutions(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	r := NewResolver(ResolverConfig{
		Settings: noPayload(t),
		Corpus:   fixedCorpus(3),
		Location: time.UTC,
		Logger:   discardLogger(),
		Metrics:  metrics,
	})

	for range 4 {
		r.Resolve(context.Background(), time.Now())
	}

	assert.InDelta(t, 4, testutil.ToFloat64(metrics.resolutions.WithLabelValues("corpus")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.resolutions.WithLabelValues("synced")), 0)
}

func TestNewMetrics_ReusesRegisteredCollector(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := NewMetrics(reg)
	second := NewMetrics(reg)

	first.observeResolution(ports.SourcePlaceholder)
	second.observeResolution(ports.SourcePlaceholder)

	require.Same(t, first.resolutions, second.resolutions)
	assert.InDelta(t, 2, testutil.ToFloat64(first.resolutions.WithLabelValues("placeholder")), 0)
}

func TestResolver_ConcurrentUse(t *testing.T) {
	r := newTestResolver(noPayload(t), fixedCorpus(11))
	ts := date(2026, time.September, 9, 9, 9)
	want := r.QuoteOfToday(context.Background(), ts)

	done := make(chan domain.Quote)
	for range 32 {
		go func() { done <- r.QuoteOfToday(context.Background(), ts) }()
	}
	for range 32 {
		assert.Equal(t, want, <-done)
	}
}
