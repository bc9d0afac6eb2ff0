package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jsamuelsen/dailywisdom/internal/domain"
	"github.com/jsamuelsen/dailywisdom/internal/ports"
)

// CorpusDecoder turns raw corpus bytes into normalized quotes.
type CorpusDecoder func(data []byte) ([]domain.Quote, error)

// CorpusProviderConfig contains configuration for the corpus provider.
type CorpusProviderConfig struct {
	// Readers are tried in order. The first one whose bytes decode to at
	// least one quote wins; sources are never merged.
	Readers []ports.ResourceReader

	// Decode parses the bytes a reader returns.
	Decode CorpusDecoder

	// Fallback is used only when no reader yields any bytes at all.
	Fallback []domain.Quote

	Logger *slog.Logger
}

// CorpusProvider loads the local quote corpus once and serves it for the
// remainder of the process. Invalidate drops the cached list so the next
// caller recomputes it.
type CorpusProvider struct {
	readers  []ports.ResourceReader
	decode   CorpusDecoder
	fallback []domain.Quote
	logger   *slog.Logger

	mu     sync.Mutex
	quotes []domain.Quote
	loaded bool
}

// NewCorpusProvider creates a corpus provider. It panics if Decode is nil.
func NewCorpusProvider(cfg CorpusProviderConfig) *CorpusProvider {
	if cfg.Decode == nil {
		panic("app: CorpusProviderConfig.Decode is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CorpusProvider{
		readers:  cfg.Readers,
		decode:   cfg.Decode,
		fallback: cfg.Fallback,
		logger:   logger.With(slog.String("component", "app.CorpusProvider")),
	}
}

// Quotes returns the corpus. The first call loads it; later calls return the
// cached list. An empty result means no usable corpus exists.
func (p *CorpusProvider) Quotes(ctx context.Context) []domain.Quote {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.loaded {
		p.quotes = p.load(ctx)
		p.loaded = true
	}

	return p.quotes
}

// Len returns the corpus size, loading it if needed.
func (p *CorpusProvider) Len(ctx context.Context) int {
	return len(p.Quotes(ctx))
}

// Invalidate discards the cached corpus.
func (p *CorpusProvider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.quotes = nil
	p.loaded = false
}

func (p *CorpusProvider) load(ctx context.Context) []domain.Quote {
	sawBytes := false

	for _, r := range p.readers {
		data, ok := r.ReadCorpusBytes(ctx)
		if !ok {
			continue
		}

		sawBytes = true

		quotes, err := p.decode(data)
		if err != nil {
			p.logger.WarnContext(ctx, "corpus resource could not be decoded",
				slog.String("source", r.Name()),
				slog.Any("error", err),
			)
			continue
		}

		if len(quotes) == 0 {
			p.logger.WarnContext(ctx, "corpus resource has no valid quotes",
				slog.String("source", r.Name()),
			)
			continue
		}

		p.logger.InfoContext(ctx, "corpus loaded",
			slog.String("source", r.Name()),
			slog.Int("quotes", len(quotes)),
		)

		return quotes
	}

	if !sawBytes && len(p.fallback) > 0 {
		p.logger.InfoContext(ctx, "no corpus resource bundled, using embedded quotes",
			slog.Int("quotes", len(p.fallback)),
		)

		return append([]domain.Quote(nil), p.fallback...)
	}

	p.logger.WarnContext(ctx, "corpus unavailable, placeholder will be served")

	return nil
}

// Name implements ports.HealthChecker.
func (p *CorpusProvider) Name() string {
	return "corpus"
}

// Check implements ports.HealthChecker. An empty corpus is reported as
// unavailable even though the resolver still answers with the placeholder.
func (p *CorpusProvider) Check(ctx context.Context) error {
	if p.Len(ctx) == 0 {
		return domain.NewUnavailableError("corpus", "no quotes loaded")
	}

	return nil
}
