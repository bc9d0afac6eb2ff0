// Package hostsync reads the values the host application publishes through
// the shared key-value store and translates them into domain types.
//
// The JSON shapes here are the host's contract. Keys are case-sensitive;
// values are decoded into package-private DTOs and never leave this package.
package hostsync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/dailywisdom/internal/domain"
	"github.com/jsamuelsen/dailywisdom/internal/platform/logging"
	"github.com/jsamuelsen/dailywisdom/internal/platform/strictjson"
	"github.com/jsamuelsen/dailywisdom/internal/ports"
)

// validate is the package-level validator instance.
var validate = validator.New(validator.WithRequiredStructEnabled())

// quoteDTO mirrors the host's Quote encoding. Pointers distinguish a missing
// field (decode failure) from an empty one (accepted as-is).
type quoteDTO struct {
	ID       *string `json:"id"       validate:"required"`
	Text     *string `json:"text"     validate:"required"`
	Author   *string `json:"author"   validate:"required"`
	Category *string `json:"category"`
}

type dailyQuoteDTO struct {
	Quote     *quoteDTO `json:"quote"     validate:"required"`
	DayOfYear *int      `json:"dayOfYear" validate:"required"`
	Year      *int      `json:"year"      validate:"required"`
}

type appearanceDTO struct {
	Font string `json:"font" validate:"required,oneof=serif sans mono"`
	Size string `json:"size" validate:"required,oneof=sm md lg"`
}

// Config contains configuration for the settings reader.
type Config struct {
	// Store is the shared key-value store the host writes to.
	Store ports.KeyValueStore

	// Logger is the structured logger.
	Logger *slog.Logger
}

// Settings implements ports.SharedSettings on top of a KeyValueStore.
type Settings struct {
	store  ports.KeyValueStore
	logger *slog.Logger
}

// New creates a settings reader.
// Panics if Store is nil. Defaults logger to slog.Default() if nil.
func New(cfg Config) *Settings {
	if cfg.Store == nil {
		panic("hostsync: Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Settings{
		store:  cfg.Store,
		logger: logger,
	}
}

// DailyQuote implements ports.SharedSettings.
func (s *Settings) DailyQuote(ctx context.Context) (*domain.DailyQuotePayload, error) {
	var dto dailyQuoteDTO
	if err := s.read(ctx, ports.DailyQuoteKey, &dto); err != nil {
		return nil, err
	}

	payload := &domain.DailyQuotePayload{
		Quote: domain.Quote{
			ID:       *dto.Quote.ID,
			Text:     *dto.Quote.Text,
			Author:   *dto.Quote.Author,
			Category: dto.Quote.Category,
		},
		DayOfYear: *dto.DayOfYear,
		Year:      *dto.Year,
	}

	s.logger.Log(ctx, logging.LevelTrace, "decoded synchronized quote",
		slog.String("quote_id", payload.Quote.ID),
		slog.Int("day_of_year", payload.DayOfYear),
		slog.Int("year", payload.Year),
	)

	return payload, nil
}

// Appearance implements ports.SharedSettings.
func (s *Settings) Appearance(ctx context.Context) (*domain.AppearanceSettings, error) {
	var dto appearanceDTO
	if err := s.read(ctx, ports.AppearanceKey, &dto); err != nil {
		return nil, err
	}

	return &domain.AppearanceSettings{
		Font: domain.FontFamily(dto.Font),
		Size: domain.TextSize(dto.Size),
	}, nil
}

// read fetches key, decodes it into target and validates the result. A
// required key spelled in another case counts as missing.
func (s *Settings) read(ctx context.Context, key string, target any) error {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("reading %s: %w", key, err)
	}

	if err := strictjson.Unmarshal(raw, target); err != nil {
		return domain.NewValidationError(key, err.Error())
	}

	if err := validate.Struct(target); err != nil {
		return domain.NewValidationError(key, err.Error())
	}

	return nil
}
