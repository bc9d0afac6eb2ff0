// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter for every call that may touch storage
//   - Return domain types, never external DTOs or driver types
//   - Error returns use domain error types (ErrNotFound, ErrValidation, ErrUnavailable)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/dailywisdom/internal/domain"
)

// Shared-store keys written by the host application.
const (
	// DailyQuoteKey holds the JSON-encoded quote the host chose for today.
	DailyQuoteKey = "dailyQuoteOfToday"

	// AppearanceKey holds the JSON-encoded appearance settings.
	AppearanceKey = "dailyWisdomAppearance"
)

// KeyValueStore is the raw shared storage the host application writes to.
// This module only ever reads from it.
//
// Implementations: file, sqlite, redis, memory (see internal/adapters/store).
type KeyValueStore interface {
	// Get returns the raw bytes stored under key.
	// Returns domain.ErrNotFound if the key is absent and
	// domain.ErrUnavailable if the backend cannot be reached.
	Get(ctx context.Context, key string) ([]byte, error)
}

// SharedSettings reads the typed values the host application publishes
// through the shared store.
type SharedSettings interface {
	// DailyQuote returns the synchronized quote payload.
	// Returns domain.ErrNotFound if absent, domain.ErrValidation if it
	// cannot be decoded.
	DailyQuote(ctx context.Context) (*domain.DailyQuotePayload, error)

	// Appearance returns the stored appearance settings.
	// Returns domain.ErrNotFound if absent, domain.ErrValidation if it
	// cannot be decoded or holds unknown values.
	Appearance(ctx context.Context) (*domain.AppearanceSettings, error)
}
