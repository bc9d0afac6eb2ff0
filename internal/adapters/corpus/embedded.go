package corpus

import "github.com/jsamuelsen/dailywisdom/internal/domain"

// EmbeddedQuotes returns the literal quote list used when a build ships
// without any corpus resource. IDs are fixed so they stay stable across runs.
func EmbeddedQuotes() []domain.Quote {
	return []domain.Quote{
		embedded("embedded-1", "The journey of a thousand miles begins with one step.", "Lao Tzu", "Wisdom"),
		embedded("embedded-2", "What we think, we become.", "Buddha", "Mindfulness"),
		embedded("embedded-3", "Simplicity is the ultimate sophistication.", "Leonardo da Vinci", "Simplicity"),
		embedded("embedded-4", "Well done is better than well said.", "Benjamin Franklin", "Action"),
		embedded("embedded-5", "It always seems impossible until it's done.", "Nelson Mandela", "Perseverance"),
	}
}

func embedded(id, text, author, category string) domain.Quote {
	return domain.Quote{
		ID:       id,
		Text:     text,
		Author:   author,
		Category: &category,
	}
}
