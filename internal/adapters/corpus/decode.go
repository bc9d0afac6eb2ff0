package corpus

import (
	"bytes"
	"fmt"

	"github.com/jsamuelsen/dailywisdom/internal/domain"
	"github.com/jsamuelsen/dailywisdom/internal/platform/strictjson"
)

// Decode parses corpus bytes and returns the normalized quotes in file order.
// Blank records are skipped. A syntax error, a key in the wrong case, or a
// record without Quote or Author fails the whole resource with a validation
// error; callers treat that the same as an empty corpus.
func Decode(data []byte) ([]domain.Quote, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domain.NewValidationError("corpus", "resource is empty")
	}

	var records []QuoteRecord
	if err := strictjson.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding corpus: %w",
			domain.NewValidationError("corpus", err.Error()))
	}

	for i := range records {
		if records[i].Quote == nil || records[i].Author == nil {
			return nil, domain.NewValidationError("corpus",
				fmt.Sprintf("record %d: Quote and Author are required", i))
		}
	}

	quotes := make([]domain.Quote, 0, len(records))
	for i := range records {
		if q, ok := records[i].ToQuote(); ok {
			quotes = append(quotes, q)
		}
	}

	return quotes, nil
}
