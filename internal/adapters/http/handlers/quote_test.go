package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/dailywisdom/internal/adapters/corpus"
	"github.com/jsamuelsen/dailywisdom/internal/adapters/http/dto"
	"github.com/jsamuelsen/dailywisdom/internal/app"
	"github.com/jsamuelsen/dailywisdom/internal/domain"
	"github.com/jsamuelsen/dailywisdom/internal/mocks"
	"github.com/jsamuelsen/dailywisdom/internal/ports"
)

// fixedNow is 2026-10-16, day 289 of a common year.
var fixedNow = time.Date(2026, time.October, 16, 8, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func corpusJSON(n int) []byte {
	records := make([]map[string]string, n)
	for i := range records {
		records[i] = map[string]string{
			"Quote":  fmt.Sprintf("quote %d", i),
			"Author": fmt.Sprintf("author %d", i),
		}
	}

	data, _ := json.Marshal(records)

	return data
}

func newCorpus(fsys fstest.MapFS) *app.CorpusProvider {
	return app.NewCorpusProvider(app.CorpusProviderConfig{
		Readers: []ports.ResourceReader{corpus.NewFSReader("test", fsys, "quotes.json", discardLogger())},
		Decode:  corpus.Decode,
		Logger:  discardLogger(),
	})
}

func noPayload(t *testing.T) *mocks.MockSharedSettings {
	m := mocks.NewMockSharedSettings(t)
	m.EXPECT().DailyQuote(mock.Anything).
		Return(nil, domain.NewNotFoundError("shared key", ports.DailyQuoteKey)).Maybe()

	return m
}

func setupQuoteHandler(t *testing.T, settings ports.SharedSettings, provider *app.CorpusProvider) *gin.Engine {
	t.Helper()

	resolver := app.NewResolver(app.ResolverConfig{
		Settings: settings,
		Corpus:   provider,
		Location: time.UTC,
		Logger:   discardLogger(),
	})

	handler := NewQuoteHandler(QuoteHandlerConfig{
		Resolver: resolver,
		Corpus:   provider,
		Now:      func() time.Time { return fixedNow },
	})

	router := gin.New()
	handler.RegisterQuoteRoutes(router.Group("/api/v1"))

	return router
}

func serve(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, target, nil))

	return w
}

func TestQuoteHandler_GetToday(t *testing.T) {
	fsys := fstest.MapFS{"quotes.json": {Data: corpusJSON(5)}}

	tests := []struct {
		name          string
		target        string
		expectedText  string
		expectedDay   int
		expectedYear  int
		expectedSrc   string
		expectedState int
	}{
		{
			name:          "defaults to today",
			target:        "/api/v1/quotes/today",
			expectedText:  "quote 4",
			expectedDay:   289,
			expectedYear:  2026,
			expectedSrc:   "corpus",
			expectedState: http.StatusOK,
		},
		{
			name:          "explicit leap-year date",
			target:        "/api/v1/quotes/today?date=2024-03-01",
			expectedText:  "quote 1",
			expectedDay:   61,
			expectedYear:  2024,
			expectedSrc:   "corpus",
			expectedState: http.StatusOK,
		},
		{
			name:          "last day of leap year",
			target:        "/api/v1/quotes/today?date=2024-12-31",
			expectedText:  "quote 1",
			expectedDay:   366,
			expectedYear:  2024,
			expectedSrc:   "corpus",
			expectedState: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupQuoteHandler(t, noPayload(t), newCorpus(fsys))

			w := serve(router, http.MethodGet, tt.target)
			require.Equal(t, tt.expectedState, w.Code)

			var resp QuoteResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedText, resp.Text)
			assert.Equal(t, tt.expectedDay, resp.DayOfYear)
			assert.Equal(t, tt.expectedYear, resp.Year)
			assert.Equal(t, tt.expectedSrc, resp.Source)
			assert.NotEmpty(t, resp.ID)
		})
	}
}

func TestQuoteHandler_GetToday_SyncedPayload(t *testing.T) {
	category := "Resilience"
	synced := domain.Quote{ID: "host-1", Text: "Fall seven times, stand up eight.", Author: "Japanese proverb", Category: &category}

	settings := mocks.NewMockSharedSettings(t)
	settings.EXPECT().DailyQuote(mock.Anything).
		Return(&domain.DailyQuotePayload{Quote: synced, DayOfYear: 289, Year: 2026}, nil)

	router := setupQuoteHandler(t, settings, newCorpus(fstest.MapFS{"quotes.json": {Data: corpusJSON(5)}}))

	w := serve(router, http.MethodGet, "/api/v1/quotes/today")
	require.Equal(t, http.StatusOK, w.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, QuoteResponse{
		ID:        "host-1",
		Text:      synced.Text,
		Author:    synced.Author,
		Category:  "Resilience",
		Source:    "synced",
		DayOfYear: 289,
		Year:      2026,
	}, resp)
}

func TestQuoteHandler_GetToday_Placeholder(t *testing.T) {
	router := setupQuoteHandler(t, noPayload(t), newCorpus(fstest.MapFS{}))

	w := serve(router, http.MethodGet, "/api/v1/quotes/today")
	require.Equal(t, http.StatusOK, w.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.PlaceholderID, resp.ID)
	assert.Equal(t, "placeholder", resp.Source)
	assert.Equal(t, "Inspiration", resp.Category)
}

func TestQuoteHandler_GetToday_BadDate(t *testing.T) {
	router := setupQuoteHandler(t, noPayload(t), newCorpus(fstest.MapFS{}))

	for _, target := range []string{
		"/api/v1/quotes/today?date=16-10-2026",
		"/api/v1/quotes/today?date=2026-02-29",
	} {
		w := serve(router, http.MethodGet, target)
		require.Equal(t, http.StatusBadRequest, w.Code, target)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Details, "date")
	}
}

func TestQuoteHandler_CorpusAndReload(t *testing.T) {
	fsys := fstest.MapFS{"quotes.json": {Data: corpusJSON(3)}}
	router := setupQuoteHandler(t, noPayload(t), newCorpus(fsys))

	w := serve(router, http.MethodGet, "/api/v1/quotes/corpus")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"size":3}`, w.Body.String())

	fsys["quotes.json"] = &fstest.MapFile{Data: corpusJSON(7)}

	w = serve(router, http.MethodGet, "/api/v1/quotes/corpus")
	assert.JSONEq(t, `{"size":3}`, w.Body.String(), "corpus is cached until reloaded")

	w = serve(router, http.MethodPost, "/api/v1/corpus/reload")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"size":7}`, w.Body.String())

	w = serve(router, http.MethodGet, "/api/v1/quotes/corpus")
	assert.JSONEq(t, `{"size":7}`, w.Body.String())
}

func TestQuoteHandler_GetToday_CancelledRequest(t *testing.T) {
	router := setupQuoteHandler(t, noPayload(t), newCorpus(fstest.MapFS{"quotes.json": {Data: corpusJSON(2)}}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/quotes/today", nil).WithContext(ctx))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"source"`)
}
