package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/dailywisdom/internal/adapters/http/dto"
	"github.com/jsamuelsen/dailywisdom/internal/app"
	"github.com/jsamuelsen/dailywisdom/internal/platform/logging"
)

// QuoteHandler serves the quote of the day and the local corpus.
type QuoteHandler struct {
	resolver *app.Resolver
	corpus   *app.CorpusProvider
	now      func() time.Time
}

// QuoteHandlerConfig contains dependencies for the quote handler.
type QuoteHandlerConfig struct {
	Resolver *app.Resolver
	Corpus   *app.CorpusProvider

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(cfg QuoteHandlerConfig) *QuoteHandler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &QuoteHandler{
		resolver: cfg.Resolver,
		corpus:   cfg.Corpus,
		now:      now,
	}
}

// QuoteResponse is the resolved quote for one calendar day.
type QuoteResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	Category  string `json:"category,omitempty"`
	Source    string `json:"source"`
	DayOfYear int    `json:"dayOfYear"`
	Year      int    `json:"year"`
}

// CorpusResponse describes the loaded local corpus.
type CorpusResponse struct {
	Size int `json:"size"`
}

func toQuoteResponse(res app.Resolution) QuoteResponse {
	return QuoteResponse{
		ID:        res.Quote.ID,
		Text:      res.Quote.Text,
		Author:    res.Quote.Author,
		Category:  res.Quote.CategoryOrEmpty(),
		Source:    string(res.Source),
		DayOfYear: res.Day.DayOfYear,
		Year:      res.Day.Year,
	}
}

// GetToday handles GET /api/v1/quotes/today[?date=YYYY-MM-DD].
// It always answers with a quote; only a malformed date is rejected.
func (h *QuoteHandler) GetToday(c *gin.Context) {
	var req dto.TodayRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		respondBadQuery(c, err)
		return
	}

	at, err := req.At(h.now(), h.resolver.Location())
	if err != nil {
		respondBadQuery(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(h.resolver.Resolve(c.Request.Context(), at)))
}

// GetCorpus handles GET /api/v1/quotes/corpus.
func (h *QuoteHandler) GetCorpus(c *gin.Context) {
	c.JSON(http.StatusOK, CorpusResponse{Size: h.corpus.Len(c.Request.Context())})
}

// ReloadCorpus handles POST /api/v1/corpus/reload. The cached corpus is
// dropped and read again from the bundled resources.
func (h *QuoteHandler) ReloadCorpus(c *gin.Context) {
	ctx := c.Request.Context()

	h.corpus.Invalidate()
	size := h.corpus.Len(ctx)

	logging.FromContext(ctx).InfoContext(ctx, "corpus reloaded", slog.Int("size", size))

	c.JSON(http.StatusOK, CorpusResponse{Size: size})
}

// RegisterQuoteRoutes registers quote and corpus routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("/today", h.GetToday)
	quotes.GET("/corpus", h.GetCorpus)

	rg.POST("/corpus/reload", h.ReloadCorpus)
}

func respondBadQuery(c *gin.Context, err error) {
	if errors.Is(err, dto.ErrValidation) {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrorCodeValidation,
			"query validation failed",
			dto.ValidationErrors(err),
		).WithTraceID(dto.GetTraceID(c)))

		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
		dto.ErrorCodeBadRequest,
		"malformed query",
	).WithTraceID(dto.GetTraceID(c)))
}
