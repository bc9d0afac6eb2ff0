package dto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen/dailywisdom/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrorCodeNotFound, "quote not found")

	assert.Equal(t, ErrorCodeNotFound, resp.Error.Code)
	assert.Equal(t, "quote not found", resp.Error.Message)
	assert.Nil(t, resp.Error.Details)

	body, err := json.Marshal(resp.WithTraceID("abc"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"quote not found"},"traceId":"abc"}`, string(body))
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeBadRequest, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeTimeout, http.StatusGatewayTimeout},
		{ErrorCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatusFromCode(tt.code))
		})
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectedField  string
	}{
		{
			name:           "not found",
			err:            domain.NewNotFoundError("shared key", "dailyQuote"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   ErrorCodeNotFound,
		},
		{
			name:           "validation with field",
			err:            domain.NewValidationError("date", "out of range"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCodeValidation,
			expectedField:  "date",
		},
		{
			name:           "wrapped unavailable",
			err:            fmt.Errorf("reading settings: %w", domain.NewUnavailableError("redis", "dial tcp")),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   ErrorCodeUnavailable,
		},
		{
			name:           "deadline exceeded",
			err:            fmt.Errorf("get: %w", context.DeadlineExceeded),
			expectedStatus: http.StatusGatewayTimeout,
			expectedCode:   ErrorCodeTimeout,
		},
		{
			name:           "unknown error hides message",
			err:            errors.New("sql: connection reset by peer"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.expectedStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, tt.expectedCode, resp.Error.Code)

			if tt.expectedField != "" {
				assert.Contains(t, resp.Error.Details, tt.expectedField)
			}

			if tt.expectedCode == ErrorCodeInternal {
				assert.NotContains(t, resp.Error.Message, "sql")
			}
		})
	}
}

func TestMapDomainError_Nil(t *testing.T) {
	status, resp := MapDomainError(nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp)
}

func TestGetTraceID(t *testing.T) {
	t.Run("no span", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		assert.Empty(t, GetTraceID(c))
	})

	t.Run("no request", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		assert.Empty(t, GetTraceID(c))
	})

	t.Run("recording span", func(t *testing.T) {
		tp := sdktrace.NewTracerProvider()
		t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

		ctx, span := tp.Tracer("test").Start(context.Background(), "request")
		defer span.End()

		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

		assert.Equal(t, span.SpanContext().TraceID().String(), GetTraceID(c))
	})
}

func TestHandleError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/quotes/today", nil)

	HandleError(c, domain.NewUnavailableError("corpus", "no quotes loaded"))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.True(t, c.IsAborted())

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrorCodeUnavailable, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "no quotes loaded")
}

func TestBindQueryAndValidate(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantDate  string
		wantField bool
	}{
		{name: "no date", query: "", wantDate: ""},
		{name: "valid date", query: "?date=2024-03-01", wantDate: "2024-03-01"},
		{name: "wrong layout", query: "?date=03/01/2024", wantField: true},
		{name: "impossible day", query: "?date=2025-02-30", wantField: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/quotes/today"+tt.query, nil)

			var req TodayRequest
			err := BindQueryAndValidate(c, &req)

			if tt.wantField {
				require.ErrorIs(t, err, ErrValidation)
				fields := ValidationErrors(err)
				assert.Equal(t, "must be a date formatted as YYYY-MM-DD", fields["date"])

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, req.Date)
		})
	}
}

func TestTodayRequest_At(t *testing.T) {
	now := time.Date(2026, time.October, 16, 8, 30, 0, 0, time.UTC)
	paris := time.FixedZone("CET", 3600)

	got, err := (&TodayRequest{}).At(now, paris)
	require.NoError(t, err)
	assert.Equal(t, now, got)

	got, err = (&TodayRequest{Date: "2024-03-01"}).At(now, paris)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 1, 12, 0, 0, 0, paris), got)
	assert.Equal(t, 61, got.In(paris).YearDay())

	_, err = (&TodayRequest{Date: "tomorrow"}).At(now, paris)
	assert.Error(t, err)
}
