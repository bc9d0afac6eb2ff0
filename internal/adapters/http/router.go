package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/dailywisdom/internal/adapters/http/handlers"
	"github.com/jsamuelsen/dailywisdom/internal/adapters/http/middleware"
	"github.com/jsamuelsen/dailywisdom/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds API requests. Quote resolution only waits on
// the shared store, so this is generous.
const DefaultRequestTimeout = 5 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	Logger *slog.Logger

	// ServiceName names the service in spans.
	ServiceName string

	HealthHandler     *handlers.HealthHandler
	QuoteHandler      *handlers.QuoteHandler
	AppearanceHandler *handlers.AppearanceHandler

	// Timeout is the deadline put on /api/v1 requests. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID, seed the request logger
//  3. OpenTelemetry - tracing and metrics
//  4. Logging - request logging (skips /-/ endpoints)
//
// Route groups:
//   - /-/ : probes, build info and the Prometheus scrape
//   - /api/v1/ : quote, corpus and appearance endpoints, with Timeout
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(cfg.Logger),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging(cfg.Logger))

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(middleware.Timeout(cfg.Timeout))

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(apiV1)
	}

	if cfg.AppearanceHandler != nil {
		cfg.AppearanceHandler.RegisterAppearanceRoutes(apiV1)
	}
}
