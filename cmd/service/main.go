// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsamuelsen/dailywisdom/internal/adapters/corpus"
	"github.com/jsamuelsen/dailywisdom/internal/adapters/hostsync"
	"github.com/jsamuelsen/dailywisdom/internal/adapters/http"
	"github.com/jsamuelsen/dailywisdom/internal/adapters/http/handlers"
	"github.com/jsamuelsen/dailywisdom/internal/adapters/store"
	"github.com/jsamuelsen/dailywisdom/internal/app"
	"github.com/jsamuelsen/dailywisdom/internal/domain"
	"github.com/jsamuelsen/dailywisdom/internal/platform/config"
	"github.com/jsamuelsen/dailywisdom/internal/platform/logging"
	"github.com/jsamuelsen/dailywisdom/internal/platform/telemetry"
	"github.com/jsamuelsen/dailywisdom/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const appTracerName = "github.com/jsamuelsen/dailywisdom/internal/app"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load and validate configuration (fail fast)
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	location, err := cfg.Calendar.Location()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 2. Logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("store_driver", cfg.Store.Driver),
		slog.String("timezone", location.String()),
	)

	// 3. Telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 4. Shared store written by the host application
	sharedStore, err := store.Open(storeConfig(&cfg.Store))
	if err != nil {
		return fmt.Errorf("opening shared store: %w", err)
	}

	defer func() {
		if closeErr := sharedStore.Close(); closeErr != nil {
			logger.Error("shared store close error", slog.Any("error", closeErr))
		}
	}()

	settings := hostsync.New(hostsync.Config{
		Store:  sharedStore,
		Logger: logger,
	})

	// 5. Local corpus
	corpusProvider := app.NewCorpusProvider(app.CorpusProviderConfig{
		Readers:  corpusReaders(&cfg.Corpus, logger),
		Decode:   corpus.Decode,
		Fallback: corpusFallback(&cfg.Corpus),
		Logger:   logger,
	})

	// Load eagerly so a bad corpus shows up at startup; the provider logs
	// which source won.
	corpusProvider.Quotes(ctx)

	// 6. Application services
	resolver := app.NewResolver(app.ResolverConfig{
		Settings: settings,
		Corpus:   corpusProvider,
		Location: location,
		Logger:   logger,
		Metrics:  app.NewMetrics(nil),
		Tracer:   telProvider.Tracer(appTracerName),
	})

	appearance := app.NewAppearanceService(app.AppearanceServiceConfig{
		Settings: settings,
		Logger:   logger,
	})

	// 7. Health: an empty corpus is critical, a missing store only degrades
	healthRegistry := ports.NewHealthRegistry()

	if err := healthRegistry.Register(corpusProvider); err != nil {
		return fmt.Errorf("registering corpus health check: %w", err)
	}

	if err := healthRegistry.RegisterOptional(sharedStore); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	// 8. HTTP
	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		ServiceName:   cfg.App.Name,
		HealthHandler: handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime), nil),
		QuoteHandler: handlers.NewQuoteHandler(handlers.QuoteHandlerConfig{
			Resolver: resolver,
			Corpus:   corpusProvider,
		}),
		AppearanceHandler: handlers.NewAppearanceHandler(appearance),
		Timeout:           http.DefaultRequestTimeout,
	})

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

func storeConfig(cfg *config.StoreConfig) store.Config {
	return store.Config{
		Driver:           cfg.Driver,
		FilePath:         cfg.File.Path,
		SQLitePath:       cfg.SQLite.Path,
		RedisAddr:        cfg.Redis.Addr,
		RedisPassword:    cfg.Redis.Password,
		RedisDB:          cfg.Redis.DB,
		RedisKeyPrefix:   cfg.Redis.Prefix,
		RedisDialTimeout: cfg.Redis.DialTimeout,
		RedisReadTimeout: cfg.Redis.ReadTimeout,
	}
}

// corpusReaders returns the corpus sources in lookup order: the bundled
// asset first, then each configured path.
func corpusReaders(cfg *config.CorpusConfig, logger *slog.Logger) []ports.ResourceReader {
	readers := make([]ports.ResourceReader, 0, len(cfg.Paths)+1)

	if cfg.Bundled {
		readers = append(readers, corpus.NewAssetReader(logger))
	}

	for _, path := range cfg.Paths {
		readers = append(readers, corpus.NewFileReader(path, logger))
	}

	return readers
}

func corpusFallback(cfg *config.CorpusConfig) []domain.Quote {
	if !cfg.Fallback {
		return nil
	}

	return corpus.EmbeddedQuotes()
}

// waitForShutdown blocks until a shutdown signal is received or the server
// fails, then drains in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
