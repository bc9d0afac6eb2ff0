package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/dailywisdom/internal/domain"
	"github.com/jsamuelsen/dailywisdom/internal/platform/logging"
	"github.com/jsamuelsen/dailywisdom/internal/ports"
)

// AppearanceServiceConfig contains configuration for the appearance service.
type AppearanceServiceConfig struct {
	Settings ports.SharedSettings
	Logger   *slog.Logger
}

// AppearanceService reads the widget appearance the host application chose.
type AppearanceService struct {
	settings ports.SharedSettings
	logger   *slog.Logger
}

// NewAppearanceService creates an appearance service.
func NewAppearanceService(cfg AppearanceServiceConfig) *AppearanceService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AppearanceService{
		settings: cfg.Settings,
		logger:   logger.With(slog.String("component", "app.AppearanceService")),
	}
}

// Current returns the stored settings, or the defaults when they are absent
// or cannot be decoded. It never fails.
func (s *AppearanceService) Current(ctx context.Context) domain.AppearanceSettings {
	if s.settings == nil {
		return domain.DefaultAppearance()
	}

	settings, err := s.settings.Appearance(ctx)
	if err != nil {
		if !domain.IsNotFound(err) {
			logging.FromContextOr(ctx, s.logger).WarnContext(ctx, "appearance unreadable, using defaults",
				slog.Any("error", err),
			)
		}
		return domain.DefaultAppearance()
	}

	return *settings
}
