package settings

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anthonyvouin/icoproject/internal/model"
	"github.com/anthonyvouin/icoproject/internal/storage"
)

// ErrInvalidSettings is returned when an update contains non-positive values
var ErrInvalidSettings = errors.New("settings values must be positive")

// Service provides access to the tunable game settings
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new SettingsService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Get returns the stored settings. A miss or read failure falls back to
// the defaults; game creation never blocks on settings.
func (s *Service) Get(ctx context.Context) model.Settings {
	settings, err := s.storage.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrSettingsNotFound) {
			s.logger.Warn("settings unavailable, using defaults",
				slog.String("error", err.Error()))
		}
		return model.DefaultSettings()
	}
	return settings
}

// Update overwrites the stored settings
func (s *Service) Update(ctx context.Context, settings model.Settings) error {
	if settings.RoundsToWin <= 0 || settings.TimerSeconds <= 0 {
		return ErrInvalidSettings
	}
	return s.storage.SaveSettings(ctx, settings)
}

// ServiceInterface is the settings surface used by other components
type ServiceInterface interface {
	Get(ctx context.Context) model.Settings
	Update(ctx context.Context, settings model.Settings) error
}

var _ ServiceInterface = (*Service)(nil)
