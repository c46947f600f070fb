package settings

import (
	"context"
	"fmt"
	"time"

	settingsRepo "meetly/database/repository/settings"
	"meetly/models"
	"meetly/services/availability"
	"meetly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SettingsService manages the singleton organizer configuration.
type SettingsService interface {
	Get(ctx context.Context) (*models.OrganizerSettings, error)
	Update(ctx context.Context, cfg models.OrganizerSettings) (*models.OrganizerSettings, error)
}

// DefaultSettingsService implements SettingsService.
type DefaultSettingsService struct {
	Repo  settingsRepo.SettingsRepository
	Cache *redis.Client // optional; availability cache invalidation
}

func (s *DefaultSettingsService) Get(ctx context.Context) (*models.OrganizerSettings, error) {
	return s.Repo.Get(ctx)
}

// Update validates the configuration against the generator's invariants and
// replaces the singleton document. A broken configuration is rejected before
// it can reach slot generation.
func (s *DefaultSettingsService) Update(ctx context.Context, cfg models.OrganizerSettings) (*models.OrganizerSettings, error) {
	if err := availability.ValidateSettings(cfg); err != nil {
		return nil, err
	}

	cfg.UpdatedAt = time.Now()
	if cfg.BlackoutDates == nil {
		cfg.BlackoutDates = []string{}
	}
	if err := s.Repo.Save(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to persist organizer settings: %w", err)
	}

	if s.Cache != nil {
		if err := utils.BumpSlotsVersion(ctx, s.Cache); err != nil {
			utils.GetLogger().Warn("failed to invalidate availability cache", zap.Error(err))
		}
	}
	return &cfg, nil
}
