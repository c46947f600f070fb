package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bookingRepo "meetly/database/repository/booking"
	settingsRepo "meetly/database/repository/settings"
	"meetly/models"
	"meetly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// cacheTTL keeps cached windows short-lived so the minimum-notice cutoff never
// drifts far from real time.
const cacheTTL = 60 * time.Second

// AvailabilityService serves the invitee-facing slot listing.
type AvailabilityService interface {
	GetSlots(ctx context.Context, rangeStart, rangeEnd time.Time) ([]models.DaySlots, error)
}

// DefaultAvailabilityService loads the organizer settings and the bookings
// overlapping the window, runs the generator, and caches the result in Redis.
type DefaultAvailabilityService struct {
	Settings settingsRepo.SettingsRepository
	Bookings bookingRepo.BookingRepository
	Cache    *redis.Client
}

func (s *DefaultAvailabilityService) GetSlots(ctx context.Context, rangeStart, rangeEnd time.Time) ([]models.DaySlots, error) {
	logger := utils.GetLogger()

	key := s.cacheKey(ctx, rangeStart, rangeEnd)
	if key != "" {
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var days []models.DaySlots
			if err := json.Unmarshal([]byte(cached), &days); err == nil {
				return days, nil
			}
			logger.Warn("discarding malformed availability cache entry", zap.String("key", key))
		}
	}

	settings, err := s.Settings.Get(ctx)
	if errors.Is(err, settingsRepo.ErrNotFound) {
		return nil, &ValidationError{Field: "settings", Message: "organizer settings not configured"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load organizer settings: %w", err)
	}

	// The generator covers the whole last calendar day and pads candidates
	// with buffers, so the booking query window is widened accordingly.
	pad := 48*time.Hour + time.Duration(settings.BufferBefore+settings.BufferAfter)*time.Minute
	bookings, err := s.Bookings.ListOverlapping(ctx, rangeStart.Add(-pad), rangeEnd.Add(pad))
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for window: %w", err)
	}

	days, err := Generate(rangeStart, rangeEnd, *settings, bookings)
	if err != nil {
		return nil, err
	}

	if key != "" {
		if data, err := json.Marshal(days); err == nil {
			if err := s.Cache.Set(ctx, key, data, cacheTTL).Err(); err != nil {
				logger.Warn("failed to cache availability window", zap.Error(err))
			}
		}
	}
	return days, nil
}

// cacheKey folds the slots version counter into the key so booking and
// settings writes invalidate all cached windows. Returns "" when the cache is
// unavailable; callers then skip caching rather than failing the request.
func (s *DefaultAvailabilityService) cacheKey(ctx context.Context, rangeStart, rangeEnd time.Time) string {
	if s.Cache == nil {
		return ""
	}
	ver, err := s.Cache.Get(ctx, utils.SlotsVersionKey).Result()
	if err == redis.Nil {
		ver = "0"
	} else if err != nil {
		return ""
	}
	return fmt.Sprintf("slots:v%s:%d:%d", ver, rangeStart.Unix(), rangeEnd.Unix())
}
