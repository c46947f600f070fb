package booking

import (
	"context"
	"time"

	bookingRepo "meetly/database/repository/booking"
	"meetly/models"

	"github.com/go-redis/redis/v8"
)

// CreateBookingRequest carries a new booking candidate.
type CreateBookingRequest struct {
	InviteeName  string    `json:"inviteeName" validate:"required"`
	InviteeEmail string    `json:"inviteeEmail" validate:"required,email"`
	StartTime    time.Time `json:"startTime" validate:"required"`
	EndTime      time.Time `json:"endTime" validate:"required"`
}

// RescheduleBookingRequest carries the new interval for an existing booking.
// Invitee fields are optional; when empty the stored values are kept.
type RescheduleBookingRequest struct {
	InviteeName  string    `json:"inviteeName" validate:"omitempty"`
	InviteeEmail string    `json:"inviteeEmail" validate:"omitempty,email"`
	StartTime    time.Time `json:"startTime" validate:"required"`
	EndTime      time.Time `json:"endTime" validate:"required"`
}

// BookingService is the transactional write path around bookings. Every
// operation either commits fully or leaves stored state untouched.
type BookingService interface {
	List(ctx context.Context) ([]models.Booking, error)
	Create(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	Reschedule(ctx context.Context, id string, req RescheduleBookingRequest) (*models.Booking, error)
	Cancel(ctx context.Context, id string) error
}

// DefaultBookingService implements BookingService on top of the
// conflict-guarded repository operations.
type DefaultBookingService struct {
	Repo  bookingRepo.BookingRepository
	Cache *redis.Client    // optional; availability cache invalidation
	Clock func() time.Time // optional; defaults to time.Now
}

func (s *DefaultBookingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
