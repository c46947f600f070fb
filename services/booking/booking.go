package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "meetly/database/repository/booking"
	"meetly/models"
	"meetly/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var validate = validator.New()

func (s *DefaultBookingService) List(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Repo.ListActive(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	return bookings, nil
}

// Create validates the invitee fields and the interval, then inserts the
// booking through the atomic conflict-guarded repository write. The conflict
// check uses the raw requested interval; buffer padding only shapes the slots
// suggested to invitees, so a back-to-back booking is legal here.
func (s *DefaultBookingService) Create(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := validateInterval(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:           uuid.New().String(),
		InviteeName:  req.InviteeName,
		InviteeEmail: req.InviteeEmail,
		StartTime:    req.StartTime.UTC(),
		EndTime:      req.EndTime.UTC(),
		CreatedAt:    s.now(),
	}

	if err := s.Repo.CreateIfFree(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, &SlotConflictError{Start: booking.StartTime, End: booking.EndTime}
		}
		return nil, &StorageError{Op: "create", Err: err}
	}

	s.invalidateSlots(ctx)
	return booking, nil
}

// Reschedule moves an existing booking to a new interval in place. Identity,
// creation time and (absent explicit overrides) invitee fields survive; only
// bookings other than this one count as conflicts.
func (s *DefaultBookingService) Reschedule(ctx context.Context, id string, req RescheduleBookingRequest) (*models.Booking, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := validateInterval(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	updated, err := s.Repo.RescheduleIfFree(ctx, id, req.StartTime.UTC(), req.EndTime.UTC(), req.InviteeName, req.InviteeEmail)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrNotFound):
			return nil, &NotFoundError{ID: id}
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			return nil, &SlotConflictError{Start: req.StartTime, End: req.EndTime}
		default:
			return nil, &StorageError{Op: "reschedule", Err: err}
		}
	}

	s.invalidateSlots(ctx)
	return updated, nil
}

// Cancel soft-deletes a booking. The record is retained for history; it just
// stops blocking availability and conflict checks.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) error {
	if err := s.Repo.SoftDelete(ctx, id, s.now()); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return &NotFoundError{ID: id}
		}
		return &StorageError{Op: "cancel", Err: err}
	}

	s.invalidateSlots(ctx)
	return nil
}

func (s *DefaultBookingService) invalidateSlots(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := utils.BumpSlotsVersion(ctx, s.Cache); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache", zap.Error(err))
	}
}

func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed %q constraint", fe.Tag()),
		}
	}
	return &ValidationError{Field: "request", Message: err.Error()}
}

func validateInterval(start, end time.Time) error {
	if !end.After(start) {
		return &ValidationError{Field: "interval", Message: "end must be after start"}
	}
	return nil
}
