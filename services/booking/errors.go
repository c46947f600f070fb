package booking

import (
	"fmt"
	"time"
)

// ValidationError reports malformed invitee fields or an unusable interval.
// The caller can recover by correcting the input; nothing was written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// SlotConflictError signals that another non-deleted booking occupies part of
// the requested interval. Surfaced distinctly so callers can offer a
// "pick another slot" flow; no retry happens internally.
type SlotConflictError struct {
	Start time.Time
	End   time.Time
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot %s - %s is already booked",
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

// NotFoundError signals a reschedule or cancel of an unknown or already
// soft-deleted booking.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.ID)
}

// StorageError wraps infrastructure failures from the persistence layer. The
// transactional write either committed fully or not at all.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
