package reminder

import (
	"context"
	"fmt"
	"time"

	bookingRepo "meetly/database/repository/booking"
	"meetly/models"
	"meetly/services/notification"
	"meetly/utils"

	"go.uber.org/zap"
)

// Mongo field names of the reminder flags on the booking document.
const (
	flag1Hour   = "reminded_1h"
	flagAtStart = "reminded_at_start"
)

// Dispatcher sends the two invitee reminders: one hour before the meeting and
// at meeting start. It only reads bookings and flips reminder flags; intervals
// are never touched, so it sits outside the no-overlap invariant entirely.
type Dispatcher struct {
	Repo           bookingRepo.BookingRepository
	Mailer         notification.Mailer
	StartTolerance time.Duration    // window for "starting now" reminders, tied to the scan cadence
	Clock          func() time.Time // optional; defaults to time.Now
}

func (d *Dispatcher) now() time.Time {
	if d.Clock != nil {
		return d.Clock()
	}
	return time.Now()
}

// Run performs one reminder scan. Each due booking gets its mail sent and its
// flag set; a failed send leaves the flag unset so the next scan retries it.
func (d *Dispatcher) Run(ctx context.Context) error {
	now := d.now()

	if err := d.dispatch(ctx, flag1Hour, now, now.Add(time.Hour), d.oneHourMail); err != nil {
		return err
	}
	return d.dispatch(ctx, flagAtStart, now, now.Add(d.StartTolerance), d.atStartMail)
}

func (d *Dispatcher) dispatch(ctx context.Context, flag string, from, to time.Time, compose func(models.Booking) (string, string)) error {
	logger := utils.GetLogger()

	due, err := d.Repo.ListDueReminders(ctx, flag, from, to)
	if err != nil {
		return fmt.Errorf("reminder scan failed for %s: %w", flag, err)
	}

	for _, b := range due {
		subject, body := compose(b)
		if err := d.Mailer.Send(b.InviteeEmail, subject, body); err != nil {
			logger.Error("failed to send reminder",
				zap.String("bookingID", b.ID), zap.String("flag", flag), zap.Error(err))
			continue
		}
		if err := d.Repo.MarkReminded(ctx, b.ID, flag); err != nil {
			logger.Error("failed to mark booking reminded",
				zap.String("bookingID", b.ID), zap.String("flag", flag), zap.Error(err))
		}
	}
	return nil
}

func (d *Dispatcher) oneHourMail(b models.Booking) (string, string) {
	return "Reminder: your meeting is in 1 hour",
		fmt.Sprintf("Hi %s, your meeting starts in 1 hour at %s.",
			b.InviteeName, b.StartTime.Format(time.RFC1123))
}

func (d *Dispatcher) atStartMail(b models.Booking) (string, string) {
	return "Your meeting is starting now",
		fmt.Sprintf("Hi %s, your meeting is starting right now.", b.InviteeName)
}
