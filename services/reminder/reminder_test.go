package reminder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	bookingRepo "meetly/database/repository/booking"
	"meetly/models"
)

type fakeReminderRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeReminderRepo(bookings ...models.Booking) *fakeReminderRepo {
	f := &fakeReminderRepo{bookings: make(map[string]*models.Booking)}
	for i := range bookings {
		b := bookings[i]
		f.bookings[b.ID] = &b
	}
	return f
}

func (f *fakeReminderRepo) ListDueReminders(ctx context.Context, flagField string, from, to time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var due []models.Booking
	for _, b := range f.bookings {
		if b.IsDeleted {
			continue
		}
		if flagField == "reminded_1h" && b.Reminded1Hour {
			continue
		}
		if flagField == "reminded_at_start" && b.RemindedAtStart {
			continue
		}
		if b.StartTime.Before(from) || b.StartTime.After(to) {
			continue
		}
		due = append(due, *b)
	}
	return due, nil
}

func (f *fakeReminderRepo) MarkReminded(ctx context.Context, id, flagField string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	switch flagField {
	case "reminded_1h":
		b.Reminded1Hour = true
	case "reminded_at_start":
		b.RemindedAtStart = true
	}
	return nil
}

// Unused BookingRepository methods.
func (f *fakeReminderRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}
func (f *fakeReminderRepo) ListActive(ctx context.Context) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeReminderRepo) ListOverlapping(ctx context.Context, start, end time.Time) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeReminderRepo) CreateIfFree(ctx context.Context, b *models.Booking) error { return nil }
func (f *fakeReminderRepo) RescheduleIfFree(ctx context.Context, id string, start, end time.Time, inviteeName, inviteeEmail string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}
func (f *fakeReminderRepo) SoftDelete(ctx context.Context, id string, deletedAt time.Time) error {
	return nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string // recipient:subject
	fail bool
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, to+":"+subject)
	return nil
}

var scanNow = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func upcoming(id string, startsIn time.Duration) models.Booking {
	return models.Booking{
		ID:           id,
		InviteeName:  "Ada",
		InviteeEmail: id + "@example.com",
		StartTime:    scanNow.Add(startsIn),
		EndTime:      scanNow.Add(startsIn + 30*time.Minute),
	}
}

func newDispatcher(repo *fakeReminderRepo, mailer *fakeMailer) *Dispatcher {
	return &Dispatcher{
		Repo:           repo,
		Mailer:         mailer,
		StartTolerance: 2 * time.Minute,
		Clock:          func() time.Time { return scanNow },
	}
}

func TestRunSendsOneHourReminder(t *testing.T) {
	repo := newFakeReminderRepo(upcoming("b1", 30*time.Minute))
	mailer := &fakeMailer{}

	if err := newDispatcher(repo, mailer).Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 mail, got %d", len(mailer.sent))
	}
	if !repo.bookings["b1"].Reminded1Hour {
		t.Error("expected reminded_1h flag to be set")
	}
	if repo.bookings["b1"].RemindedAtStart {
		t.Error("at-start reminder must not fire 30 minutes early")
	}
}

func TestRunSendsAtStartReminderWithinTolerance(t *testing.T) {
	repo := newFakeReminderRepo(upcoming("b1", time.Minute))
	mailer := &fakeMailer{}

	if err := newDispatcher(repo, mailer).Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	// Starting within the tolerance window triggers both reminders.
	if len(mailer.sent) != 2 {
		t.Fatalf("expected 2 mails, got %d: %v", len(mailer.sent), mailer.sent)
	}
	b := repo.bookings["b1"]
	if !b.Reminded1Hour || !b.RemindedAtStart {
		t.Error("expected both reminder flags to be set")
	}
}

func TestRunSkipsAlreadyReminded(t *testing.T) {
	b := upcoming("b1", 30*time.Minute)
	b.Reminded1Hour = true
	repo := newFakeReminderRepo(b)
	mailer := &fakeMailer{}

	if err := newDispatcher(repo, mailer).Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("expected no mail, got %v", mailer.sent)
	}
}

func TestRunSkipsDeletedAndPastBookings(t *testing.T) {
	deleted := upcoming("gone", 30*time.Minute)
	deleted.IsDeleted = true
	past := upcoming("past", -2*time.Hour)
	far := upcoming("far", 3*time.Hour)
	repo := newFakeReminderRepo(deleted, past, far)
	mailer := &fakeMailer{}

	if err := newDispatcher(repo, mailer).Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("expected no mail, got %v", mailer.sent)
	}
}

func TestRunLeavesFlagUnsetOnSendFailure(t *testing.T) {
	repo := newFakeReminderRepo(upcoming("b1", 30*time.Minute))
	mailer := &fakeMailer{fail: true}

	if err := newDispatcher(repo, mailer).Run(context.Background()); err != nil {
		t.Fatalf("Run must tolerate send failures, got %v", err)
	}
	if repo.bookings["b1"].Reminded1Hour {
		t.Error("flag must stay unset so the next scan retries the send")
	}
}
