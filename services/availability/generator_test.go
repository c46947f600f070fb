package availability

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"meetly/models"
)

func baseSettings() models.OrganizerSettings {
	return models.OrganizerSettings{
		Timezone:          "UTC",
		WorkingHoursStart: "09:00",
		WorkingHoursEnd:   "10:00",
		MeetingDuration:   30,
	}
}

func booking(start, end time.Time) models.Booking {
	return models.Booking{ID: "b1", StartTime: start, EndTime: end}
}

var (
	// A Monday, well after "now" so minimum notice never interferes unless a
	// test sets it up explicitly.
	day = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
)

func TestGenerateSingleDay(t *testing.T) {
	days, err := GenerateAt(now, day, day, baseSettings(), nil)
	if err != nil {
		t.Fatalf("GenerateAt returned error: %v", err)
	}
	want := []models.DaySlots{{Date: "2025-06-02", Slots: []string{"09:00", "09:30"}}}
	if !reflect.DeepEqual(days, want) {
		t.Fatalf("got %+v, want %+v", days, want)
	}
}

func TestGenerateExcludesBookedSlot(t *testing.T) {
	bookings := []models.Booking{booking(
		time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
	)}
	days, err := GenerateAt(now, day, day, baseSettings(), bookings)
	if err != nil {
		t.Fatalf("GenerateAt returned error: %v", err)
	}
	if got, want := days[0].Slots, []string{"09:30"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got slots %v, want %v", got, want)
	}
}

func TestGenerateBufferBeforeExcludesAdjacentSlot(t *testing.T) {
	cfg := baseSettings()
	cfg.BufferBefore = 15
	bookings := []models.Booking{booking(
		time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
	)}
	// Candidate 09:30 padded to [09:15, 10:00) intersects the booking's
	// [09:00, 09:30), so the whole day empties out.
	days, err := GenerateAt(now, day, day, cfg, bookings)
	if err != nil {
		t.Fatalf("GenerateAt returned error: %v", err)
	}
	if len(days[0].Slots) != 0 {
		t.Fatalf("expected no slots, got %v", days[0].Slots)
	}
}

func TestGenerateBackToBackBookingDoesNotConflict(t *testing.T) {
	// Without buffers, a booking ending exactly at a candidate start leaves
	// the candidate free (half-open intervals).
	bookings := []models.Booking{booking(
		time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC),
		time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	)}
	days, err := GenerateAt(now, day, day, baseSettings(), bookings)
	if err != nil {
		t.Fatalf("GenerateAt returned error: %v", err)
	}
	if got, want := days[0].Slots, []string{"09:00", "09:30"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got slots %v, want %v", got, want)
	}
}

func TestGenerateBlackoutDayEmittedEmpty(t *testing.T) {
	cfg := baseSettings()
	cfg.BlackoutDates = []string{"2025-06-02"}
	end := day.AddDate(0, 0, 1)

	days, err := GenerateAt(now, day, end, cfg, nil)
	if err != nil {
		t.Fatalf("GenerateAt returned error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Date != "2025-06-02" || len(days[0].Slots) != 0 {
		t.Errorf("blackout day should be present with no slots, got %+v", days[0])
	}
	if len(days[1].Slots) == 0 {
		t.Errorf("non-blackout day should have slots, got %+v", days[1])
	}
}

func TestGenerateInvertedRangeIsEmpty(t *testing.T) {
	days, err := GenerateAt(now, day, day.AddDate(0, 0, -3), baseSettings(), nil)
	if err != nil {
		t.Fatalf("inverted range must not error, got %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("expected empty result, got %+v", days)
	}
}

func TestGenerateNoPartialTrailingSlot(t *testing.T) {
	cfg := baseSettings()
	cfg.WorkingHoursEnd = "10:15"
	// Candidate 10:00 starts before working end but would finish at 10:30.
	days, err := GenerateAt(now, day, day, cfg, nil)
	if err != nil {
		t.Fatalf("GenerateAt returned error: %v", err)
	}
	if got, want := days[0].Slots, []string{"09:00", "09:30"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got slots %v, want %v", got, want)
	}
}

func TestGenerateWindowShorterThanDuration(t *testing.T) {
	cfg := baseSettings()
	cfg.WorkingHoursEnd = "09:20"
	days, err := GenerateAt(now, day, day, cfg, nil)
	if err != nil {
		t.Fatalf("short window must not error, got %v", err)
	}
	if len(days[0].Slots) != 0 {
		t.Fatalf("expected no slots, got %v", days[0].Slots)
	}
}

func TestGenerateMinimumNoticeCutoff(t *testing.T) {
	cfg := baseSettings()
	cfg.MinimumNotice = 1
	sameDayNow := time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC) // cutoff 09:30

	days, err := GenerateAt(sameDayNow, day, day, cfg, nil)
	if err != nil {
		t.Fatalf("GenerateAt returned error: %v", err)
	}
	if got, want := days[0].Slots, []string{"09:30"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got slots %v, want %v", got, want)
	}
}

func TestGenerateDSTTransition(t *testing.T) {
	cfg := baseSettings()
	cfg.Timezone = "America/New_York"

	// US DST begins 2025-03-09; local 09:00 is 14:00 UTC the day before the
	// switch and 13:00 UTC from the switch onward.
	rangeStart := time.Date(2025, 3, 8, 5, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 3, 9, 22, 0, 0, 0, time.UTC)
	dstNow := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	bookings := []models.Booking{booking(
		time.Date(2025, 3, 9, 13, 0, 0, 0, time.UTC), // 09:00 EDT
		time.Date(2025, 3, 9, 13, 30, 0, 0, time.UTC),
	)}

	days, err := GenerateAt(dstNow, rangeStart, rangeEnd, cfg, bookings)
	if err != nil {
		t.Fatalf("GenerateAt returned error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if got, want := days[0].Slots, []string{"09:00", "09:30"}; !reflect.DeepEqual(got, want) {
		t.Errorf("pre-DST day: got %v, want %v", got, want)
	}
	// The booking lands on 09:00 local only if the conversion tracked the
	// DST switch; otherwise it would block 08:00 or 10:00 instead.
	if got, want := days[1].Slots, []string{"09:30"}; !reflect.DeepEqual(got, want) {
		t.Errorf("DST day: got %v, want %v", got, want)
	}
}

func TestGenerateDaysAndSlotsAscending(t *testing.T) {
	cfg := baseSettings()
	cfg.WorkingHoursEnd = "17:00"
	end := day.AddDate(0, 0, 4)

	days, err := GenerateAt(now, day, end, cfg, nil)
	if err != nil {
		t.Fatalf("GenerateAt returned error: %v", err)
	}
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}
	for i := 1; i < len(days); i++ {
		if days[i-1].Date >= days[i].Date {
			t.Errorf("days out of order: %s before %s", days[i-1].Date, days[i].Date)
		}
	}
	for _, d := range days {
		for i := 1; i < len(d.Slots); i++ {
			if d.Slots[i-1] >= d.Slots[i] {
				t.Errorf("day %s slots out of order: %s before %s", d.Date, d.Slots[i-1], d.Slots[i])
			}
		}
	}
}

func TestGenerateInvalidSettings(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.OrganizerSettings)
	}{
		{"unknown timezone", func(c *models.OrganizerSettings) { c.Timezone = "Mars/Olympus" }},
		{"malformed start", func(c *models.OrganizerSettings) { c.WorkingHoursStart = "9am" }},
		{"inverted hours", func(c *models.OrganizerSettings) { c.WorkingHoursStart, c.WorkingHoursEnd = "17:00", "09:00" }},
		{"zero duration", func(c *models.OrganizerSettings) { c.MeetingDuration = 0 }},
		{"negative buffer", func(c *models.OrganizerSettings) { c.BufferBefore = -5 }},
		{"negative notice", func(c *models.OrganizerSettings) { c.MinimumNotice = -1 }},
		{"malformed blackout", func(c *models.OrganizerSettings) { c.BlackoutDates = []string{"June 2nd"} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := baseSettings()
			tc.mutate(&cfg)
			_, err := GenerateAt(now, day, day, cfg, nil)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}
