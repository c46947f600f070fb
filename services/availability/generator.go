package availability

import (
	"fmt"
	"time"

	"meetly/models"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// ValidationError reports an organizer configuration the generator cannot
// operate on (unknown timezone, inverted working hours, non-positive duration).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Generate computes the bookable slots per organizer-local calendar day in
// [rangeStart, rangeEnd], reconciling the organizer settings against the given
// non-deleted bookings. It is pure apart from the time.Now snapshot used for
// the minimum-notice cutoff; see GenerateAt.
func Generate(rangeStart, rangeEnd time.Time, cfg models.OrganizerSettings, bookings []models.Booking) ([]models.DaySlots, error) {
	return GenerateAt(time.Now(), rangeStart, rangeEnd, cfg, bookings)
}

// GenerateAt is Generate with an explicit "now". The notice cutoff is computed
// once from it, so a single call sees one consistent cutoff across all days.
//
// Days are emitted in ascending date order and slots in ascending time order;
// callers may rely on sortedness. Blackout days appear with an empty slot
// list. An inverted range yields an empty result, not an error.
func GenerateAt(now, rangeStart, rangeEnd time.Time, cfg models.OrganizerSettings, bookings []models.Booking) ([]models.DaySlots, error) {
	sched, err := compileSettings(cfg)
	if err != nil {
		return nil, err
	}
	loc := sched.loc
	startHour, startMin := sched.startHour, sched.startMin
	endHour, endMin := sched.endHour, sched.endMin

	days := []models.DaySlots{}
	if rangeEnd.Before(rangeStart) {
		return days, nil
	}

	blackout := make(map[string]struct{}, len(cfg.BlackoutDates))
	for _, d := range cfg.BlackoutDates {
		blackout[d] = struct{}{}
	}

	duration := time.Duration(cfg.MeetingDuration) * time.Minute
	bufferBefore := time.Duration(cfg.BufferBefore) * time.Minute
	bufferAfter := time.Duration(cfg.BufferAfter) * time.Minute
	noticeCutoff := now.Add(time.Duration(cfg.MinimumNotice) * time.Hour)

	firstLocal := rangeStart.In(loc)
	lastLocal := rangeEnd.In(loc)
	day := time.Date(firstLocal.Year(), firstLocal.Month(), firstLocal.Day(), 0, 0, 0, 0, loc)
	lastDay := time.Date(lastLocal.Year(), lastLocal.Month(), lastLocal.Day(), 0, 0, 0, 0, loc)

	for !day.After(lastDay) {
		dateStr := day.Format(dateLayout)
		slots := []string{}

		if _, excluded := blackout[dateStr]; !excluded {
			// Wall-clock bounds are re-anchored per day so their absolute
			// instants track DST transitions.
			workStart := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMin, 0, 0, loc)
			workEnd := time.Date(day.Year(), day.Month(), day.Day(), endHour, endMin, 0, 0, loc)

			for slotStart := workStart; slotStart.Before(workEnd); slotStart = slotStart.Add(duration) {
				slotEnd := slotStart.Add(duration)
				if slotEnd.After(workEnd) {
					// No partial trailing slot.
					continue
				}
				if slotStart.Before(noticeCutoff) {
					continue
				}

				// Only the candidate is padded; existing bookings keep their
				// raw intervals.
				paddedStart := slotStart.Add(-bufferBefore)
				paddedEnd := slotEnd.Add(bufferAfter)
				conflict := false
				for _, b := range bookings {
					if models.Overlaps(paddedStart, paddedEnd, b.StartTime, b.EndTime) {
						conflict = true
						break
					}
				}
				if !conflict {
					slots = append(slots, slotStart.In(loc).Format(clockLayout))
				}
			}
		}

		days = append(days, models.DaySlots{Date: dateStr, Slots: slots})
		day = day.AddDate(0, 0, 1)
	}

	return days, nil
}

type compiledSettings struct {
	loc                 *time.Location
	startHour, startMin int
	endHour, endMin     int
}

// ValidateSettings checks the configuration invariants the generator depends
// on. The settings service runs it before persisting an update so a broken
// configuration can never reach slot generation.
func ValidateSettings(cfg models.OrganizerSettings) error {
	_, err := compileSettings(cfg)
	return err
}

func compileSettings(cfg models.OrganizerSettings) (*compiledSettings, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, &ValidationError{Field: "timezone", Message: fmt.Sprintf("unknown zone %q", cfg.Timezone)}
	}
	startHour, startMin, err := parseClock(cfg.WorkingHoursStart)
	if err != nil {
		return nil, &ValidationError{Field: "workingHoursStart", Message: err.Error()}
	}
	endHour, endMin, err := parseClock(cfg.WorkingHoursEnd)
	if err != nil {
		return nil, &ValidationError{Field: "workingHoursEnd", Message: err.Error()}
	}
	if endHour*60+endMin <= startHour*60+startMin {
		return nil, &ValidationError{Field: "workingHours", Message: "end must be after start"}
	}
	if cfg.MeetingDuration <= 0 {
		return nil, &ValidationError{Field: "meetingDuration", Message: "must be positive"}
	}
	if cfg.BufferBefore < 0 || cfg.BufferAfter < 0 {
		return nil, &ValidationError{Field: "buffers", Message: "must not be negative"}
	}
	if cfg.MinimumNotice < 0 {
		return nil, &ValidationError{Field: "minimumNotice", Message: "must not be negative"}
	}
	for _, d := range cfg.BlackoutDates {
		if _, err := time.Parse(dateLayout, d); err != nil {
			return nil, &ValidationError{Field: "blackoutDates", Message: fmt.Sprintf("expected YYYY-MM-DD, got %q", d)}
		}
	}
	return &compiledSettings{
		loc:       loc,
		startHour: startHour,
		startMin:  startMin,
		endHour:   endHour,
		endMin:    endMin,
	}, nil
}

func parseClock(s string) (hour, min int, err error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("expected HH:mm, got %q", s)
	}
	return t.Hour(), t.Minute(), nil
}
