package models

import "time"

// SettingsID is the fixed identifier of the singleton organizer settings document.
// At most one settings record exists per deployment.
const SettingsID = "organizer"

// OrganizerSettings is the declarative scheduling configuration published by the
// organizer. Working hours are local wall-clock times interpreted in Timezone;
// their absolute instants vary per calendar day (DST).
type OrganizerSettings struct {
	ID                string    `bson:"id" json:"id"`
	Timezone          string    `bson:"timezone" json:"timezone" binding:"required"`                          // IANA zone identifier, e.g. "America/New_York"
	WorkingHoursStart string    `bson:"working_hours_start" json:"workingHoursStart" binding:"required"`      // "HH:mm" local wall-clock
	WorkingHoursEnd   string    `bson:"working_hours_end" json:"workingHoursEnd" binding:"required"`          // "HH:mm" local wall-clock, must be after start
	MeetingDuration   int       `bson:"meeting_duration" json:"meetingDuration" binding:"required,min=1"`     // Slot length in minutes
	BufferBefore      int       `bson:"buffer_before" json:"bufferBefore" binding:"min=0"`                    // Minutes padded before a candidate slot
	BufferAfter       int       `bson:"buffer_after" json:"bufferAfter" binding:"min=0"`                      // Minutes padded after a candidate slot
	MinimumNotice     int       `bson:"minimum_notice" json:"minimumNotice" binding:"min=0"`                  // Lead time in hours before a slot may start
	BlackoutDates     []string  `bson:"blackout_dates" json:"blackoutDates"`                                  // "YYYY-MM-DD" organizer-local dates with no slots
	UpdatedAt         time.Time `bson:"updated_at" json:"updatedAt"`
}
