package models

import "time"

// Booking represents a confirmed meeting booking.
type Booking struct {
	ID              string     `bson:"id" json:"id"`                                    // Unique booking identifier (UUID)
	InviteeName     string     `bson:"invitee_name" json:"inviteeName"`                 // Name supplied by the invitee
	InviteeEmail    string     `bson:"invitee_email" json:"inviteeEmail"`               // Email address used for reminders
	StartTime       time.Time  `bson:"start_time" json:"startTime"`                     // Absolute meeting start instant (UTC)
	EndTime         time.Time  `bson:"end_time" json:"endTime"`                         // Absolute meeting end instant (UTC)
	IsDeleted       bool       `bson:"is_deleted" json:"isDeleted"`                     // Soft-delete marker; record is retained for history
	DeletedAt       *time.Time `bson:"deleted_at,omitempty" json:"deletedAt,omitempty"` // Timestamp of soft deletion
	Reminded1Hour   bool       `bson:"reminded_1h" json:"reminded1Hour"`                // Set once the 1-hour reminder was sent
	RemindedAtStart bool       `bson:"reminded_at_start" json:"remindedAtStart"`        // Set once the at-start reminder was sent
	CreatedAt       time.Time  `bson:"created_at" json:"createdAt"`                     // Timestamp when the booking was created
}
