package models

// DaySlots is the availability read-model for a single organizer-local calendar
// day. Slots holds bookable start times as "HH:mm" labels in the organizer's
// timezone, in ascending order. Blackout days appear with an empty slot list so
// callers can tell "day excluded" from "day not in range".
type DaySlots struct {
	Date  string   `json:"date"`  // "YYYY-MM-DD" organizer-local calendar date
	Slots []string `json:"slots"` // Ascending "HH:mm" local start times
}
