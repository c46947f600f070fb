package models

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Both the availability generator and the booking
// write path rely on this single predicate, so back-to-back intervals
// (aEnd == bStart) never count as a conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
