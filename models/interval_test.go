package models

import (
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	at := func(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }

	cases := []struct {
		name                   string
		aStart, aEnd           int
		bStart, bEnd           int
		want                   bool
	}{
		{"identical", 0, 30, 0, 30, true},
		{"partial overlap", 0, 30, 15, 45, true},
		{"containment", 0, 60, 15, 30, true},
		{"back to back", 0, 30, 30, 60, false},
		{"disjoint", 0, 30, 60, 90, false},
		{"one minute overlap", 0, 31, 30, 60, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(at(tc.aStart), at(tc.aEnd), at(tc.bStart), at(tc.bEnd))
			if got != tc.want {
				t.Errorf("Overlaps(%d-%d, %d-%d) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
		})
	}

	// Symmetry holds for every pair.
	for _, tc := range cases {
		forward := Overlaps(at(tc.aStart), at(tc.aEnd), at(tc.bStart), at(tc.bEnd))
		reverse := Overlaps(at(tc.bStart), at(tc.bEnd), at(tc.aStart), at(tc.aEnd))
		if forward != reverse {
			t.Errorf("%s: overlap check is not symmetric", tc.name)
		}
	}
}
