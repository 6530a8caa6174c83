// Package weekclock maps calendar dates onto the academy's numbered weeks and
// their odd/even rotation.
package weekclock

import "time"

// anchor is the Sunday on which academy week 1 began. Calibrated so that
// July 20, 2025 falls in week 40.
var anchor = time.Date(2024, time.October, 20, 0, 0, 0, 0, time.UTC)

// WeekNumber returns the academy week number (>= 1) for the given date.
//
// Both the anchor and the given date are normalised to midnight UTC of the
// same calendar day before differencing, so a local-timezone wall-clock offset
// never changes which week a calendar date falls in. Dates before the anchor
// are clamped to week 1.
func WeekNumber(t time.Time) int {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	elapsed := day.Sub(anchor)
	if elapsed < 0 {
		return 1
	}

	days := int(elapsed.Hours() / 24)
	return days/7 + 1
}

// IsEven returns true when the given week number is an even week of the
// odd/even rotation.
func IsEven(weekNumber int) bool {
	return weekNumber%2 == 0
}
