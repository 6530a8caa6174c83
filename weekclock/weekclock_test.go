package weekclock

import (
	"testing"
	"time"
)

func TestWeekNumber(t *testing.T) {

	riyadh := time.FixedZone("AST", 3*60*60)

	type subTest struct {
		name         string
		t            time.Time
		expectedWeek int
	}

	subTests := []subTest{
		{"anchor sunday", time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC), 1},
		{"mid week 1", time.Date(2024, 10, 23, 12, 0, 0, 0, time.UTC), 1},
		{"last day of week 1", time.Date(2024, 10, 26, 23, 59, 0, 0, time.UTC), 1},
		{"exactly 7 days after the anchor", time.Date(2024, 10, 27, 0, 0, 0, 0, time.UTC), 2},
		{"week 40 calibration date", time.Date(2025, 7, 20, 9, 0, 0, 0, time.UTC), 40},
		{"before the anchor clamps to week 1", time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), 1},
		{"far before the anchor clamps to week 1", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 1},
		{"local time is normalised to the UTC day", time.Date(2025, 7, 20, 12, 0, 0, 0, riyadh), 40},
	}

	for _, subTest := range subTests {
		t.Run(subTest.name, func(t *testing.T) {
			week := WeekNumber(subTest.t)
			if week != subTest.expectedWeek {
				t.Errorf("Got week %d, expected %d", week, subTest.expectedWeek)
			}
		})
	}
}

func TestWeekNumberIsPure(t *testing.T) {
	d := time.Date(2025, 3, 9, 15, 30, 0, 0, time.UTC)
	first := WeekNumber(d)
	second := WeekNumber(d)
	if first != second {
		t.Errorf("Week number is not deterministic: %d then %d", first, second)
	}
}

func TestWeekNumberSameInstantAcrossZones(t *testing.T) {
	// The same instant expressed in different zones must land in the same week.
	utc := time.Date(2025, 7, 20, 1, 0, 0, 0, time.UTC)
	shifted := utc.In(time.FixedZone("W", -5*60*60))
	if WeekNumber(utc) != WeekNumber(shifted) {
		t.Errorf("Week differs across zones: %d vs %d", WeekNumber(utc), WeekNumber(shifted))
	}
}

func TestIsEven(t *testing.T) {
	if IsEven(1) {
		t.Error("Week 1 should be odd")
	}
	if !IsEven(2) {
		t.Error("Week 2 should be even")
	}
	// A week exactly 7 days after an odd week flips parity.
	week := WeekNumber(time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC))
	next := WeekNumber(time.Date(2024, 10, 27, 0, 0, 0, 0, time.UTC))
	if IsEven(week) == IsEven(next) {
		t.Errorf("Parity did not flip between week %d and week %d", week, next)
	}
}
