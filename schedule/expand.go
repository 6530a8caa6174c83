package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RawRow is a compact authored timetable row, as prepared by the academy's
// planners. One row can cover a range of periods ("P 1 to 4") and, for rows
// whose Day is "All", every school day.
type RawRow struct {
	Day         string // a school day name, or "All"
	Period      string // "P1", or a range like "P 1 to 4"
	Group       string // group name, possibly with a parenthesised alias suffix
	Classroom   string // primary room, possibly "primary / secondary"
	Instructors string // one or more names joined by " & "
	Topic       string
}

var periodNumbers = regexp.MustCompile(`\d+`)

// idBase partitions the id space by (weekType, subject) so that ids are unique
// across the whole expanded table and stable across runs.
func idBase(weekType WeekType, subject SubjectType) int {
	base := 0
	if weekType == WeekEven {
		base += 1000
	}
	if subject == SubjectEnglish {
		base += 500
	}
	return base
}

// Expand transforms compact rows into one Assignment per (day, period).
//
// A row with an unparsable period range contributes zero assignments: the raw
// rows are reference data prepared once, not user input, so a malformed row is
// dropped rather than surfaced as a runtime error.
func Expand(rows []RawRow, weekType WeekType, subject SubjectType) []Assignment {
	assignments := make([]Assignment, 0, len(rows))
	id := idBase(weekType, subject)

	for _, row := range rows {
		from, to, ok := parsePeriodRange(row.Period)
		if !ok {
			continue
		}

		for _, day := range expandDays(row.Day) {
			for p := from; p <= to; p++ {
				assignments = append(assignments, Assignment{
					ID:          id,
					WeekType:    weekType,
					Day:         day,
					Period:      fmt.Sprintf("P%d", p),
					Group:       groupName(row.Group),
					Classroom:   primaryRoom(row.Classroom),
					Instructors: splitInstructors(row.Instructors),
					Topic:       row.Topic,
					Type:        subject,
				})
				id++
			}
		}
	}

	return assignments
}

// parsePeriodRange extracts the inclusive period range from notations like
// "P1", "P 1 to 4" or "P 5 to 7". A single period is a range of one.
func parsePeriodRange(s string) (from, to int, ok bool) {
	matches := periodNumbers.FindAllString(s, -1)
	if len(matches) == 0 {
		return 0, 0, false
	}

	from, err := strconv.Atoi(matches[0])
	if err != nil {
		return 0, 0, false
	}
	to = from
	if len(matches) > 1 {
		to, err = strconv.Atoi(matches[1])
		if err != nil {
			return 0, 0, false
		}
	}

	return from, to, true
}

// expandDays maps a row's day field to the days it covers: an explicit school
// day covers itself, anything else (the "All" sentinel) covers the whole week.
func expandDays(day string) []Day {
	for _, d := range SchoolDays {
		if Day(day) == d {
			return []Day{d}
		}
	}
	return SchoolDays
}

// groupName strips a parenthesised alias, e.g. "DPFD-01(DPST-04)" -> "DPFD-01".
func groupName(s string) string {
	name, _, _ := strings.Cut(s, "(")
	return strings.TrimSpace(name)
}

// primaryRoom keeps only the primary room from "2.08 / WS-06" notation.
func primaryRoom(s string) string {
	room, _, _ := strings.Cut(s, " / ")
	return strings.TrimSpace(room)
}

func splitInstructors(s string) []string {
	parts := strings.Split(s, "&")
	instructors := make([]string, 0, len(parts))
	for _, part := range parts {
		instructors = append(instructors, strings.TrimSpace(part))
	}
	return instructors
}
