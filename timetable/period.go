package timetable

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PeriodType distinguishes teaching periods from breaks.
type PeriodType string

const (
	PeriodClass PeriodType = "class"
	PeriodBreak PeriodType = "break"
)

// DailyPeriod represents a named window of the school day defined by local clock time,
// without any date information, e.g. "P1, 08:00 to 08:55".
// The same list of periods applies to every school day.
type DailyPeriod struct {
	Name  string     `json:"name"`
	Start string     `json:"start"` // "HH:MM"
	End   string     `json:"end"`   // "HH:MM"
	Type  PeriodType `json:"type"`
}

// StartMinutes returns the period's start as minutes after midnight.
func (p *DailyPeriod) StartMinutes() (int, error) {
	return parseClockMinutes(p.Start)
}

// EndMinutes returns the period's end as minutes after midnight.
func (p *DailyPeriod) EndMinutes() (int, error) {
	return parseClockMinutes(p.End)
}

// Contains returns true if the given minute-of-day falls within the period.
// The comparison is inclusive of the start but exclusive of the end, so an
// instant equal to one period's end belongs to the next period, never to both.
func (p *DailyPeriod) Contains(minuteOfDay int) bool {
	start, err := p.StartMinutes()
	if err != nil {
		return false
	}
	end, err := p.EndMinutes()
	if err != nil {
		return false
	}
	return minuteOfDay >= start && minuteOfDay < end
}

// MinuteOfDay returns the number of minutes after midnight of the given time,
// in the time's own location.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// parseClockMinutes parses a "HH:MM" string into minutes after midnight.
func parseClockMinutes(s string) (int, error) {
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return 0, fmt.Errorf("clock time %q: missing ':'", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("clock time %q: %w", s, err)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("clock time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q: out of range", s)
	}
	return hour*60 + minute, nil
}
