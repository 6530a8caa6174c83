package timetable

// Resolve returns the period that is active at the given minute-of-day, i.e. the
// first period in the list whose [start, end) window contains it. The boolean is
// false when no period is active: before school starts, during an unlisted gap,
// or after the last period ends.
func Resolve(periods []DailyPeriod, minuteOfDay int) (DailyPeriod, bool) {
	for _, p := range periods {
		if p.Contains(minuteOfDay) {
			return p, true
		}
	}
	return DailyPeriod{}, false
}

// FirstStart returns the start, in minutes after midnight, of the first period
// of the day. The boolean is false if the list is empty or its first entry is
// malformed.
func FirstStart(periods []DailyPeriod) (int, bool) {
	if len(periods) == 0 {
		return 0, false
	}
	start, err := periods[0].StartMinutes()
	if err != nil {
		return 0, false
	}
	return start, true
}
