package schedule

// Table is the fully expanded assignment table for both week types and both
// subject tracks. It is built once at startup and never modified.
type Table struct {
	assignments []Assignment
}

// NewTable builds a table from one or more expanded assignment slices.
func NewTable(groups ...[]Assignment) *Table {
	var all []Assignment
	for _, g := range groups {
		all = append(all, g...)
	}
	return &Table{assignments: all}
}

// All returns every assignment in the table.
func (t *Table) All() []Assignment {
	return t.assignments
}

// ForWeek returns the assignments belonging to the given week type.
func (t *Table) ForWeek(weekType WeekType) []Assignment {
	var filtered []Assignment
	for _, a := range t.assignments {
		if a.WeekType == weekType {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// Lookup returns the assignments active for the given week type and period,
// keyed by group. Where several rows name the same group for the same period
// the last authored row wins.
func (t *Table) Lookup(weekType WeekType, period string) map[string]Assignment {
	byGroup := make(map[string]Assignment)
	for _, a := range t.assignments {
		if a.WeekType == weekType && a.Period == period {
			byGroup[a.Group] = a
		}
	}
	return byGroup
}
