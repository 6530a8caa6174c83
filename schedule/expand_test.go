package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandPeriodRange(t *testing.T) {
	rows := []RawRow{
		{Day: "Sunday", Period: "P 1 to 4", Group: "DPIT-01", Classroom: "2.04", Instructors: "Venkata", Topic: "Unit 9"},
	}

	assignments := Expand(rows, WeekOdd, SubjectTechnical)

	require.Len(t, assignments, 4)
	for i, a := range assignments {
		require.Equal(t, WeekOdd, a.WeekType)
		require.Equal(t, Sunday, a.Day)
		require.Equal(t, "DPIT-01", a.Group)
		require.Equal(t, "2.04", a.Classroom)
		require.Equal(t, []string{"Venkata"}, a.Instructors)
		require.Equal(t, "Unit 9", a.Topic)
		require.Equal(t, SubjectTechnical, a.Type)
		require.Equalf(t, "P"+string(rune('1'+i)), a.Period, "period %d", i)
	}
}

func TestExpandAllDays(t *testing.T) {
	rows := []RawRow{
		{Day: "All", Period: "P1", Group: "G9", Classroom: "2.17", Instructors: "Jawish A & Ashfaq M", Topic: "English Session"},
	}

	assignments := Expand(rows, WeekOdd, SubjectEnglish)

	require.Len(t, assignments, 5)
	for i, day := range SchoolDays {
		require.Equal(t, day, assignments[i].Day)
		require.Equal(t, "P1", assignments[i].Period)
		require.Equal(t, []string{"Jawish A", "Ashfaq M"}, assignments[i].Instructors)
	}
}

func TestExpandSingleDayRange(t *testing.T) {
	// a day-specific range row expands to (to - from + 1) assignments
	rows := []RawRow{
		{Day: "Monday", Period: "P 5 to 7", Group: "DPST-01", Classroom: "2.11 / WS-11", Instructors: "Fahd", Topic: "Unit 6"},
	}

	assignments := Expand(rows, WeekOdd, SubjectTechnical)

	require.Len(t, assignments, 3)
	require.Equal(t, "P5", assignments[0].Period)
	require.Equal(t, "P7", assignments[2].Period)
	// only the primary room is kept
	require.Equal(t, "2.11", assignments[0].Classroom)
}

func TestExpandGroupAlias(t *testing.T) {
	rows := []RawRow{
		{Day: "Sunday", Period: "P1", Group: "DPFD-01(DPST-04)", Classroom: "2.10 / WS-06", Instructors: "Sajid Rahman", Topic: "Unit 6"},
	}

	assignments := Expand(rows, WeekOdd, SubjectTechnical)

	require.Len(t, assignments, 1)
	require.Equal(t, "DPFD-01", assignments[0].Group)
	require.Equal(t, "2.10", assignments[0].Classroom)
}

func TestExpandDropsMalformedPeriod(t *testing.T) {
	rows := []RawRow{
		{Day: "Sunday", Period: "morning block", Group: "DPIT-01", Classroom: "2.04", Instructors: "Venkata", Topic: "Unit 9"},
		{Day: "Sunday", Period: "P2", Group: "DPIT-03", Classroom: "2.18", Instructors: "Muhammad Fathi", Topic: "Unit 9"},
	}

	assignments := Expand(rows, WeekOdd, SubjectTechnical)

	require.Len(t, assignments, 1)
	require.Equal(t, "DPIT-03", assignments[0].Group)
}

func TestExpandIDsArePartitionedAndDeterministic(t *testing.T) {
	rows := []RawRow{
		{Day: "Sunday", Period: "P 1 to 2", Group: "A", Classroom: "2.01", Instructors: "X", Topic: "T"},
	}

	oddTech := Expand(rows, WeekOdd, SubjectTechnical)
	oddEnglish := Expand(rows, WeekOdd, SubjectEnglish)
	evenTech := Expand(rows, WeekEven, SubjectTechnical)
	evenEnglish := Expand(rows, WeekEven, SubjectEnglish)

	require.Equal(t, 0, oddTech[0].ID)
	require.Equal(t, 500, oddEnglish[0].ID)
	require.Equal(t, 1000, evenTech[0].ID)
	require.Equal(t, 1500, evenEnglish[0].ID)

	// ids must not collide across partitions
	seen := map[int]bool{}
	for _, group := range [][]Assignment{oddTech, oddEnglish, evenTech, evenEnglish} {
		for _, a := range group {
			require.Falsef(t, seen[a.ID], "duplicate id %d", a.ID)
			seen[a.ID] = true
		}
	}

	// same input, same ids
	again := Expand(rows, WeekOdd, SubjectTechnical)
	require.Equal(t, oddTech, again)
}

func TestTableLookup(t *testing.T) {
	table := NewTable(
		Expand([]RawRow{
			{Day: "Sunday", Period: "P 1 to 4", Group: "DPIT-01", Classroom: "2.04", Instructors: "Venkata", Topic: "Unit 9"},
			{Day: "Sunday", Period: "P 5 to 7", Group: "DPIT-02", Classroom: "2.08", Instructors: "Venkata", Topic: "Unit 9"},
		}, WeekOdd, SubjectTechnical),
		Expand([]RawRow{
			{Day: "All", Period: "P1", Group: "G9", Classroom: "2.17", Instructors: "Jawish A", Topic: "English Session"},
		}, WeekOdd, SubjectEnglish),
	)

	byGroup := table.Lookup(WeekOdd, "P1")
	require.Len(t, byGroup, 2)
	require.Equal(t, "2.04", byGroup["DPIT-01"].Classroom)
	require.Equal(t, "2.17", byGroup["G9"].Classroom)

	require.Empty(t, table.Lookup(WeekEven, "P1"))
	require.NotContains(t, table.Lookup(WeekOdd, "P5"), "DPIT-01")

	require.Len(t, table.ForWeek(WeekOdd), 4+3+5)
	require.Empty(t, table.ForWeek(WeekEven))
}
