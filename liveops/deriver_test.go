package liveops

import (
	"testing"
	"time"

	"github.com/SOJH07/NAVA-Dashboard/roster"
	"github.com/SOJH07/NAVA-Dashboard/schedule"
	"github.com/SOJH07/NAVA-Dashboard/timetable"
	"github.com/stretchr/testify/require"
)

// The anchor Sunday 2024-10-20 starts week 1 (odd); the following Sunday
// 2024-10-27 starts week 2 (even).
var (
	oddSunday  = time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC)
	evenSunday = time.Date(2024, 10, 27, 0, 0, 0, 0, time.UTC)
)

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
}

func testPeriods() []timetable.DailyPeriod {
	return []timetable.DailyPeriod{
		{Name: "P1", Start: "08:00", End: "08:55", Type: timetable.PeriodClass},
		{Name: "P2", Start: "08:55", End: "09:50", Type: timetable.PeriodClass},
		{Name: "Breakfast Break", Start: "09:50", End: "10:10", Type: timetable.PeriodBreak},
		{Name: "P3", Start: "10:10", End: "11:05", Type: timetable.PeriodClass},
		{Name: "P4", Start: "11:05", End: "12:00", Type: timetable.PeriodClass},
		{Name: "Lunch/Prayer Break", Start: "12:00", End: "12:45", Type: timetable.PeriodBreak},
		{Name: "P5", Start: "12:45", End: "13:40", Type: timetable.PeriodClass},
		{Name: "P6", Start: "13:40", End: "14:35", Type: timetable.PeriodClass},
		{Name: "Short Break", Start: "14:35", End: "14:45", Type: timetable.PeriodBreak},
		{Name: "P7", Start: "14:45", End: "15:40", Type: timetable.PeriodClass},
	}
}

func testGroups() roster.GroupInfo {
	return roster.GroupInfo{
		"DPIT-02": {ScheduleType: "evenWeekMorningTech", TrackName: "IT"},
		"G9":      {ScheduleType: "oddWeekMorningEnglish", CurriculumName: "ESP-I"},
	}
}

func testStudent() roster.EnhancedStudent {
	return roster.EnhancedStudent{
		Student: roster.Student{
			NavaID:       1001,
			Name:         "Saad",
			Surname:      "Alharbi",
			TechGroup:    "DPIT-02",
			TechClass:    "2.08",
			EnglishGroup: "G9",
			EnglishClass: "2.17",
			Company:      "Ceer",
		},
		FullName: "Saad Alharbi",
	}
}

func testDeriver() *Deriver {
	table := schedule.NewTable(
		schedule.Expand([]schedule.RawRow{
			{Day: "Sunday", Period: "P 1 to 4", Group: "DPIT-02", Classroom: "2.08", Instructors: "Venkata", Topic: "Unit 8"},
		}, schedule.WeekEven, schedule.SubjectTechnical),
		schedule.Expand([]schedule.RawRow{
			{Day: "All", Period: "P 5 to 7", Group: "G9", Classroom: "2.17", Instructors: "Jawish A", Topic: "English Session"},
		}, schedule.WeekEven, schedule.SubjectEnglish),
	)
	return NewDeriver([]roster.EnhancedStudent{testStudent()}, testPeriods(), testGroups(), table)
}

func TestDeriveUpcomingBeforeSchool(t *testing.T) {
	state := testDeriver().Derive(at(evenSunday, 6, 30))

	require.Equal(t, "Upcoming", state.OverallStatus)
	require.Nil(t, state.CurrentPeriod)
	require.Empty(t, state.Occupancy)
	require.Empty(t, state.LiveClasses)

	require.Len(t, state.LiveStudents, 1)
	student := state.LiveStudents[0]
	require.Equal(t, StatusUpcoming, student.Status)
	require.Equal(t, "Not started", student.Location)
	require.Equal(t, "N/A", student.CurrentPeriod)
}

func TestDeriveTechMorningOnEvenWeek(t *testing.T) {
	// DPIT-02 is an evenWeekMorningTech group: on an even week morning period
	// the student sits their technical class, in the room the assignment
	// table names.
	state := testDeriver().Derive(at(evenSunday, 8, 30))

	require.Equal(t, 2, state.WeekNumber)
	require.True(t, state.IsEvenWeek)
	require.NotNil(t, state.CurrentPeriod)
	require.Equal(t, "P1", state.CurrentPeriod.Name)
	require.Equal(t, "In Class", state.OverallStatus)

	student := state.LiveStudents[0]
	require.Equal(t, StatusInClass, student.Status)
	require.Equal(t, "Tech: C-208", student.Location)
	require.Equal(t, "P1", student.CurrentPeriod)

	require.Equal(t, Occupant{Group: "DPIT-02", Type: TrackTech}, state.Occupancy["2.08"])
	require.Equal(t, []LiveClass{{Group: "DPIT-02", Type: TrackTech, Classroom: "2.08"}}, state.LiveClasses)
}

func TestDeriveEnglishFallbackOnOddWeek(t *testing.T) {
	// On an odd week the same group's tech track meets afternoons, so P1 is
	// english. No odd-week english assignment exists for G9/P1, so the
	// student's static english classroom is used.
	state := testDeriver().Derive(at(oddSunday, 8, 30))

	require.Equal(t, 1, state.WeekNumber)
	require.False(t, state.IsEvenWeek)

	student := state.LiveStudents[0]
	require.Equal(t, StatusInClass, student.Status)
	require.Equal(t, "English: C-217", student.Location)

	require.Equal(t, Occupant{Group: "G9", Type: TrackEnglish}, state.Occupancy["2.17"])
}

func TestDeriveAfternoonInvertsThePairing(t *testing.T) {
	// Even week afternoon: tech met in the morning, so P5 is english, taken
	// from the even-week english assignment table.
	state := testDeriver().Derive(at(evenSunday, 13, 0))

	student := state.LiveStudents[0]
	require.Equal(t, StatusInClass, student.Status)
	require.Equal(t, "English: C-217", student.Location)
	require.Equal(t, "P5", student.CurrentPeriod)

	// Odd week afternoon: tech meets afternoons. No odd-week tech assignment
	// exists, so the static tech classroom is the fallback.
	state = testDeriver().Derive(at(oddSunday, 13, 0))
	student = state.LiveStudents[0]
	require.Equal(t, "Tech: C-208", student.Location)
	require.Equal(t, Occupant{Group: "DPIT-02", Type: TrackTech}, state.Occupancy["2.08"])
}

func TestDeriveComplementaryPairing(t *testing.T) {
	// Across every class period of both week parities the student is in
	// exactly one of the two tracks.
	for _, day := range []time.Time{oddSunday, evenSunday} {
		for _, clock := range [][2]int{{8, 30}, {9, 0}, {10, 30}, {11, 30}, {13, 0}, {14, 0}, {15, 0}} {
			state := testDeriver().Derive(at(day, clock[0], clock[1]))
			student := state.LiveStudents[0]
			require.Equalf(t, StatusInClass, student.Status, "%v %02d:%02d", day, clock[0], clock[1])
			isTech := student.Location[:4] == "Tech"
			isEnglish := student.Location[:7] == "English"
			require.Truef(t, isTech != isEnglish, "location %q must be exactly one track", student.Location)
		}
	}
}

func TestDeriveBreak(t *testing.T) {
	state := testDeriver().Derive(at(evenSunday, 12, 15))

	require.Equal(t, "Lunch/Prayer Break", state.OverallStatus)
	student := state.LiveStudents[0]
	require.Equal(t, StatusBreak, student.Status)
	require.Equal(t, "On Break", student.Location)
	require.Equal(t, "Lunch/Prayer Break", student.CurrentPeriod)
	require.Empty(t, state.Occupancy)
}

func TestDeriveFinishedAfterSchool(t *testing.T) {
	state := testDeriver().Derive(at(evenSunday, 16, 30))

	require.Equal(t, "Finished", state.OverallStatus)
	require.Nil(t, state.CurrentPeriod)
	student := state.LiveStudents[0]
	require.Equal(t, StatusFinished, student.Status)
	require.Equal(t, "N/A", student.Location)
	require.Equal(t, "N/A", student.CurrentPeriod)
}

func TestDeriveUnknownTechGroupIsNotPlaced(t *testing.T) {
	stray := testStudent()
	stray.TechGroup = "DPXX-99"
	deriver := NewDeriver([]roster.EnhancedStudent{stray}, testPeriods(), testGroups(), schedule.NewTable())

	state := deriver.Derive(at(evenSunday, 8, 30))
	student := state.LiveStudents[0]
	require.Equal(t, StatusFinished, student.Status)
	require.Equal(t, "N/A", student.Location)
	require.Equal(t, "P1", student.CurrentPeriod)
	require.Empty(t, state.Occupancy)
}

func TestDeriveIsIdempotent(t *testing.T) {
	deriver := testDeriver()
	now := at(evenSunday, 10, 30)
	require.Equal(t, deriver.Derive(now), deriver.Derive(now))
}
