// Package academy is the static data provider: the student roster, group
// attributes, the daily period calendar, the floor plan and the authored
// timetable, all loaded once into memory and treated as read-only.
package academy

import (
	"github.com/SOJH07/NAVA-Dashboard/facility"
	"github.com/SOJH07/NAVA-Dashboard/roster"
	"github.com/SOJH07/NAVA-Dashboard/schedule"
	"github.com/SOJH07/NAVA-Dashboard/timetable"
)

// Data bundles every static collection the dashboard consumes.
type Data struct {
	Students     []roster.Student
	GroupInfo    roster.GroupInfo
	Aptis        map[int]roster.AptisScores
	DailyPeriods []timetable.DailyPeriod
	FloorPlan    []facility.FloorPlanItem
	Table        *schedule.Table

	TechInstructors    []string
	EnglishInstructors []string
}

// Load assembles the fixture datasets and expands the authored timetable.
func Load() *Data {
	return &Data{
		Students:           studentsFixture,
		GroupInfo:          buildGroupInfo(),
		Aptis:              aptisScoresFixture,
		DailyPeriods:       dailyPeriodsFixture,
		FloorPlan:          floorPlanFixture,
		Table:              buildTable(),
		TechInstructors:    techInstructors,
		EnglishInstructors: englishInstructors,
	}
}

// buildGroupInfo merges the per-group schedule types with the curriculum
// attributes into one lookup. Groups present in only one source keep zero
// values for the other's fields.
func buildGroupInfo() roster.GroupInfo {
	info := make(roster.GroupInfo)

	for _, gs := range groupSchedulesFixture {
		detail := info[gs.group]
		detail.ScheduleType = gs.scheduleType
		info[gs.group] = detail
	}
	for _, c := range curriculumFixture {
		detail := info[c.group]
		detail.CurriculumName = c.curriculumName
		detail.TrackName = c.trackName
		info[c.group] = detail
	}

	return info
}

func buildTable() *schedule.Table {
	return schedule.NewTable(
		schedule.Expand(rawScheduleOdd, schedule.WeekOdd, schedule.SubjectTechnical),
		schedule.Expand(rawScheduleEven, schedule.WeekEven, schedule.SubjectTechnical),
		schedule.Expand(rawEnglishScheduleOdd, schedule.WeekOdd, schedule.SubjectEnglish),
		schedule.Expand(rawEnglishScheduleEven(), schedule.WeekEven, schedule.SubjectEnglish),
	)
}
