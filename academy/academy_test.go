package academy

import (
	"testing"

	"github.com/SOJH07/NAVA-Dashboard/schedule"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	data := Load()

	require.NotEmpty(t, data.Students)
	require.NotEmpty(t, data.DailyPeriods)
	require.NotEmpty(t, data.FloorPlan)

	// every student's groups have schedule info
	for _, s := range data.Students {
		tech, ok := data.GroupInfo[s.TechGroup]
		require.Truef(t, ok, "student %d tech group %q has no group info", s.NavaID, s.TechGroup)
		require.NotEmptyf(t, tech.ScheduleType, "tech group %q has no schedule type", s.TechGroup)

		english, ok := data.GroupInfo[s.EnglishGroup]
		require.Truef(t, ok, "student %d english group %q has no group info", s.NavaID, s.EnglishGroup)
		require.NotEmptyf(t, english.ScheduleType, "english group %q has no schedule type", s.EnglishGroup)
	}
}

func TestGroupInfoMergesScheduleAndCurriculum(t *testing.T) {
	info := buildGroupInfo()

	it := info["DPIT-01"]
	require.Equal(t, "oddWeekMorningTech", it.ScheduleType)
	require.Equal(t, "DP-IT", it.CurriculumName)
	require.Equal(t, "IT", it.TrackName)

	// G1 appears only in the schedule fixture
	g1 := info["G1"]
	require.Equal(t, "evenWeekMorningEnglish", g1.ScheduleType)
	require.Empty(t, g1.CurriculumName)
}

func TestTableUpholdsAssignmentUniqueness(t *testing.T) {
	table := Load().Table

	// at most one assignment per (weekType, day, period, group)
	seen := map[[4]string]int{}
	ids := map[int]bool{}
	for _, a := range table.All() {
		key := [4]string{string(a.WeekType), string(a.Day), a.Period, a.Group}
		seen[key]++
		require.Equalf(t, 1, seen[key], "duplicate assignment for %v", key)

		require.Falsef(t, ids[a.ID], "duplicate assignment id %d", a.ID)
		ids[a.ID] = true
	}

	require.NotEmpty(t, table.ForWeek(schedule.WeekOdd))
	require.NotEmpty(t, table.ForWeek(schedule.WeekEven))
}

func TestOddMorningAssignmentsExist(t *testing.T) {
	table := Load().Table

	byGroup := table.Lookup(schedule.WeekOdd, "P1")
	require.Contains(t, byGroup, "DPIT-01")
	require.Equal(t, "2.04", byGroup["DPIT-01"].Classroom)
	// the secondary workshop room is dropped at expansion
	require.Equal(t, "2.08", byGroup["DPIT-05"].Classroom)
	// aliased group names are truncated
	require.Contains(t, byGroup, "DPFD-01")
}
