package liveops

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SOJH07/NAVA-Dashboard/roster"
	"github.com/SOJH07/NAVA-Dashboard/schedule"
	"github.com/SOJH07/NAVA-Dashboard/timetable"
	"github.com/SOJH07/NAVA-Dashboard/weekclock"
)

// morningPeriods are the first four ordinal period slots. During a morning
// period a group whose technical track meets mornings this week is in its
// technical class, and its english class otherwise; afternoons invert the
// mapping.
var morningPeriods = map[string]bool{"P1": true, "P2": true, "P3": true, "P4": true}

// Deriver computes the live view from immutable inputs: the enhanced roster,
// the daily period calendar, per-group schedule info and the expanded
// assignment table. Derive is pure over these inputs plus the supplied time.
type Deriver struct {
	students []roster.EnhancedStudent
	periods  []timetable.DailyPeriod
	groups   roster.GroupInfo
	table    *schedule.Table
	logger   *slog.Logger
}

func NewDeriver(students []roster.EnhancedStudent, periods []timetable.DailyPeriod, groups roster.GroupInfo, table *schedule.Table) *Deriver {
	return &Deriver{
		students: students,
		periods:  periods,
		groups:   groups,
		table:    table,
		logger:   slog.Default(),
	}
}

// Derive computes the full live state for the given wall-clock time.
func (d *Deriver) Derive(now time.Time) State {

	weekNumber := weekclock.WeekNumber(now)
	isEvenWeek := weekclock.IsEven(weekNumber)
	weekType := schedule.WeekOdd
	if isEvenWeek {
		weekType = schedule.WeekEven
	}

	nowMinutes := timetable.MinuteOfDay(now)
	period, inPeriod := timetable.Resolve(d.periods, nowMinutes)

	state := State{
		Now:           now,
		WeekNumber:    weekNumber,
		IsEvenWeek:    isEvenWeek,
		Occupancy:     OccupancyData{},
		LiveClasses:   []LiveClass{},
		LiveStudents:  make([]LiveStudent, 0, len(d.students)),
		OverallStatus: overallStatus(d.periods, nowMinutes, period, inPeriod),
		Source:        SourceLocal,
	}
	if inPeriod {
		p := period
		state.CurrentPeriod = &p
	}

	firstStart, haveFirst := timetable.FirstStart(d.periods)
	if !inPeriod && haveFirst && nowMinutes < firstStart {
		// Before the school day: everyone is upcoming and nothing is occupied.
		for _, student := range d.students {
			state.LiveStudents = append(state.LiveStudents, LiveStudent{
				EnhancedStudent: student,
				Location:        "Not started",
				Status:          StatusUpcoming,
				CurrentPeriod:   "N/A",
			})
		}
		return state
	}

	var assignmentsByGroup map[string]schedule.Assignment
	if inPeriod {
		assignmentsByGroup = d.table.Lookup(weekType, period.Name)
	}

	for _, student := range d.students {
		live := LiveStudent{
			EnhancedStudent: student,
			Location:        "N/A",
			Status:          StatusFinished,
			CurrentPeriod:   "N/A",
		}
		if inPeriod {
			live.CurrentPeriod = period.Name

			switch period.Type {
			case timetable.PeriodBreak:
				live.Location = "On Break"
				live.Status = StatusBreak

			case timetable.PeriodClass:
				d.placeStudent(&live, &state, period, isEvenWeek, assignmentsByGroup)
			}
		}

		state.LiveStudents = append(state.LiveStudents, live)
	}

	state.LiveClasses = liveClasses(state.Occupancy)
	return state
}

// placeStudent resolves which subject the student is sitting this period and
// in which room, marks them In Class and contributes the room to the
// occupancy map. A student whose tech group has no schedule info cannot be
// placed and keeps the default status.
func (d *Deriver) placeStudent(live *LiveStudent, state *State, period timetable.DailyPeriod, isEvenWeek bool, assignmentsByGroup map[string]schedule.Assignment) {

	student := live.EnhancedStudent
	techInfo, ok := d.groups[student.TechGroup]
	if !ok {
		return
	}

	parityPrefix := "odd"
	if isEvenWeek {
		parityPrefix = "even"
	}
	techIsMorningThisWeek := strings.HasPrefix(techInfo.ScheduleType, parityPrefix)

	// Strict complementary pairing: a class period maps every student to
	// exactly one of the two tracks.
	track := TrackEnglish
	if morningPeriods[period.Name] == techIsMorningThisWeek {
		track = TrackTech
	}

	group := student.EnglishGroup
	fallbackClass := student.EnglishClass
	if track == TrackTech {
		group = student.TechGroup
		fallbackClass = student.TechClass
	}

	classroom := fallbackClass
	if assignment, ok := assignmentsByGroup[group]; ok {
		classroom = assignment.Classroom
	} else {
		d.logger.Debug("No assignment for group, using static classroom",
			"group", group, "period", period.Name, "classroom", fallbackClass)
	}

	prefix := "English"
	if track == TrackTech {
		prefix = "Tech"
	}
	live.Status = StatusInClass
	live.Location = prefix + ": C-" + strings.ReplaceAll(classroom, ".", "")

	state.Occupancy[classroom] = Occupant{Group: group, Type: track}
}

// overallStatus summarises the whole academy's state for the dashboard
// header. During a break the break's own name is shown.
func overallStatus(periods []timetable.DailyPeriod, nowMinutes int, period timetable.DailyPeriod, inPeriod bool) string {
	if !inPeriod {
		if first, ok := timetable.FirstStart(periods); ok && nowMinutes < first {
			return "Upcoming"
		}
		return "Finished"
	}
	if period.Type == timetable.PeriodClass {
		return "In Class"
	}
	return period.Name
}

func liveClasses(occupancy OccupancyData) []LiveClass {
	classes := make([]LiveClass, 0, len(occupancy))
	for classroom, occupant := range occupancy {
		classes = append(classes, LiveClass{
			Group:     occupant.Group,
			Type:      occupant.Type,
			Classroom: classroom,
		})
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].Classroom < classes[j].Classroom
	})
	return classes
}
