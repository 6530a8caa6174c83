package academy

import "github.com/SOJH07/NAVA-Dashboard/timetable"

// dailyPeriodsFixture is the published school day. The same windows apply to
// every school day; they are contiguous and cover the full academic day once.
var dailyPeriodsFixture = []timetable.DailyPeriod{
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
