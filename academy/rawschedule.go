package academy

import (
	"fmt"

	"github.com/SOJH07/NAVA-Dashboard/schedule"
)

// rawScheduleOdd is the authored technical timetable for odd weeks, as the
// planners write it: one row per (day, period block, group).
var rawScheduleOdd = []schedule.RawRow{
	// Sunday
	{Day: "Sunday", Period: "P 1 to 4", Group: "DPIT-01", Classroom: "2.04", Instructors: "Venkata", Topic: "Unit 9"},
	{Day: "Sunday", Period: "P 1 to 4", Group: "DPIT-03", Classroom: "2.18", Instructors: "Muhammad Fathi", Topic: "Unit 9"},
	{Day: "Sunday", Period: "P 1 to 4", Group: "DPIT-05", Classroom: "2.08 / WS-06", Instructors: "Sikandar", Topic: "Unit 6"},
	{Day: "Sunday", Period: "P 1 to 4", Group: "DPIT-07", Classroom: "2.01 / WS-11", Instructors: "Fahd", Topic: "Unit 6"},
	{Day: "Sunday", Period: "P 1 to 4", Group: "DPST-02", Classroom: "2.02 / WS-11", Instructors: "Abdul Basit", Topic: "Unit 6"},
	{Day: "Sunday", Period: "P 1 to 4", Group: "DPFD-01(DPST-04)", Classroom: "2.10 / WS-06", Instructors: "Sajid Rahman", Topic: "Unit 6"},
	{Day: "Sunday", Period: "P 5 to 7", Group: "DPIT-02", Classroom: "2.08", Instructors: "Venkata", Topic: "Unit 9"},
	{Day: "Sunday", Period: "P 5 to 7", Group: "DPIT-04", Classroom: "2.13", Instructors: "Muhammad Fathi", Topic: "Unit 9"},
	{Day: "Sunday", Period: "P 5 to 7", Group: "DPIT-06", Classroom: "2.15 / WS-06", Instructors: "Sikandar", Topic: "Unit 6"},
	{Day: "Sunday", Period: "P 5 to 7", Group: "DPST-01", Classroom: "2.11 / WS-11", Instructors: "Fahd", Topic: "Unit 6"},
	{Day: "Sunday", Period: "P 5 to 7", Group: "DPST-03", Classroom: "2.05 / WS-11", Instructors: "Abdul Basit", Topic: "Unit 6"},
	{Day: "Sunday", Period: "P 5 to 7", Group: "DPFD-02(DPIT-08)", Classroom: "2.09 / WS-06", Instructors: "Sajid Rahman", Topic: "Unit 6"},

	// Monday
	{Day: "Monday", Period: "P 1 to 4", Group: "DPIT-01", Classroom: "2.04", Instructors: "Ali Sameh", Topic: "Unit 9-LN"},
	{Day: "Monday", Period: "P 1 to 4", Group: "DPIT-03", Classroom: "2.18", Instructors: "Azfar Ali", Topic: "Unit 9-LN"},
	{Day: "Monday", Period: "P 1 to 4", Group: "DPIT-05", Classroom: "2.08 / WS-06", Instructors: "Sikandar", Topic: "Unit 9"},
	{Day: "Monday", Period: "P 1 to 4", Group: "DPIT-07", Classroom: "2.01 / WS-11", Instructors: "Abdul Basit", Topic: "Unit 9"},
	{Day: "Monday", Period: "P 1 to 4", Group: "DPST-02", Classroom: "2.02 / WS-11", Instructors: "Sajid Rahman", Topic: "Unit 9"},
	{Day: "Monday", Period: "P 1 to 4", Group: "DPFD-01(DPST-04)", Classroom: "2.10 / WS-06", Instructors: "Fahd", Topic: "Unit 9"},
	{Day: "Monday", Period: "P 5 to 7", Group: "DPIT-02", Classroom: "2.08", Instructors: "Sajid Rahman", Topic: "Unit 9-LN"},
	{Day: "Monday", Period: "P 5 to 7", Group: "DPIT-04", Classroom: "2.13", Instructors: "Sikandar", Topic: "Unit 9-LN"},
	{Day: "Monday", Period: "P 5 to 7", Group: "DPIT-06", Classroom: "2.15 / WS-06", Instructors: "Amr", Topic: "Unit 9"},
	{Day: "Monday", Period: "P 5 to 7", Group: "DPST-01", Classroom: "2.11 / WS-11", Instructors: "Abdul Basit", Topic: "Unit 9"},
	{Day: "Monday", Period: "P 5 to 7", Group: "DPST-03", Classroom: "2.05 / WS-11", Instructors: "Muhammad Fathi", Topic: "Unit 9"},
	{Day: "Monday", Period: "P 5 to 7", Group: "DPFD-02(DPIT-08)", Classroom: "2.09 / WS-06", Instructors: "Fahd", Topic: "Unit 9"},

	// Tuesday
	{Day: "Tuesday", Period: "P 1 to 4", Group: "DPIT-01", Classroom: "2.04", Instructors: "Venkata", Topic: "Unit 9"},
	{Day: "Tuesday", Period: "P 1 to 4", Group: "DPIT-03", Classroom: "2.18", Instructors: "Muhammad Fathi", Topic: "Unit 9"},
	{Day: "Tuesday", Period: "P 1 to 4", Group: "DPIT-05", Classroom: "2.08 / WS-06", Instructors: "Ali Sameh", Topic: "Unit 9-LN"},
	{Day: "Tuesday", Period: "P 1 to 4", Group: "DPIT-07", Classroom: "2.01 / WS-11", Instructors: "Moazzam", Topic: "Unit 9-LN"},
	{Day: "Tuesday", Period: "P 1 to 4", Group: "DPST-02", Classroom: "2.02 / WS-11", Instructors: "Sajid Rahman", Topic: "Unit 9"},
	{Day: "Tuesday", Period: "P 1 to 4", Group: "DPFD-01(DPST-04)", Classroom: "2.10 / WS-06", Instructors: "Fahd", Topic: "Unit 9"},
	{Day: "Tuesday", Period: "P 5 to 7", Group: "DPIT-02", Classroom: "2.08", Instructors: "Venkata", Topic: "Unit 9"},
	{Day: "Tuesday", Period: "P 5 to 7", Group: "DPIT-04", Classroom: "2.13", Instructors: "Muhammad Fathi", Topic: "Unit 9"},
	{Day: "Tuesday", Period: "P 5 to 7", Group: "DPIT-06", Classroom: "2.15 / WS-06", Instructors: "Sajid Rahman", Topic: "Unit 9-LN"},
	{Day: "Tuesday", Period: "P 5 to 7", Group: "DPST-01", Classroom: "2.11 / WS-11", Instructors: "Azfar Ali", Topic: "Unit 9-LN"},
	{Day: "Tuesday", Period: "P 5 to 7", Group: "DPST-03", Classroom: "2.05 / WS-11", Instructors: "Sikandar", Topic: "Unit 9"},
	{Day: "Tuesday", Period: "P 5 to 7", Group: "DPFD-02(DPIT-08)", Classroom: "2.09 / WS-06", Instructors: "Fahd", Topic: "Unit 9"},

	// Wednesday
	{Day: "Wednesday", Period: "P 1 to 4", Group: "DPIT-01", Classroom: "2.04", Instructors: "Venkata", Topic: "Unit 9"},
	{Day: "Wednesday", Period: "P 1 to 4", Group: "DPIT-03", Classroom: "2.18", Instructors: "Muhammad Fathi", Topic: "Unit 9"},
	{Day: "Wednesday", Period: "P 1 to 4", Group: "DPIT-05", Classroom: "2.08 / WS-06", Instructors: "Zahid", Topic: "Unit 9"},
	{Day: "Wednesday", Period: "P 1 to 4", Group: "DPIT-07", Classroom: "2.01 / WS-11", Instructors: "Abdul Basit", Topic: "Unit 9"},
	{Day: "Wednesday", Period: "P 1 to 4", Group: "DPST-02", Classroom: "2.02 / WS-11", Instructors: "Ali Sameh", Topic: "Unit 9-LN"},
	{Day: "Wednesday", Period: "P 1 to 4", Group: "DPFD-01(DPST-04)", Classroom: "2.10 / WS-06", Instructors: "Sikandar", Topic: "Unit 9-LN"},
	{Day: "Wednesday", Period: "P 5 to 7", Group: "DPIT-02", Classroom: "2.08", Instructors: "Venkata", Topic: "Unit 9"},
	{Day: "Wednesday", Period: "P 5 to 7", Group: "DPIT-04", Classroom: "2.13", Instructors: "Muhammad Fathi", Topic: "Unit 9"},
	{Day: "Wednesday", Period: "P 5 to 7", Group: "DPIT-06", Classroom: "2.15 / WS-06", Instructors: "Sikandar", Topic: "Unit 9"},
	{Day: "Wednesday", Period: "P 5 to 7", Group: "DPST-01", Classroom: "2.11 / WS-11", Instructors: "Abdul Basit", Topic: "Unit 9"},
	{Day: "Wednesday", Period: "P 5 to 7", Group: "DPST-03", Classroom: "2.05 / WS-11", Instructors: "Sajid Rahman", Topic: "Unit 9-LN"},
	{Day: "Wednesday", Period: "P 5 to 7", Group: "DPFD-02(DPIT-08)", Classroom: "2.09 / WS-06", Instructors: "Moazzam", Topic: "Unit 9-LN"},

	// Thursday
	{Day: "Thursday", Period: "P 1 to 4", Group: "DPIT-01", Classroom: "2.04", Instructors: "Venkata", Topic: "Unit 9"},
	{Day: "Thursday", Period: "P 1 to 4", Group: "DPIT-03", Classroom: "2.18", Instructors: "Muhammad Fathi", Topic: "Unit 9"},
	{Day: "Thursday", Period: "P 1 to 4", Group: "DPIT-05", Classroom: "2.08 / WS-06", Instructors: "Sikandar", Topic: "Unit 9"},
	{Day: "Thursday", Period: "P 1 to 4", Group: "DPIT-07", Classroom: "2.01 / WS-11", Instructors: "Abdul Basit", Topic: "Unit 9"},
	{Day: "Thursday", Period: "P 1 to 4", Group: "DPST-02", Classroom: "2.02 / WS-11", Instructors: "Asif", Topic: "Unit 9"},
	{Day: "Thursday", Period: "P 1 to 4", Group: "DPFD-01(DPST-04)", Classroom: "2.10 / WS-06", Instructors: "Fahd", Topic: "Unit 9"},
}

// rawScheduleEven is the authored technical timetable for even weeks. The
// planners author one template day; groups without a row for a given period
// fall back to their static classrooms.
var rawScheduleEven = []schedule.RawRow{
	// technical morning
	{Day: "Sunday", Period: "P 1 to 4", Group: "DPIT-02", Classroom: "2.08", Instructors: "Venkata", Topic: "Unit 8"},
	{Day: "Sunday", Period: "P 1 to 4", Group: "DPIT-04", Classroom: "2.13", Instructors: "Sikandar", Topic: "Unit 8"},
	{Day: "Sunday", Period: "P 1 to 4", Group: "DPIT-06", Classroom: "2.15", Instructors: "Amr", Topic: "Unit 5"},
	{Day: "Sunday", Period: "P 1 to 4", Group: "DPST-01", Classroom: "2.11", Instructors: "Fahd", Topic: "Unit 5"},
	{Day: "Sunday", Period: "P 1 to 4", Group: "DPST-03", Classroom: "2.05", Instructors: "Abdul Basit", Topic: "Unit 5"},
	{Day: "Sunday", Period: "P 1 to 4", Group: "DPFD-02", Classroom: "2.09", Instructors: "Muteeb", Topic: "Unit 5"},
	// technical afternoon
	{Day: "Sunday", Period: "P 5 to 7", Group: "DPIT-01", Classroom: "2.04", Instructors: "Venkata", Topic: "Unit 8"},
	{Day: "Sunday", Period: "P 5 to 7", Group: "DPIT-03", Classroom: "2.18", Instructors: "Sikandar", Topic: "Unit 8"},
	{Day: "Sunday", Period: "P 5 to 7", Group: "DPIT-05", Classroom: "2.08", Instructors: "Amr", Topic: "Unit 5"},
	{Day: "Sunday", Period: "P 5 to 7", Group: "DPIT-07", Classroom: "2.01", Instructors: "Fahd", Topic: "Unit 5"},
	{Day: "Sunday", Period: "P 5 to 7", Group: "DPST-02", Classroom: "2.02", Instructors: "Abdul Basit", Topic: "Unit 5"},
	{Day: "Sunday", Period: "P 5 to 7", Group: "DPFD-01", Classroom: "2.10", Instructors: "Muteeb", Topic: "Unit 5"},
}

// rawEnglishScheduleOdd is the odd-week english timetable. English sessions
// repeat identically on every school day, so rows use the "All" day sentinel.
var rawEnglishScheduleOdd = []schedule.RawRow{
	// P1
	{Day: "All", Period: "P1", Group: "G9", Classroom: "2.17", Instructors: "Jawish A & Ashfaq M", Topic: "English Session"},
	{Day: "All", Period: "P1", Group: "G10", Classroom: "2.13", Instructors: "Eldaw A & Hussain A", Topic: "English Session"},
	{Day: "All", Period: "P1", Group: "G11", Classroom: "2.15", Instructors: "Khan N & El-Sayed H", Topic: "English Session"},
	{Day: "All", Period: "P1", Group: "G12", Classroom: "2.06", Instructors: "Singh A", Topic: "English Session"},
	// P2
	{Day: "All", Period: "P2", Group: "G9", Classroom: "2.17", Instructors: "Jawish A & Ashfaq M", Topic: "English Session"},
	{Day: "All", Period: "P2", Group: "G10", Classroom: "2.13", Instructors: "Eldaw A & Hussain A", Topic: "English Session"},
	{Day: "All", Period: "P2", Group: "G11", Classroom: "2.15", Instructors: "Khan N & El-Sayed H", Topic: "English Session"},
	{Day: "All", Period: "P2", Group: "G12", Classroom: "2.06", Instructors: "Singh A", Topic: "English Session"},
	// P3
	{Day: "All", Period: "P3", Group: "G9", Classroom: "2.17", Instructors: "Jawish A & Ashfaq M", Topic: "English Session"},
	{Day: "All", Period: "P3", Group: "G10", Classroom: "2.13", Instructors: "Eldaw A & El-Sayed H", Topic: "English Session"},
	{Day: "All", Period: "P3", Group: "G11", Classroom: "2.15", Instructors: "Khan N & Hussain A", Topic: "English Session"},
	{Day: "All", Period: "P3", Group: "G12", Classroom: "2.06", Instructors: "Singh A", Topic: "English Session"},
	// P4
	{Day: "All", Period: "P4", Group: "G9", Classroom: "2.17", Instructors: "El-Sayed H", Topic: "English Session"},
	{Day: "All", Period: "P4", Group: "G10", Classroom: "2.13", Instructors: "Ashfaq M", Topic: "English Session"},
	{Day: "All", Period: "P4", Group: "G11", Classroom: "2.15", Instructors: "Hussain A & Khan N", Topic: "English Session"},
	{Day: "All", Period: "P4", Group: "G12", Classroom: "2.06", Instructors: "Singh A & Jawish A & Eldaw A", Topic: "English Session"},
	// P5
	{Day: "All", Period: "P5", Group: "G2", Classroom: "2.10", Instructors: "El-Sayed H & Eldaw A", Topic: "English Session"},
	{Day: "All", Period: "P5", Group: "G3", Classroom: "2.18", Instructors: "Ashfaq M & Khan N", Topic: "English Session"},
	{Day: "All", Period: "P5", Group: "G4", Classroom: "2.05", Instructors: "Hussain A", Topic: "English Session"},
	{Day: "All", Period: "P5", Group: "G5", Classroom: "2.02", Instructors: "Jawish A", Topic: "English Session"},
	{Day: "All", Period: "P5", Group: "G6", Classroom: "2.01", Instructors: "Singh A", Topic: "English Session"},
	// P6
	{Day: "All", Period: "P6", Group: "G2", Classroom: "2.10", Instructors: "El-Sayed H", Topic: "English Session"},
	{Day: "All", Period: "P6", Group: "G3", Classroom: "2.18", Instructors: "Ashfaq M & Singh A", Topic: "English Session"},
	{Day: "All", Period: "P6", Group: "G4", Classroom: "2.05", Instructors: "Hussain A & Jawish A", Topic: "English Session"},
	{Day: "All", Period: "P6", Group: "G5", Classroom: "2.02", Instructors: "Eldaw A", Topic: "English Session"},
	{Day: "All", Period: "P6", Group: "G6", Classroom: "2.01", Instructors: "Khan N", Topic: "English Session"},
	// P7
	{Day: "All", Period: "P7", Group: "G2", Classroom: "2.10", Instructors: "El-Sayed H & Singh A", Topic: "English Session"},
	{Day: "All", Period: "P7", Group: "G3", Classroom: "2.18", Instructors: "Ashfaq M & Jawish A", Topic: "English Session"},
	{Day: "All", Period: "P7", Group: "G4", Classroom: "2.05", Instructors: "Hussain A", Topic: "English Session"},
	{Day: "All", Period: "P7", Group: "G5", Classroom: "2.02", Instructors: "Eldaw A", Topic: "English Session"},
	{Day: "All", Period: "P7", Group: "G6", Classroom: "2.01", Instructors: "Khan N", Topic: "English Session"},
}

var (
	evenWeekMorningEnglishGroups   = []string{"G1", "G2", "G3", "G4", "G5", "G6", "G7"}
	evenWeekAfternoonEnglishGroups = []string{"G8", "G9", "G10", "G11", "G12", "G13"}
)

// rawEnglishScheduleEven builds the even-week english rows from a template:
// the sessions are identical across days and periods, so only the group/room
// pairing needs authoring. Room numbers are placeholders until the planners
// publish the final even-week room plan.
func rawEnglishScheduleEven() []schedule.RawRow {
	var rows []schedule.RawRow
	rows = append(rows, englishTemplate(evenWeekMorningEnglishGroups, "P 1 to 4")...)
	rows = append(rows, englishTemplate(evenWeekAfternoonEnglishGroups, "P 5 to 7")...)
	return rows
}

func englishTemplate(groups []string, periods string) []schedule.RawRow {
	rows := make([]schedule.RawRow, 0, len(groups))
	for i, group := range groups {
		rows = append(rows, schedule.RawRow{
			Day:         "All",
			Period:      periods,
			Group:       group,
			Classroom:   fmt.Sprintf("%d", 200+i),
			Instructors: englishInstructors[i%len(englishInstructors)],
			Topic:       "English Session",
		})
	}
	return rows
}
