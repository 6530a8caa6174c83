package academy

// groupSchedule records in which week parity a group's own track meets
// mornings. Technical groups rotate against the english groups: when an
// "evenWeekMorningTech" group is in its technical class, its students'
// english groups are free, and vice versa.
type groupSchedule struct {
	group        string
	scheduleType string
}

var groupSchedulesFixture = []groupSchedule{
	// even week morning groups
	{"G1", "evenWeekMorningEnglish"},
	{"G2", "evenWeekMorningEnglish"},
	{"G3", "evenWeekMorningEnglish"},
	{"G4", "evenWeekMorningEnglish"},
	{"G5", "evenWeekMorningEnglish"},
	{"G6", "evenWeekMorningEnglish"},
	{"G7", "evenWeekMorningEnglish"},
	{"DPST-01", "evenWeekMorningTech"},
	{"DPIT-02", "evenWeekMorningTech"},
	{"DPIT-04", "evenWeekMorningTech"},
	{"DPIT-06", "evenWeekMorningTech"},
	{"DPST-03", "evenWeekMorningTech"},
	{"DPFD-02", "evenWeekMorningTech"},

	// odd week morning groups
	{"G8", "oddWeekMorningEnglish"},
	{"G9", "oddWeekMorningEnglish"},
	{"G10", "oddWeekMorningEnglish"},
	{"G11", "oddWeekMorningEnglish"},
	{"G12", "oddWeekMorningEnglish"},
	{"G13", "oddWeekMorningEnglish"},
	{"DPIT-01", "oddWeekMorningTech"},
	{"DPFD-01", "oddWeekMorningTech"},
	{"DPIT-03", "oddWeekMorningTech"},
	{"DPIT-05", "oddWeekMorningTech"},
	{"DPST-02", "oddWeekMorningTech"},
	{"DPIT-07", "oddWeekMorningTech"},
}

// curriculumEntry carries the authored curriculum and track labels per group.
type curriculumEntry struct {
	group          string
	curriculumName string
	trackName      string
}

var curriculumFixture = []curriculumEntry{
	{"DPIT-01", "DP-IT", "IT"},
	{"DPIT-02", "DP-IT", "IT"},
	{"DPIT-03", "DP-IT", "IT"},
	{"DPIT-04", "DP-IT", "IT"},
	{"DPIT-05", "DP-IT", "IT"},
	{"DPIT-06", "DP-IT", "IT"},
	{"DPIT-07", "DP-IT", "IT"},
	{"DPST-01", "DP-ST", "ST"},
	{"DPST-02", "DP-ST", "ST"},
	{"DPST-03", "DP-ST", "ST"},
	{"DPFD-01", "DP-FD", "FD"},
	{"DPFD-02", "DP-FD", "FD"},

	{"G2", "ESP-I", ""},
	{"G3", "ESP-I", ""},
	{"G4", "ESP-I", ""},
	{"G5", "ESP-I", ""},
	{"G6", "ESP-I", ""},
	{"G9", "ESP-I", ""},
	{"G10", "ESP-I", ""},
	{"G11", "ESP-I", ""},
	{"G12", "ESP-I", ""},
}

var techInstructors = []string{
	"Abdul Basit", "Ali Sameh", "Amr", "Asif", "Azfar Ali", "Fahd", "Haris",
	"Moazzam", "Muhammad Fathi", "Muteeb", "Sajid Rahman", "Sikandar",
	"Venkata", "Zahid",
}

var englishInstructors = []string{
	"Ashfaq M", "El-Sayed H", "Eldaw A", "Hussain A", "Jawish A", "Khan N",
	"Singh A",
}
