// Package schedule holds the academy's two-week rotating class-assignment
// table. Compact authored rows are expanded once at startup into one
// Assignment per (day, period); the expanded table is read-only reference
// data.
package schedule

// WeekType identifies which half of the two-week rotation an assignment
// belongs to.
type WeekType string

const (
	WeekOdd  WeekType = "odd"
	WeekEven WeekType = "even"
)

// SubjectType is the teaching track of an assignment.
type SubjectType string

const (
	SubjectTechnical SubjectType = "Technical"
	SubjectEnglish   SubjectType = "English"
)

// Day is a school day. The academy week runs Sunday to Thursday.
type Day string

const (
	Sunday    Day = "Sunday"
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
)

// SchoolDays lists the teaching days in order.
var SchoolDays = []Day{Sunday, Monday, Tuesday, Wednesday, Thursday}

// Assignment is one scheduled class-period occurrence: a group taught in a
// room during a single period of a single day of one week type.
type Assignment struct {
	ID          int         `json:"id"`
	WeekType    WeekType    `json:"weekType"`
	Day         Day         `json:"day"`
	Period      string      `json:"period"` // "P1".."P7"
	Group       string      `json:"group"`
	Classroom   string      `json:"classroom"`
	Instructors []string    `json:"instructors"`
	Topic       string      `json:"topic"`
	Type        SubjectType `json:"type"`
}
