// Package roster holds the academy's static student roster and the derived
// per-student attributes the dashboard displays.
package roster

// Student is one trainee's static identity and group memberships.
type Student struct {
	NavaID       int    `json:"navaId"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	TechGroup    string `json:"techGroup"`
	TechClass    string `json:"techClass"`
	EnglishGroup string `json:"englishGroup"`
	EnglishClass string `json:"englishClass"`
	Company      string `json:"company"`
}

// GroupDetail carries a group's static schedule and curriculum attributes.
// ScheduleType encodes whether the group's technical track meets mornings in
// even or odd weeks, e.g. "evenWeekMorningTech".
type GroupDetail struct {
	ScheduleType   string `json:"schedule_type"`
	CurriculumName string `json:"curriculum_name"`
	TrackName      string `json:"track_name"`
}

// GroupInfo maps group names to their static attributes.
type GroupInfo map[string]GroupDetail

// AptisScoreDetail is a single Aptis skill score with its CEFR level.
type AptisScoreDetail struct {
	Score int    `json:"score"`
	CEFR  string `json:"cefr"`
}

// AptisScores is a student's full Aptis assessment result.
type AptisScores struct {
	GrammarVocabulary AptisScoreDetail `json:"grammarVocabulary"`
	Listening         AptisScoreDetail `json:"listening"`
	Reading           AptisScoreDetail `json:"reading"`
	Speaking          AptisScoreDetail `json:"speaking"`
	Writing           AptisScoreDetail `json:"writing"`
	Overall           AptisScoreDetail `json:"overall"`
}

// EnhancedStudent is a Student plus the attributes derived from their group
// memberships and assessment scores.
type EnhancedStudent struct {
	Student
	FullName              string       `json:"fullName"`
	TrackName             string       `json:"trackName"`
	TechScheduleType      string       `json:"techScheduleType"`
	EnglishCurriculumName string       `json:"englishCurriculumName"`
	EnglishScheduleType   string       `json:"englishScheduleType"`
	AptisScores           *AptisScores `json:"aptisScores,omitempty"`
}
