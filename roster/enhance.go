package roster

const unknown = "N/A"

// Enhance derives the display attributes for every student on the roster.
//
// A student's english curriculum follows their Aptis CEFR level when a score
// is on record (A1/A2 students sit the SEA curriculum, B1 and above ESP-II),
// falling back to the english group's authored curriculum name otherwise.
func Enhance(students []Student, groups GroupInfo, aptis map[int]AptisScores) []EnhancedStudent {
	enhanced := make([]EnhancedStudent, 0, len(students))

	for _, student := range students {
		techInfo, hasTech := groups[student.TechGroup]
		englishInfo, hasEnglish := groups[student.EnglishGroup]

		e := EnhancedStudent{
			Student:               student,
			FullName:              student.Name + " " + student.Surname,
			TrackName:             unknown,
			TechScheduleType:      unknown,
			EnglishCurriculumName: unknown,
			EnglishScheduleType:   unknown,
		}
		if hasTech {
			if techInfo.TrackName != "" {
				e.TrackName = techInfo.TrackName
			}
			if techInfo.ScheduleType != "" {
				e.TechScheduleType = techInfo.ScheduleType
			}
		}
		if hasEnglish {
			if englishInfo.CurriculumName != "" {
				e.EnglishCurriculumName = englishInfo.CurriculumName
			}
			if englishInfo.ScheduleType != "" {
				e.EnglishScheduleType = englishInfo.ScheduleType
			}
		}

		if scores, ok := aptis[student.NavaID]; ok {
			s := scores
			e.AptisScores = &s
			if name := curriculumForCEFR(scores.Overall.CEFR); name != "" {
				e.EnglishCurriculumName = name
			}
		}

		enhanced = append(enhanced, e)
	}

	return enhanced
}

func curriculumForCEFR(cefr string) string {
	switch cefr {
	case "A1", "A2":
		return "SEA"
	case "B1", "B2", "C":
		return "ESP-II"
	}
	return ""
}

// KPIs are the headline roster numbers shown on the dashboard.
type KPIs struct {
	TotalStudents int `json:"totalStudents"`
	CompanyCount  int `json:"companyCount"`
}

// ComputeKPIs counts the roster and the distinct sponsoring companies.
func ComputeKPIs(students []EnhancedStudent) KPIs {
	companies := make(map[string]struct{})
	for _, s := range students {
		companies[s.Company] = struct{}{}
	}
	return KPIs{
		TotalStudents: len(students),
		CompanyCount:  len(companies),
	}
}

// GroupCounts returns the number of students in each tech and english group.
func GroupCounts(students []Student) (tech, english map[string]int) {
	tech = make(map[string]int)
	english = make(map[string]int)
	for _, s := range students {
		if s.TechGroup != "" {
			tech[s.TechGroup]++
		}
		if s.EnglishGroup != "" {
			english[s.EnglishGroup]++
		}
	}
	return tech, english
}
