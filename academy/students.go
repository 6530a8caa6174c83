package academy

import "github.com/SOJH07/NAVA-Dashboard/roster"

// studentsFixture is the enrolled roster. Tech/english classes are the
// students' statically assigned rooms, used when no live assignment row
// covers their group for a period.
var studentsFixture = []roster.Student{
	{NavaID: 1001, Name: "Saad", Surname: "Alharbi", TechGroup: "DPIT-01", TechClass: "2.04", EnglishGroup: "G9", EnglishClass: "2.17", Company: "Ceer"},
	{NavaID: 1002, Name: "Omar", Surname: "Alqahtani", TechGroup: "DPIT-01", TechClass: "2.04", EnglishGroup: "G10", EnglishClass: "2.13", Company: "Ceer"},
	{NavaID: 1003, Name: "Fahad", Surname: "Alotaibi", TechGroup: "DPIT-02", TechClass: "2.08", EnglishGroup: "G2", EnglishClass: "2.10", Company: "Lucid"},
	{NavaID: 1004, Name: "Abdullah", Surname: "Alshehri", TechGroup: "DPIT-02", TechClass: "2.08", EnglishGroup: "G3", EnglishClass: "2.18", Company: "Ceer"},
	{NavaID: 1005, Name: "Mohammed", Surname: "Alghamdi", TechGroup: "DPIT-03", TechClass: "2.18", EnglishGroup: "G11", EnglishClass: "2.15", Company: "Lucid"},
	{NavaID: 1006, Name: "Khalid", Surname: "Alzahrani", TechGroup: "DPIT-03", TechClass: "2.18", EnglishGroup: "G9", EnglishClass: "2.17", Company: "Ceer"},
	{NavaID: 1007, Name: "Nawaf", Surname: "Almutairi", TechGroup: "DPIT-04", TechClass: "2.13", EnglishGroup: "G4", EnglishClass: "2.05", Company: "Lucid"},
	{NavaID: 1008, Name: "Turki", Surname: "Aldosari", TechGroup: "DPIT-05", TechClass: "2.08", EnglishGroup: "G12", EnglishClass: "2.06", Company: "Ceer"},
	{NavaID: 1009, Name: "Sultan", Surname: "Alharthi", TechGroup: "DPIT-06", TechClass: "2.15", EnglishGroup: "G5", EnglishClass: "2.02", Company: "Lucid"},
	{NavaID: 1010, Name: "Bandar", Surname: "Alsubaie", TechGroup: "DPIT-07", TechClass: "2.01", EnglishGroup: "G10", EnglishClass: "2.13", Company: "Ceer"},
	{NavaID: 1011, Name: "Rayan", Surname: "Alamri", TechGroup: "DPST-01", TechClass: "2.11", EnglishGroup: "G6", EnglishClass: "2.01", Company: "Ceer"},
	{NavaID: 1012, Name: "Ziyad", Surname: "Albalawi", TechGroup: "DPST-02", TechClass: "2.02", EnglishGroup: "G11", EnglishClass: "2.15", Company: "Lucid"},
	{NavaID: 1013, Name: "Majed", Surname: "Aljuhani", TechGroup: "DPST-03", TechClass: "2.05", EnglishGroup: "G2", EnglishClass: "2.10", Company: "Ceer"},
	{NavaID: 1014, Name: "Hassan", Surname: "Alshammari", TechGroup: "DPFD-01", TechClass: "2.10", EnglishGroup: "G12", EnglishClass: "2.06", Company: "Lucid"},
	{NavaID: 1015, Name: "Yasser", Surname: "Alasmari", TechGroup: "DPFD-02", TechClass: "2.09", EnglishGroup: "G3", EnglishClass: "2.18", Company: "Ceer"},
	{NavaID: 1016, Name: "Salem", Surname: "Aldawsari", TechGroup: "DPIT-05", TechClass: "2.08", EnglishGroup: "G9", EnglishClass: "2.17", Company: "Lucid"},
}

// aptisScoresFixture holds the Aptis results on record, keyed by NAVA id. Not
// every student has sat the assessment yet.
var aptisScoresFixture = map[int]roster.AptisScores{
	1001: {
		GrammarVocabulary: roster.AptisScoreDetail{Score: 34, CEFR: "B1"},
		Listening:         roster.AptisScoreDetail{Score: 38, CEFR: "B1"},
		Reading:           roster.AptisScoreDetail{Score: 33, CEFR: "B1"},
		Speaking:          roster.AptisScoreDetail{Score: 30, CEFR: "B1"},
		Writing:           roster.AptisScoreDetail{Score: 35, CEFR: "B1"},
		Overall:           roster.AptisScoreDetail{Score: 170, CEFR: "B1"},
	},
	1003: {
		GrammarVocabulary: roster.AptisScoreDetail{Score: 22, CEFR: "A2"},
		Listening:         roster.AptisScoreDetail{Score: 25, CEFR: "A2"},
		Reading:           roster.AptisScoreDetail{Score: 20, CEFR: "A2"},
		Speaking:          roster.AptisScoreDetail{Score: 18, CEFR: "A1"},
		Writing:           roster.AptisScoreDetail{Score: 24, CEFR: "A2"},
		Overall:           roster.AptisScoreDetail{Score: 109, CEFR: "A2"},
	},
	1005: {
		GrammarVocabulary: roster.AptisScoreDetail{Score: 42, CEFR: "B2"},
		Listening:         roster.AptisScoreDetail{Score: 44, CEFR: "B2"},
		Reading:           roster.AptisScoreDetail{Score: 40, CEFR: "B2"},
		Speaking:          roster.AptisScoreDetail{Score: 41, CEFR: "B2"},
		Writing:           roster.AptisScoreDetail{Score: 39, CEFR: "B1"},
		Overall:           roster.AptisScoreDetail{Score: 206, CEFR: "B2"},
	},
	1011: {
		GrammarVocabulary: roster.AptisScoreDetail{Score: 15, CEFR: "A1"},
		Listening:         roster.AptisScoreDetail{Score: 17, CEFR: "A1"},
		Reading:           roster.AptisScoreDetail{Score: 14, CEFR: "A1"},
		Speaking:          roster.AptisScoreDetail{Score: 16, CEFR: "A1"},
		Writing:           roster.AptisScoreDetail{Score: 13, CEFR: "A1"},
		Overall:           roster.AptisScoreDetail{Score: 75, CEFR: "A1"},
	},
}
