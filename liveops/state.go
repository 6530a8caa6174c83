// Package liveops derives the academy's live view: which period is running,
// which group holds which room, and where every student is right now.
package liveops

import (
	"time"

	"github.com/SOJH07/NAVA-Dashboard/roster"
	"github.com/SOJH07/NAVA-Dashboard/timetable"
)

// Track identifies which of a student's two tracks a live fact refers to.
type Track string

const (
	TrackTech    Track = "tech"
	TrackEnglish Track = "english"
)

// StudentStatus is a student's live state, driven purely by wall-clock time.
type StudentStatus string

const (
	StatusInClass  StudentStatus = "In Class"
	StatusBreak    StudentStatus = "Break"
	StatusFinished StudentStatus = "Finished"
	StatusUpcoming StudentStatus = "Upcoming"
)

// Occupant is the group currently holding a classroom.
type Occupant struct {
	Group string `json:"group"`
	Type  Track  `json:"type"`
}

// OccupancyData maps classroom identifiers to their current occupant. Rooms
// with no entry are vacant.
type OccupancyData map[string]Occupant

// LiveClass is one occupied room, flattened for list consumers.
type LiveClass struct {
	Group     string `json:"group"`
	Type      Track  `json:"type"`
	Classroom string `json:"classroom"`
}

// LiveStudent is a student with their live status and location attached.
// Recomputed every tick, never persisted.
type LiveStudent struct {
	roster.EnhancedStudent
	Location      string        `json:"location"`
	Status        StudentStatus `json:"status"`
	CurrentPeriod string        `json:"currentPeriod"`
}

// Source tags which producer supplied the live portion of a State.
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
)

// State is the full derived view published once per tick.
type State struct {
	Now           time.Time              `json:"now"`
	WeekNumber    int                    `json:"weekNumber"`
	IsEvenWeek    bool                   `json:"isEvenWeek"`
	CurrentPeriod *timetable.DailyPeriod `json:"currentPeriod"`
	Occupancy     OccupancyData          `json:"occupancy"`
	LiveClasses   []LiveClass            `json:"liveClasses"`
	LiveStudents  []LiveStudent          `json:"liveStudents"`
	OverallStatus string                 `json:"overallStatus"`
	Source        Source                 `json:"source"`
}

// RemotePayload is the live portion of the state as served by a remote
// live-status endpoint. It mirrors the locally derived shapes exactly so that
// consumers cannot tell which source produced the data.
type RemotePayload struct {
	Occupancy    OccupancyData `json:"occupancy"`
	LiveStudents []LiveStudent `json:"liveStudents"`
	LiveClasses  []LiveClass   `json:"liveClasses"`
}
