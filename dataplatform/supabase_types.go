package dataplatform

import (
	"time"

	"github.com/SOJH07/NAVA-Dashboard/repository"
	"github.com/google/uuid"
)

// supabaseOccupancySnapshot holds the json encoding schema for an occupancy
// snapshot in supabase.
type supabaseOccupancySnapshot struct {
	ID         uuid.UUID `json:"id"`
	Time       time.Time `json:"time"`
	WeekNumber int       `json:"week_number"`
	WeekType   string    `json:"week_type"`
	Period     string    `json:"period"`
	Classroom  string    `json:"classroom"`
	Group      string    `json:"group_name"`
	Track      string    `json:"track"`
}

func convertSnapshots(snapshots []repository.StoredOccupancySnapshot) []supabaseOccupancySnapshot {
	var converted []supabaseOccupancySnapshot
	for _, snapshot := range snapshots {
		s := snapshot.OccupancySnapshot
		converted = append(converted, supabaseOccupancySnapshot{
			ID:         s.ID,
			Time:       s.Time,
			WeekNumber: s.WeekNumber,
			WeekType:   s.WeekType,
			Period:     s.Period,
			Classroom:  s.Classroom,
			Group:      s.Group,
			Track:      s.Track,
		})
	}
	return converted
}
