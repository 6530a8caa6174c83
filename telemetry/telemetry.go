package telemetry

import (
	"time"

	"github.com/google/uuid"
)

// OccupancySnapshot records that a group held a room during a period at a
// point in time. The live engine emits one snapshot per occupied room whenever
// the derived occupancy changes; snapshots are buffered locally before being
// uploaded to the data platform.
type OccupancySnapshot struct {
	ID         uuid.UUID
	Time       time.Time
	WeekNumber int
	WeekType   string // "odd" or "even"
	Period     string
	Classroom  string
	Group      string
	Track      string // "tech" or "english"
}
