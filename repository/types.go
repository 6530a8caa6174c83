package repository

import "github.com/SOJH07/NAVA-Dashboard/telemetry"

// StoredOccupancySnapshot is an occupancy snapshot persisted to the SQLite
// buffer, with a count of how many times its upload has been attempted.
type StoredOccupancySnapshot struct {
	telemetry.OccupancySnapshot
	UploadAttemptCount uint
}

func newStoredOccupancySnapshot(snapshot telemetry.OccupancySnapshot) StoredOccupancySnapshot {
	return StoredOccupancySnapshot{
		OccupancySnapshot:  snapshot,
		UploadAttemptCount: 0,
	}
}
