package repository

import (
	"testing"
	"time"

	"github.com/SOJH07/NAVA-Dashboard/telemetry"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testSnapshot() telemetry.OccupancySnapshot {
	return telemetry.OccupancySnapshot{
		ID:         uuid.New(),
		Time:       time.Now().UTC(),
		WeekNumber: 2,
		WeekType:   "even",
		Period:     "P1",
		Classroom:  "2.08",
		Group:      "DPIT-02",
		Track:      "tech",
	}
}

func TestBufferLifecycle(t *testing.T) {
	repo, err := New(":memory:")
	require.NoError(t, err)

	require.NoError(t, repo.AddSnapshot(testSnapshot()))
	require.NoError(t, repo.AddSnapshot(testSnapshot()))

	fresh, err := repo.GetSnapshots(10, true)
	require.NoError(t, err)
	require.Len(t, fresh, 2)

	old, err := repo.GetSnapshots(10, false)
	require.NoError(t, err)
	require.Empty(t, old)

	// a failed upload moves snapshots from the fresh set to the old set
	require.NoError(t, repo.IncrementUploadAttemptCount(fresh))

	fresh, err = repo.GetSnapshots(10, true)
	require.NoError(t, err)
	require.Empty(t, fresh)

	old, err = repo.GetSnapshots(10, false)
	require.NoError(t, err)
	require.Len(t, old, 2)
	require.Equal(t, uint(1), old[0].UploadAttemptCount)

	// a successful upload deletes them
	require.NoError(t, repo.DeleteSnapshots(old))
	old, err = repo.GetSnapshots(10, false)
	require.NoError(t, err)
	require.Empty(t, old)
}
