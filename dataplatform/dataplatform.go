// Package dataplatform streams occupancy telemetry to Supabase. Snapshots are
// buffered on disk in a SQLite database before being uploaded, so an outage
// on the platform side loses nothing.
package dataplatform

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SOJH07/NAVA-Dashboard/repository"
	"github.com/SOJH07/NAVA-Dashboard/telemetry"

	supa "github.com/nedpals/supabase-go"
)

const snapshotsTable = "occupancy_snapshots"

// uploadChunkLimit defines how many snapshots we upload in one supabase HTTP
// request.
const uploadChunkLimit = 100

// DataPlatform drains the Snapshots channel into the local buffer and uploads
// buffered snapshots on a fixed interval. Failed uploads leave the rows in the
// buffer with an incremented attempt count for a later retry.
type DataPlatform struct {
	Snapshots chan telemetry.OccupancySnapshot

	repository *repository.Repository
	supaClient *supa.Client
}

func New(supabaseUrl, supabaseKey, schema, bufferRepositoryFilename string) (*DataPlatform, error) {

	supaClient := supa.CreateClient(supabaseUrl, supabaseKey)
	supaClient.DB.AddHeader("Accept-Profile", schema)
	supaClient.DB.AddHeader("Content-Profile", schema)

	repo, err := repository.New(bufferRepositoryFilename)
	if err != nil {
		return nil, fmt.Errorf("create repository: %w", err)
	}

	return &DataPlatform{
		Snapshots:  make(chan telemetry.OccupancySnapshot, 25), // a small buffer to allow SQLite to catch up in case the disk is slow
		repository: repo,
		supaClient: supaClient,
	}, nil
}

// Run loops forever persisting incoming snapshots and uploading the buffer
// every uploadInterval. Exits when the context is cancelled.
func (d *DataPlatform) Run(ctx context.Context, uploadInterval time.Duration) {

	uploadTicker := time.NewTicker(uploadInterval)
	defer uploadTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case snapshot := <-d.Snapshots:
			err := d.repository.AddSnapshot(snapshot)
			if err != nil {
				slog.Error("failed to persist occupancy snapshot", "error", err)
			}
			slog.Debug("Stored occupancy snapshot", "classroom", snapshot.Classroom)

		case <-uploadTicker.C:
			d.attemptUpload()
		}
	}
}

// attemptUpload pushes buffered snapshots to Supabase: first those that have
// never been tried, then older ones that have already failed at least once.
func (d *DataPlatform) attemptUpload() {

	fresh, err := d.repository.GetSnapshots(uploadChunkLimit, true)
	if err != nil {
		slog.Error("failed to query fresh snapshots", "error", err)
	} else if len(fresh) > 0 {
		err = d.handleSnapshots(fresh)
		if err != nil {
			slog.Error("failed to handle fresh snapshots", "error", err)
		}
	}

	old, err := d.repository.GetSnapshots(uploadChunkLimit, false)
	if err != nil {
		slog.Error("failed to query old snapshots", "error", err)
	} else if len(old) > 0 {
		err = d.handleSnapshots(old)
		if err != nil {
			slog.Error("failed to handle old snapshots", "error", err)
		}
	}
}

// handleSnapshots attempts to upload the given snapshots. If successful they
// are deleted from the buffer; if not, their attempt count is incremented and
// they stay for another interval.
func (d *DataPlatform) handleSnapshots(snapshots []repository.StoredOccupancySnapshot) error {

	converted := convertSnapshots(snapshots)
	uploadErr := d.supaClient.DB.From(snapshotsTable).Insert(converted).Execute(nil)
	if uploadErr != nil {
		uploadErr := fmt.Errorf("upload failed: %w", uploadErr)
		errInc := d.repository.IncrementUploadAttemptCount(snapshots)
		if errInc != nil {
			return fmt.Errorf("%w: increment upload attempt count: %w", uploadErr, errInc)
		}
		return uploadErr
	}

	deleteErr := d.repository.DeleteSnapshots(snapshots)
	if deleteErr != nil {
		return fmt.Errorf("delete snapshots: %w", deleteErr)
	}

	slog.Info("Uploaded occupancy snapshots", "db_table", snapshotsTable, "db_records", len(snapshots))

	return nil
}
