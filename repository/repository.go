package repository

import (
	"fmt"

	"github.com/SOJH07/NAVA-Dashboard/telemetry"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Repository buffers occupancy snapshots on the local file system (SQLite)
// until they have been uploaded to the data platform.
type Repository struct {
	db *gorm.DB
}

func New(path string) (*Repository, error) {

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	err = db.AutoMigrate(&StoredOccupancySnapshot{})
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}

func (r *Repository) AddSnapshot(snapshot telemetry.OccupancySnapshot) error {
	result := r.db.Create(newStoredOccupancySnapshot(snapshot))
	return result.Error
}

// GetSnapshots returns up to limit buffered snapshots. When fresh is true only
// snapshots that have never failed an upload are returned, otherwise only
// those that have failed at least once.
func (r *Repository) GetSnapshots(limit int, fresh bool) ([]StoredOccupancySnapshot, error) {
	var snapshots []StoredOccupancySnapshot

	query := r.db.Limit(limit).Order("upload_attempt_count asc, time desc")
	if fresh {
		query = query.Where("upload_attempt_count = ?", 0)
	} else {
		query = query.Where("upload_attempt_count > ?", 0)
	}
	result := query.Find(&snapshots)
	if result.Error != nil {
		return nil, result.Error
	}
	return snapshots, nil
}

func (r *Repository) DeleteSnapshots(snapshots []StoredOccupancySnapshot) error {
	result := r.db.Delete(&snapshots)
	return result.Error
}

func (r *Repository) IncrementUploadAttemptCount(snapshots []StoredOccupancySnapshot) error {
	result := r.db.Model(&snapshots).UpdateColumn("upload_attempt_count", gorm.Expr("upload_attempt_count + ?", 1))
	return result.Error
}
