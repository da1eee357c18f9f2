package ingest

import (
	"context"
	"fmt"
	"time"

	"cmdb/feature/device/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Stats are the aggregate counters of one reconciliation run.
type Stats struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Errors   int `json:"errors"`
}

// ReconciliationError wraps a storage failure during the transactional
// upsert phase. By the time it surfaces, the run's writes have been
// rolled back.
type ReconciliationError struct {
	// Serial is the natural key of the record whose write failed.
	Serial string
	// Err is the underlying storage error.
	Err error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("reconciliation failed at serial %s: %v", e.Serial, e.Err)
}

func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// Engine merges normalized records into the canonical device table.
type Engine struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewEngine creates a reconciliation engine bound to the canonical store.
func NewEngine(db *gorm.DB, logger *zap.Logger) *Engine {
	return &Engine{db: db, logger: logger, now: time.Now}
}

// Reconcile upserts each record, in input order, inside one transaction.
// The upsert is a single conditional statement keyed on the serial_number
// unique index (INSERT ... ON DUPLICATE KEY UPDATE on MySQL), so
// concurrent runs cannot race a separate existence check into a duplicate
// key failure. Classification follows the MySQL affected-rows convention:
// 1 row for an insert, 2 for an update. Every write stamps updated_at with
// the run time, so re-ingesting an unchanged snapshot still reports
// updates.
//
// Any record-level failure rolls back the entire run; a reconciliation run
// is a single unit of consistency against the canonical store.
func (e *Engine) Reconcile(ctx context.Context, devices []models.Device) (Stats, error) {
	var stats Stats

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := e.now()
		for i := range devices {
			record := devices[i]
			record.ID = 0
			record.UpdatedAt = now

			result := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "serial_number"}},
				DoUpdates: clause.AssignmentColumns(models.UpsertColumns),
			}).Create(&record)

			if result.Error != nil {
				return &ReconciliationError{Serial: record.SerialNumber, Err: result.Error}
			}

			if result.RowsAffected >= 2 {
				stats.Updated++
			} else {
				stats.Inserted++
			}
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}

	e.logger.Info("reconciliation committed",
		zap.Int("inserted", stats.Inserted),
		zap.Int("updated", stats.Updated),
	)
	return stats, nil
}
