package ingest

import (
	"context"
	"encoding/json"

	"cmdb/feature/device/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run statuses recorded in the audit trail.
const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// defaultReason annotates successful runs, which carry no failure message.
const defaultReason = "Automated ingest from external systems"

// Recorder appends one audit row per run. It writes outside the
// reconciliation transaction so a rolled-back run still leaves a durable
// FAILED record.
type Recorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecorder creates an audit recorder bound to the canonical store.
func NewRecorder(db *gorm.DB, logger *zap.Logger) *Recorder {
	return &Recorder{db: db, logger: logger}
}

// Record persists the outcome of one run. Auditability is best-effort: a
// failed audit write is logged and swallowed so it can never mask the
// primary run's status.
func (r *Recorder) Record(ctx context.Context, stats Stats, status, reason string) {
	if reason == "" {
		reason = defaultReason
	}
	// Reason column is 255 chars; fetch errors can carry long URL chains.
	if len(reason) > 255 {
		reason = reason[:255]
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		r.logger.Warn("failed to serialize run stats", zap.Error(err))
		payload = []byte("{}")
	}

	run := models.IngestRun{
		Status: status,
		Stats:  string(payload),
		Reason: reason,
	}
	if err := r.db.WithContext(ctx).Create(&run).Error; err != nil {
		r.logger.Warn("failed to record ingest run", zap.Error(err), zap.String("status", status))
	}
}
