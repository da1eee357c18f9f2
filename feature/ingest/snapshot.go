package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cmdb/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archiver snapshots the payload fetched from each source to object
// storage, keyed by run, so a questionable merge can be replayed against
// the exact inputs later.
type Archiver struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	now    func() time.Time
}

// NewArchiver creates a snapshot archiver writing into bucket.
func NewArchiver(client storage.Client, bucket string, logger *zap.Logger) *Archiver {
	return &Archiver{client: client, bucket: bucket, logger: logger, now: time.Now}
}

// Archive uploads one object per source under ingest/snapshots/{date}/.
// Snapshots share the audit recorder's best-effort contract: failures are
// logged and swallowed, never escalated into the run's status.
func (a *Archiver) Archive(ctx context.Context, runID string, sources []Source, batches [][]RawRecord) {
	for i, src := range sources {
		if i >= len(batches) {
			return
		}

		payload, err := json.Marshal(batches[i])
		if err != nil {
			a.logger.Warn("failed to serialize snapshot", zap.String("source", src.Label), zap.Error(err))
			continue
		}

		objectName := fmt.Sprintf("ingest/snapshots/%s/%s-%s.json", a.now().Format("2006-01-02"), runID, src.Label)
		_, err = a.client.PutObject(ctx, a.bucket, objectName,
			bytes.NewReader(payload), int64(len(payload)),
			minio.PutObjectOptions{ContentType: "application/json"})
		if err != nil {
			a.logger.Warn("failed to archive snapshot",
				zap.String("source", src.Label),
				zap.String("object", objectName),
				zap.Error(err),
			)
			continue
		}

		a.logger.Debug("archived source snapshot",
			zap.String("source", src.Label),
			zap.String("object", objectName),
		)
	}
}
