package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"cmdb/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestArchiver_Archive(t *testing.T) {
	sources := []Source{{Label: "ExternalSystem1"}, {Label: "ExternalSystem2"}}
	batches := [][]RawRecord{
		{{"serialNumber": "X1"}},
		{},
	}

	t.Run("UploadsOneObjectPerSource", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "cmdb", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil).Twice()

		archiver := NewArchiver(client, "cmdb", zap.NewNop())
		archiver.now = func() time.Time { return time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) }
		archiver.Archive(context.Background(), "run-1", sources, batches)

		client.AssertExpectations(t)
		object := client.Calls[0].Arguments.String(2)
		assert.Contains(t, object, "ingest/snapshots/2026-08-31/run-1-ExternalSystem1.json")
	})

	t.Run("UploadFailureIsSwallowed", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "cmdb", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("bucket missing")).Twice()

		archiver := NewArchiver(client, "cmdb", zap.NewNop())
		archiver.Archive(context.Background(), "run-2", sources, batches)

		client.AssertExpectations(t)
	})
}
