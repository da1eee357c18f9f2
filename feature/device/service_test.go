package device

import (
	"context"
	"testing"

	"cmdb/feature/device/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func deviceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "serial_number", "type", "status", "environment", "owner", "location"})
}

func TestService_List(t *testing.T) {
	t.Run("NoFilter", func(t *testing.T) {
		db, mock := setupMockDB(t)
		svc := NewService(db, zap.NewNop())

		rows := deviceRows().
			AddRow(1, "Core Switch 01", "Y1", "switch", "Active", "Production", "netops", "DC A").
			AddRow(2, "Web Server 01", "X1", "server", "Active", "Production", "sysops", "DC A")
		mock.ExpectQuery("SELECT \\* FROM `devices`").WillReturnRows(rows)

		devices, err := svc.List(context.Background(), ListFilter{})
		assert.NoError(t, err)
		assert.Len(t, devices, 2)
		assert.Equal(t, "Y1", devices[0].SerialNumber)
	})

	t.Run("WithFilters", func(t *testing.T) {
		db, mock := setupMockDB(t)
		svc := NewService(db, zap.NewNop())

		mock.ExpectQuery("SELECT \\* FROM `devices` WHERE type = \\? AND status = \\?").
			WithArgs("server", "Active").
			WillReturnRows(deviceRows().AddRow(2, "Web Server 01", "X1", "server", "Active", "Production", "sysops", "DC A"))

		devices, err := svc.List(context.Background(), ListFilter{Type: "server", Status: "Active"})
		assert.NoError(t, err)
		assert.Len(t, devices, 1)
	})
}

func TestService_Get(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		svc := NewService(db, zap.NewNop())

		mock.ExpectQuery("SELECT \\* FROM `devices` WHERE `devices`.`id` = \\?").
			WillReturnRows(deviceRows().AddRow(1, "Web Server 01", "X1", "server", "Active", "Production", "sysops", "DC A"))

		device, err := svc.Get(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "X1", device.SerialNumber)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := setupMockDB(t)
		svc := NewService(db, zap.NewNop())

		mock.ExpectQuery("SELECT \\* FROM `devices`").
			WillReturnRows(deviceRows())

		_, err := svc.Get(context.Background(), 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Create(t *testing.T) {
	t.Run("RequiresSerial", func(t *testing.T) {
		db, _ := setupMockDB(t)
		svc := NewService(db, zap.NewNop())

		err := svc.Create(context.Background(), &models.Device{Name: "No Serial"})
		assert.Error(t, err)
	})

	t.Run("Inserts", func(t *testing.T) {
		db, mock := setupMockDB(t)
		svc := NewService(db, zap.NewNop())

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `devices`").WillReturnResult(sqlmock.NewResult(7, 1))
		mock.ExpectCommit()

		device := &models.Device{SerialNumber: "X9", Name: "New Box"}
		err := svc.Create(context.Background(), device)
		assert.NoError(t, err)
		assert.Equal(t, uint(7), device.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestService_Update(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		db, mock := setupMockDB(t)
		svc := NewService(db, zap.NewNop())

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `devices` SET").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := svc.Update(context.Background(), 42, &models.Device{Name: "Renamed"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Updates", func(t *testing.T) {
		db, mock := setupMockDB(t)
		svc := NewService(db, zap.NewNop())

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `devices` SET").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := svc.Update(context.Background(), 1, &models.Device{Name: "Renamed"})
		assert.NoError(t, err)
	})
}

func TestService_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `devices`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.Delete(context.Background(), 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ListIngestRuns(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	rows := sqlmock.NewRows([]string{"id", "status", "stats", "reason"}).
		AddRow(2, "SUCCESS", `{"inserted":1,"updated":0,"errors":0}`, "Automated ingest from external systems").
		AddRow(1, "FAILED", `{"inserted":0,"updated":0,"errors":1}`, "fetch from ExternalSystem1 failed: timeout")
	mock.ExpectQuery("SELECT \\* FROM `ingest_runs` ORDER BY id DESC").
		WillReturnRows(rows)

	runs, err := svc.ListIngestRuns(context.Background(), 0)
	assert.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.Equal(t, "SUCCESS", runs[0].Status)
}
