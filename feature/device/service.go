package device

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cmdb/feature/device/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound reports a lookup for a device id that does not exist.
var ErrNotFound = errors.New("device not found")

// ListFilter narrows a device listing. Empty fields match everything.
type ListFilter struct {
	Type        string
	Status      string
	Environment string
	// Search matches name or serial number as a substring.
	Search string
}

// Service handles device operations against the canonical store.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new device service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// List returns devices matching the filter, ordered by name.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]models.Device, error) {
	query := s.db.WithContext(ctx).Model(&models.Device{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Environment != "" {
		query = query.Where("environment = ?", filter.Environment)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR serial_number LIKE ?", pattern, pattern)
	}

	var devices []models.Device
	if err := query.Order("name").Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	return devices, nil
}

// Get returns one device by id.
func (s *Service) Get(ctx context.Context, id uint) (*models.Device, error) {
	var device models.Device
	err := s.db.WithContext(ctx).First(&device, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load device %d: %w", id, err)
	}
	return &device, nil
}

// Create inserts a manually registered device. The serial number is
// required; the unique index rejects duplicates.
func (s *Service) Create(ctx context.Context, device *models.Device) error {
	if device.SerialNumber == "" {
		return errors.New("serialNumber is required")
	}
	device.ID = 0
	device.UpdatedAt = time.Now()
	if err := s.db.WithContext(ctx).Create(device).Error; err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}
	return nil
}

// Update overwrites the mutable fields of an existing device.
func (s *Service) Update(ctx context.Context, id uint, device *models.Device) error {
	device.UpdatedAt = time.Now()
	result := s.db.WithContext(ctx).Model(&models.Device{}).
		Where("id = ?", id).
		Select(models.UpsertColumns).
		Updates(device)
	if result.Error != nil {
		return fmt.Errorf("failed to update device %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a device.
func (s *Service) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Device{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete device %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListIngestRuns returns the most recent reconciliation audit rows, newest
// first. Callers poll this to see each run's outcome and counters.
func (s *Service) ListIngestRuns(ctx context.Context, limit int) ([]models.IngestRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var runs []models.IngestRun
	err := s.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ingest runs: %w", err)
	}
	return runs, nil
}

// Ping verifies the store is reachable, for health reporting.
func (s *Service) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
