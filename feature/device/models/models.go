package models

import "time"

// Device is the canonical merged device record. Rows are keyed by the
// serial number, which is unique across all external sources.
type Device struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:255" json:"name"`
	SerialNumber string `gorm:"size:100;uniqueIndex" json:"serialNumber"`
	Type         string `gorm:"size:100" json:"type"`
	Status       string `gorm:"size:50" json:"status"`
	Environment  string `gorm:"size:50" json:"environment"`
	Owner        string `gorm:"size:255" json:"owner"`
	Location     string `gorm:"size:255" json:"location"`

	MaintenanceStart *time.Time `json:"maintenanceStart"`
	MaintenanceEnd   *time.Time `json:"maintenanceEnd"`
	MaintenanceCost  float64    `gorm:"type:decimal(10,2)" json:"maintenanceCost"`

	PurchaseDate *time.Time `json:"purchaseDate"`
	PurchaseCost float64    `gorm:"type:decimal(10,2)" json:"purchaseCost"`

	Vendor      string `gorm:"size:255" json:"vendor"`
	Model       string `gorm:"size:255" json:"model"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is assigned by the writer on every mutation rather than by
	// the ORM, so a reconciliation run stamps all its rows with one time.
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// UpsertColumns are the mutable Device columns overwritten when an
// incoming record matches an existing serial number.
var UpsertColumns = []string{
	"name", "type", "status", "environment", "owner", "location",
	"maintenance_start", "maintenance_end", "maintenance_cost",
	"purchase_date", "purchase_cost",
	"vendor", "model", "description", "updated_at",
}

// IngestRun is one immutable audit row per reconciliation run.
type IngestRun struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	// Status is SUCCESS or FAILED.
	Status string `gorm:"size:50" json:"status"`
	// Stats holds the run counters serialized as JSON.
	Stats string `gorm:"size:500" json:"stats"`
	// Reason is a human-readable explanation, populated with the failure
	// message when the run did not complete.
	Reason string `gorm:"size:255" json:"reason"`
}
