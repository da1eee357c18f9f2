package ingest

import (
	"errors"
	"fmt"
	"time"

	"cmdb/core/utils"
	"cmdb/feature/device/models"
)

// ErrNoSerialNumber marks a record that cannot be keyed into the canonical
// store. Such records are dropped and counted, never fatal.
var ErrNoSerialNumber = errors.New("record has no usable serial number")

// Normalize maps a raw source record onto the canonical device schema.
// Each attribute is resolved through an ordered list of candidate keys
// (lowerCamel, PascalCase, then legacy aliases); absent business data is
// masked by documented defaults because the upstream sources are not fully
// reliable and the canonical store must remain insertable. The only
// rejection is a missing serial number.
func Normalize(raw RawRecord, sourceLabel string) (models.Device, error) {
	serial := stringField(raw, "", "serialNumber", "SerialNumber", "serial")
	if serial == "" {
		return models.Device{}, ErrNoSerialNumber
	}

	return models.Device{
		SerialNumber: serial,
		Name:         stringField(raw, "Unknown", "name", "Name"),
		Type:         stringField(raw, "Unknown", "type", "Type"),
		Status:       stringField(raw, "Active", "status", "Status"),
		Environment:  stringField(raw, "Production", "environment", "Environment"),
		Owner:        stringField(raw, sourceLabel, "owner", "Owner"),
		Location:     stringField(raw, "Unknown", "location", "Location"),

		MaintenanceStart: dateField(raw, "maintenanceStart", "MaintenanceStart", "maStartDate", "MaStartDate"),
		MaintenanceEnd:   dateField(raw, "maintenanceEnd", "MaintenanceEnd", "maEndDate", "MaEndDate"),
		MaintenanceCost:  floatField(raw, "maintenanceCost", "MaintenanceCost", "maCost", "MaCost"),

		PurchaseDate: dateField(raw, "purchaseDate", "PurchaseDate"),
		PurchaseCost: floatField(raw, "purchaseCost", "PurchaseCost"),

		Vendor:      stringField(raw, "Unknown", "vendor", "Vendor"),
		Model:       stringField(raw, "Unknown", "model", "Model"),
		Description: stringField(raw, fmt.Sprintf("Imported from %s", sourceLabel), "description", "Description"),
	}, nil
}

// lookup returns the first present candidate key's value.
func lookup(raw RawRecord, keys ...string) (any, bool) {
	for _, key := range keys {
		if val, ok := raw[key]; ok && val != nil {
			return val, true
		}
	}
	return nil, false
}

// stringField resolves a string attribute. An empty string counts as
// absent, matching how the sources report unknown fields.
func stringField(raw RawRecord, def string, keys ...string) string {
	if val, ok := lookup(raw, keys...); ok {
		if s := utils.ToString(val); s != "" {
			return s
		}
	}
	return def
}

// floatField resolves a cost attribute; absent or non-numeric values
// become 0.
func floatField(raw RawRecord, keys ...string) float64 {
	if val, ok := lookup(raw, keys...); ok {
		return utils.ToFloat64(val)
	}
	return 0
}

// dateField resolves an optional date attribute; unparseable values
// become nil.
func dateField(raw RawRecord, keys ...string) *time.Time {
	if val, ok := lookup(raw, keys...); ok {
		return utils.ToTime(val)
	}
	return nil
}
