package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Defaults(t *testing.T) {
	device, err := Normalize(RawRecord{"serialNumber": "X1"}, "ExternalSystem1")
	assert.NoError(t, err)

	assert.Equal(t, "X1", device.SerialNumber)
	assert.Equal(t, "Unknown", device.Name)
	assert.Equal(t, "Unknown", device.Type)
	assert.Equal(t, "Active", device.Status)
	assert.Equal(t, "Production", device.Environment)
	assert.Equal(t, "ExternalSystem1", device.Owner)
	assert.Equal(t, "Unknown", device.Location)
	assert.Equal(t, "Unknown", device.Vendor)
	assert.Equal(t, "Unknown", device.Model)
	assert.Equal(t, "Imported from ExternalSystem1", device.Description)
	assert.Equal(t, 0.0, device.MaintenanceCost)
	assert.Equal(t, 0.0, device.PurchaseCost)
	assert.Nil(t, device.MaintenanceStart)
	assert.Nil(t, device.PurchaseDate)
}

func TestNormalize_AliasResolution(t *testing.T) {
	t.Run("PascalCase", func(t *testing.T) {
		device, err := Normalize(RawRecord{
			"SerialNumber": "Y1",
			"Name":         "Core Switch",
			"Status":       "active",
			"Location":     "DC A - Rack 1",
		}, "ExternalSystem2")
		assert.NoError(t, err)
		assert.Equal(t, "Y1", device.SerialNumber)
		assert.Equal(t, "Core Switch", device.Name)
		assert.Equal(t, "active", device.Status)
		assert.Equal(t, "DC A - Rack 1", device.Location)
	})

	t.Run("LowerCamelWinsOverPascal", func(t *testing.T) {
		device, err := Normalize(RawRecord{
			"serialNumber": "lower",
			"SerialNumber": "pascal",
		}, "src")
		assert.NoError(t, err)
		assert.Equal(t, "lower", device.SerialNumber)
	})

	t.Run("LegacySerialAlias", func(t *testing.T) {
		device, err := Normalize(RawRecord{"serial": "Z9"}, "src")
		assert.NoError(t, err)
		assert.Equal(t, "Z9", device.SerialNumber)
	})

	t.Run("LegacyMaintenanceAliases", func(t *testing.T) {
		device, err := Normalize(RawRecord{
			"serialNumber": "X1",
			"maStartDate":  "2026-01-01",
			"MaEndDate":    "2026-12-31",
			"MaCost":       150.5,
		}, "src")
		assert.NoError(t, err)
		assert.NotNil(t, device.MaintenanceStart)
		assert.NotNil(t, device.MaintenanceEnd)
		assert.Equal(t, 150.5, device.MaintenanceCost)
	})
}

func TestNormalize_MissingSerialDropped(t *testing.T) {
	_, err := Normalize(RawRecord{"name": "No Serial"}, "src")
	assert.ErrorIs(t, err, ErrNoSerialNumber)

	// Empty string is as unusable as an absent key.
	_, err = Normalize(RawRecord{"serialNumber": ""}, "src")
	assert.ErrorIs(t, err, ErrNoSerialNumber)
}

func TestNormalize_LooseScalars(t *testing.T) {
	device, err := Normalize(RawRecord{
		"serialNumber": float64(123456), // sources sometimes send numeric serials
		"purchaseCost": "not a number",
		"purchaseDate": "15/01/2026", // unknown layout
	}, "src")
	assert.NoError(t, err)
	assert.Equal(t, "123456", device.SerialNumber)
	assert.Equal(t, 0.0, device.PurchaseCost)
	assert.Nil(t, device.PurchaseDate)
}
