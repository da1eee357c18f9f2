package mocksource

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestNewFeature_RejectsUnknownProfile(t *testing.T) {
	_, err := NewFeature("extsys9")
	assert.Error(t, err)
}

func TestFeature_Extsys1ReturnsBareArray(t *testing.T) {
	feature, err := NewFeature(ProfileExtsys1)
	assert.NoError(t, err)

	app := fiber.New()
	assert.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/devices", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var devices []map[string]any
	assert.NoError(t, json.Unmarshal(body, &devices))
	assert.Len(t, devices, 3)
	assert.Equal(t, "SRV-2020-001", devices[0]["serialNumber"])
}

func TestFeature_Extsys2ReturnsEnvelope(t *testing.T) {
	feature, err := NewFeature(ProfileExtsys2)
	assert.NoError(t, err)

	app := fiber.New()
	assert.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/devices", nil))
	assert.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Data   []map[string]any `json:"data"`
		Total  int              `json:"total"`
		Source string           `json:"source"`
	}
	assert.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, 3, payload.Total)
	assert.Equal(t, ProfileExtsys2, payload.Source)
	assert.Equal(t, "SW-2019-010", payload.Data[0]["SerialNumber"])
}

func TestFeature_Health(t *testing.T) {
	feature, _ := NewFeature(ProfileExtsys1)
	app := fiber.New()
	assert.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
