package device

import (
	"errors"
	"time"

	"cmdb/core/logger"
	"cmdb/feature/device/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the device inventory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the device routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)

	group := app.Group("/devices")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)

	app.Get("/ingest-runs", h.HandleListIngestRuns)
}

// HandleHealth reports service and store health.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	status := "ok"
	code := fiber.StatusOK
	if err := h.service.Ping(c.Context()); err != nil {
		status = "degraded"
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status":    status,
		"service":   "cmdb",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleList lists devices with optional type/status/environment/search filters.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	filter := ListFilter{
		Type:        c.Query("type"),
		Status:      c.Query("status"),
		Environment: c.Query("environment"),
		Search:      c.Query("search"),
	}

	devices, err := h.service.List(c.Context(), filter)
	if err != nil {
		l.Error("failed to list devices", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list devices"})
	}

	return c.JSON(fiber.Map{
		"data":  devices,
		"total": len(devices),
	})
}

// HandleGet returns a single device by id.
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid device id"})
	}

	device, err := h.service.Get(c.Context(), uint(id))
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "device not found"})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("failed to load device", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load device"})
	}
	return c.JSON(fiber.Map{"data": device})
}

// HandleCreate registers a device manually.
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var device models.Device
	if err := c.BodyParser(&device); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.Create(c.Context(), &device); err != nil {
		l.Error("failed to create device", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": device})
}

// HandleUpdate overwrites a device's mutable fields.
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid device id"})
	}

	var device models.Device
	if err := c.BodyParser(&device); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	err = h.service.Update(c.Context(), uint(id), &device)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "device not found"})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("failed to update device", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update device"})
	}
	return c.JSON(fiber.Map{"status": "updated"})
}

// HandleDelete removes a device.
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid device id"})
	}

	err = h.service.Delete(c.Context(), uint(id))
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "device not found"})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("failed to delete device", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete device"})
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

// HandleListIngestRuns exposes the reconciliation audit trail.
func (h *Handler) HandleListIngestRuns(c *fiber.Ctx) error {
	runs, err := h.service.ListIngestRuns(c.Context(), c.QueryInt("limit"))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("failed to list ingest runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list ingest runs"})
	}
	return c.JSON(fiber.Map{
		"data":  runs,
		"total": len(runs),
	})
}
