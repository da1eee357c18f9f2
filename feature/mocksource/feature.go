package mocksource

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Feature serves one stub external system profile. It implements the
// loader.Feature interface.
type Feature struct {
	profile string
}

// NewFeature creates a stub source for the given profile
// (extsys1 or extsys2).
func NewFeature(profile string) (*Feature, error) {
	switch profile {
	case ProfileExtsys1, ProfileExtsys2:
		return &Feature{profile: profile}, nil
	default:
		return nil, fmt.Errorf("unknown mock source profile %q", profile)
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "mocksource-" + f.profile
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the stub source routes.
func (f *Feature) Load(app fiber.Router) error {
	app.Get("/health", f.handleHealth)
	app.Get("/devices", f.handleDevices)
	return nil
}

func (f *Feature) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"service":   f.profile,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}

// handleDevices lists the profile's devices. The two profiles answer in
// different shapes on purpose: extsys1 returns a bare array, extsys2 wraps
// the list in a data envelope, matching the real systems they stand in for.
func (f *Feature) handleDevices(c *fiber.Ctx) error {
	if f.profile == ProfileExtsys1 {
		return c.JSON(extsys1Devices)
	}
	return c.JSON(fiber.Map{
		"data":   extsys2Devices,
		"total":  len(extsys2Devices),
		"source": f.profile,
	})
}
