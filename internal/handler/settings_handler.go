package handler

import (
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns the pricing settings singleton
// GET /api/v1/settings
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settingsService.Get(actor(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(settings)
}

// SaveSettings replaces the pricing settings. Produk lama tidak dihitung ulang.
// PUT /api/v1/settings
func (h *SettingsHandler) SaveSettings(c *fiber.Ctx) error {
	var settings model.GlobalSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.settingsService.Save(actor(c), &settings); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Settings saved", "data": settings})
}
