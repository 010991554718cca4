package handler

import (
	"errors"

	"go-catalog-api/internal/middleware"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// actor mengambil user hasil RequireAuth; di route terproteksi tidak akan nil.
func actor(c *fiber.Ctx) *model.User {
	return middleware.Actor(c)
}

// parseUUID helper untuk path params
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// serviceError maps the error taxonomy to an HTTP response.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		return c.Status(403).JSON(fiber.Map{"error": "Forbidden"})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}
