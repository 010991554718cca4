package middleware

import (
	"strings"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the JWT and loads the acting user into the context.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		// Role selalu diambil dari DB, bukan dari token: perubahan role oleh
		// admin langsung berlaku tanpa menunggu token expire.
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}

		c.Locals("actor", user)
		return c.Next()
	}
}

// Actor returns the authenticated user set by RequireAuth.
func Actor(c *fiber.Ctx) *model.User {
	if user, ok := c.Locals("actor").(*model.User); ok {
		return user
	}
	return nil
}

// RequirePermission checks the acting user's role against the access policy.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := Actor(c)
		if actor == nil {
			return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
		}
		if !model.RoleHasPermission(actor.Role, permission) {
			return c.Status(403).JSON(fiber.Map{
				"error": "Forbidden: requires '" + permission + "' permission",
			})
		}
		return c.Next()
	}
}
