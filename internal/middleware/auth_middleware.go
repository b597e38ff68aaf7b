package middleware

import (
	"strings"

	"go-stock-ledger/internal/model"
	"go-stock-ledger/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

// RequireAuth is middleware that validates the bearer token and stores the
// caller's identity in the request context
func RequireAuth(tokens *jwt.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals(identityKey, model.Identity{UserID: claims.UserID, Username: claims.Username})
		return c.Next()
	}
}

// Identity returns the caller set by RequireAuth, or the zero Identity
func Identity(c *fiber.Ctx) model.Identity {
	if id, ok := c.Locals(identityKey).(model.Identity); ok {
		return id
	}
	return model.Identity{}
}
