package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kvermeij/reversi/internal/config"
)

// TokenAuth middleware that checks the x-token header against the
// configured server token.
func TokenAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck

		token := c.Get("x-token")
		if token != "" && token == cfg.Token {
			return c.Next()
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}
}
