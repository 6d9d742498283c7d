package middleware

import (
	"crypto/subtle"

	config "github.com/Rdx99999/bhumi-backend/configs"
	"github.com/gofiber/fiber/v2"
)

// APICodeRequired gates mutating and admin endpoints behind the pre-shared
// X-API-Code header. The compare is constant time.
func APICodeRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Get("X-API-Code")
		if code == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"success": false, "error": "Missing API code"})
		}

		expected := config.AppConfig.APICode
		if expected == "" || subtle.ConstantTimeCompare([]byte(code), []byte(expected)) != 1 {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"success": false, "error": "Invalid API code"})
		}
		return c.Next()
	}
}
