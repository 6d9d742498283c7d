package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Every JSON endpoint shares the {success, data?, error?} envelope.

func JSONSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.Status(statusCode).JSON(fiber.Map{"success": true})
	}
	return c.Status(statusCode).JSON(fiber.Map{"success": true, "data": data})
}

func JSONError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{"success": false, "error": message})
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
