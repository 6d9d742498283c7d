package handlers

import (
	"github.com/Rdx99999/bhumi-backend/services"
	"github.com/gofiber/fiber/v2"
)

func GetSitemap(c *fiber.Ctx) error {
	body, err := services.Sitemap.XML()
	if err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Failed to build sitemap")
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	return c.Send(body)
}
