package handlers

import (
	"github.com/Rdx99999/bhumi-backend/database"
	"github.com/Rdx99999/bhumi-backend/models"
	"github.com/gofiber/fiber/v2"
)

type ServiceRequest struct {
	Title       string   `json:"title" validate:"required,min=2"`
	Description string   `json:"description" validate:"required"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
}

type ServiceUpdateRequest struct {
	Title       *string   `json:"title" validate:"omitempty,min=2"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Features    *[]string `json:"features"`
}

func ListServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := database.DB.Find(&services).Error; err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Database error")
	}
	return JSONSuccess(c, fiber.StatusOK, services)
}

func GetService(c *fiber.Ctx) error {
	var service models.Service
	if err := database.DB.First(&service, "id = ?", c.Params("id")).Error; err != nil {
		return JSONError(c, fiber.StatusNotFound, "Service not found")
	}
	return JSONSuccess(c, fiber.StatusOK, service)
}

func CreateService(c *fiber.Ctx) error {
	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	service := models.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Features:    req.Features,
	}
	if err := database.DB.Create(&service).Error; err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Failed to create service")
	}
	return JSONSuccess(c, fiber.StatusCreated, service)
}

func UpdateService(c *fiber.Ctx) error {
	var service models.Service
	if err := database.DB.First(&service, "id = ?", c.Params("id")).Error; err != nil {
		return JSONError(c, fiber.StatusNotFound, "Service not found")
	}

	var req ServiceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.Title != nil {
		service.Title = *req.Title
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Icon != nil {
		service.Icon = *req.Icon
	}
	if req.Features != nil {
		service.Features = *req.Features
	}

	if err := database.DB.Save(&service).Error; err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Failed to update service")
	}
	return JSONSuccess(c, fiber.StatusOK, service)
}

func DeleteService(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.Service{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Failed to delete service")
	}
	if result.RowsAffected == 0 {
		return JSONError(c, fiber.StatusNotFound, "Service not found")
	}
	return JSONSuccess(c, fiber.StatusOK, fiber.Map{"message": "Service deleted successfully"})
}
