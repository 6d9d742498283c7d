package handlers

import (
	"fmt"
	"strconv"

	"github.com/Rdx99999/bhumi-backend/database"
	"github.com/Rdx99999/bhumi-backend/models"
	"github.com/Rdx99999/bhumi-backend/utils"
	"github.com/gofiber/fiber/v2"
)

type ProgramRequest struct {
	Title        string  `json:"title" validate:"required,min=2"`
	Slug         string  `json:"slug"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Duration     string  `json:"duration"`
	Price        float64 `json:"price" validate:"gte=0"`
	OnlinePrice  float64 `json:"onlinePrice" validate:"gte=0"`
	OfflinePrice float64 `json:"offlinePrice" validate:"gte=0"`
	DeliveryMode string  `json:"deliveryMode" validate:"omitempty,oneof=online offline both"`
	ImageURL     *string `json:"imageUrl"`
}

type ProgramUpdateRequest struct {
	Title        *string  `json:"title" validate:"omitempty,min=2"`
	Slug         *string  `json:"slug"`
	Description  *string  `json:"description"`
	Category     *string  `json:"category"`
	Duration     *string  `json:"duration"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	OnlinePrice  *float64 `json:"onlinePrice" validate:"omitempty,gte=0"`
	OfflinePrice *float64 `json:"offlinePrice" validate:"omitempty,gte=0"`
	DeliveryMode *string  `json:"deliveryMode" validate:"omitempty,oneof=online offline both"`
	ImageURL     *string  `json:"imageUrl"`
}

func ListPrograms(c *fiber.Ctx) error {
	var programs []models.TrainingProgram
	if err := database.DB.Find(&programs).Error; err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Database error")
	}
	return JSONSuccess(c, fiber.StatusOK, programs)
}

// GetProgram resolves :idOrSlug as a numeric ID first, then as a slug.
func GetProgram(c *fiber.Ctx) error {
	idOrSlug := c.Params("idOrSlug")

	var program models.TrainingProgram
	var err error
	if id, convErr := strconv.Atoi(idOrSlug); convErr == nil {
		err = database.DB.First(&program, "id = ?", id).Error
	} else {
		err = database.DB.First(&program, "slug = ?", idOrSlug).Error
	}
	if err != nil {
		return JSONError(c, fiber.StatusNotFound, "Training program not found")
	}
	return JSONSuccess(c, fiber.StatusOK, program)
}

func CreateProgram(c *fiber.Ctx) error {
	var req ProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	slugSource := req.Title
	if req.Slug != "" {
		slugSource = req.Slug
	}
	slug, err := utils.UniqueProgramSlug(database.DB, slugSource, 0)
	if err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Failed to derive slug")
	}

	deliveryMode := req.DeliveryMode
	if deliveryMode == "" {
		deliveryMode = models.DeliveryModeBoth
	}

	program := models.TrainingProgram{
		Slug:         slug,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Duration:     req.Duration,
		Price:        req.Price,
		OnlinePrice:  req.OnlinePrice,
		OfflinePrice: req.OfflinePrice,
		DeliveryMode: deliveryMode,
		ImageURL:     req.ImageURL,
	}
	if err := database.DB.Create(&program).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return JSONError(c, fiber.StatusBadRequest, "A program with this slug already exists")
		}
		return JSONError(c, fiber.StatusInternalServerError, "Failed to create training program")
	}
	return JSONSuccess(c, fiber.StatusCreated, program)
}

func UpdateProgram(c *fiber.Ctx) error {
	var program models.TrainingProgram
	if err := database.DB.First(&program, "id = ?", c.Params("id")).Error; err != nil {
		return JSONError(c, fiber.StatusNotFound, "Training program not found")
	}

	var req ProgramUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.Title != nil {
		program.Title = *req.Title
	}
	if req.Slug != nil {
		slug, err := utils.UniqueProgramSlug(database.DB, *req.Slug, program.ID)
		if err != nil {
			return JSONError(c, fiber.StatusInternalServerError, "Failed to derive slug")
		}
		program.Slug = slug
	}
	if req.Description != nil {
		program.Description = *req.Description
	}
	if req.Category != nil {
		program.Category = *req.Category
	}
	if req.Duration != nil {
		program.Duration = *req.Duration
	}
	if req.Price != nil {
		program.Price = *req.Price
	}
	if req.OnlinePrice != nil {
		program.OnlinePrice = *req.OnlinePrice
	}
	if req.OfflinePrice != nil {
		program.OfflinePrice = *req.OfflinePrice
	}
	if req.DeliveryMode != nil {
		program.DeliveryMode = *req.DeliveryMode
	}
	if req.ImageURL != nil {
		program.ImageURL = req.ImageURL
	}

	if err := database.DB.Save(&program).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return JSONError(c, fiber.StatusBadRequest, "A program with this slug already exists")
		}
		return JSONError(c, fiber.StatusInternalServerError, "Failed to update training program")
	}
	return JSONSuccess(c, fiber.StatusOK, program)
}

// DeleteProgram refuses to delete a program that still has enrolled
// participants and reports how many block the delete.
func DeleteProgram(c *fiber.Ctx) error {
	var program models.TrainingProgram
	if err := database.DB.First(&program, "id = ?", c.Params("id")).Error; err != nil {
		return JSONError(c, fiber.StatusNotFound, "Training program not found")
	}

	var enrolled int64
	if err := database.DB.Model(&models.Participant{}).
		Where("training_program_id = ?", program.ID).Count(&enrolled).Error; err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Database error")
	}
	if enrolled > 0 {
		return JSONError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Cannot delete training program: %d participant(s) are enrolled", enrolled))
	}

	if err := database.DB.Delete(&program).Error; err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Failed to delete training program")
	}
	return JSONSuccess(c, fiber.StatusOK, fiber.Map{"message": "Training program deleted successfully"})
}
