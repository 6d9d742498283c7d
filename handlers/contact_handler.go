package handlers

import (
	"log"

	"github.com/Rdx99999/bhumi-backend/database"
	"github.com/Rdx99999/bhumi-backend/models"
	"github.com/Rdx99999/bhumi-backend/notifications"
	"github.com/gofiber/fiber/v2"
)

type ContactRequest struct {
	Name    string  `json:"name" validate:"required,min=2"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone"`
	Subject string  `json:"subject" validate:"required"`
	Message string  `json:"message" validate:"required"`
}

type ContactUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending contacted resolved archived"`
}

// SubmitContact persists the submission and fires the Telegram alert in the
// background. The alert outcome never affects the response; a failed send
// leaves Notified false for the retry job.
func SubmitContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactStatusPending,
	}
	if err := database.DB.Create(&contact).Error; err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Failed to save contact submission")
	}

	go notifyContact(contact)

	return JSONSuccess(c, fiber.StatusCreated, contact)
}

func notifyContact(contact models.Contact) {
	if err := notifications.SendContactAlert(contact); err != nil {
		log.Printf("🔥 Failed to send contact alert for submission %d: %v", contact.ID, err)
		return
	}
	if err := database.DB.Model(&models.Contact{}).Where("id = ?", contact.ID).
		Update("notified", true).Error; err != nil {
		log.Printf("🔥 Failed to mark contact %d as notified: %v", contact.ID, err)
	}
}

func ListContacts(c *fiber.Ctx) error {
	var contacts []models.Contact
	if err := database.DB.Order("created_at desc").Find(&contacts).Error; err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Database error")
	}
	return JSONSuccess(c, fiber.StatusOK, contacts)
}

func GetContact(c *fiber.Ctx) error {
	var contact models.Contact
	if err := database.DB.First(&contact, "id = ?", c.Params("id")).Error; err != nil {
		return JSONError(c, fiber.StatusNotFound, "Contact not found")
	}
	return JSONSuccess(c, fiber.StatusOK, contact)
}

func UpdateContact(c *fiber.Ctx) error {
	var contact models.Contact
	if err := database.DB.First(&contact, "id = ?", c.Params("id")).Error; err != nil {
		return JSONError(c, fiber.StatusNotFound, "Contact not found")
	}

	var req ContactUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	contact.Status = req.Status
	if err := database.DB.Save(&contact).Error; err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Failed to update contact")
	}
	return JSONSuccess(c, fiber.StatusOK, contact)
}

func DeleteContact(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.Contact{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Failed to delete contact")
	}
	if result.RowsAffected == 0 {
		return JSONError(c, fiber.StatusNotFound, "Contact not found")
	}
	return JSONSuccess(c, fiber.StatusOK, fiber.Map{"message": "Contact deleted successfully"})
}
