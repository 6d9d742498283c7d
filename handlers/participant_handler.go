package handlers

import (
	"fmt"
	"time"

	"github.com/Rdx99999/bhumi-backend/database"
	"github.com/Rdx99999/bhumi-backend/models"
	"github.com/Rdx99999/bhumi-backend/utils"
	"github.com/gofiber/fiber/v2"
)

type ParticipantRequest struct {
	ParticipantID     string  `json:"participantId"`
	FullName          string  `json:"fullName" validate:"required,min=2"`
	Email             string  `json:"email" validate:"required,email"`
	Phone             *string `json:"phone"`
	TrainingProgramID uint    `json:"trainingProgramId" validate:"required"`
	EnrollmentDate    string  `json:"enrollmentDate"`
	Status            string  `json:"status" validate:"omitempty,oneof=active completed paused withdrawn"`
}

type ParticipantUpdateRequest struct {
	FullName          *string `json:"fullName" validate:"omitempty,min=2"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Phone             *string `json:"phone"`
	TrainingProgramID *uint   `json:"trainingProgramId"`
	EnrollmentDate    *string `json:"enrollmentDate"`
	Status            *string `json:"status" validate:"omitempty,oneof=active completed paused withdrawn"`
}

func ListParticipants(c *fiber.Ctx) error {
	var participants []models.Participant
	if err := database.DB.Preload("TrainingProgram").Find(&participants).Error; err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Database error")
	}
	return JSONSuccess(c, fiber.StatusOK, participants)
}

func GetParticipant(c *fiber.Ctx) error {
	var participant models.Participant
	if err := database.DB.Preload("TrainingProgram").
		First(&participant, "id = ?", c.Params("id")).Error; err != nil {
		return JSONError(c, fiber.StatusNotFound, "Participant not found")
	}
	return JSONSuccess(c, fiber.StatusOK, participant)
}

func CreateParticipant(c *fiber.Ctx) error {
	var req ParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	var program models.TrainingProgram
	if err := database.DB.First(&program, "id = ?", req.TrainingProgramID).Error; err != nil {
		return JSONError(c, fiber.StatusBadRequest, "Referenced training program does not exist")
	}

	participantID := req.ParticipantID
	if participantID == "" {
		var err error
		participantID, err = utils.GenerateParticipantID(database.DB)
		if err != nil {
			return JSONError(c, fiber.StatusInternalServerError, "Failed to generate participant ID")
		}
	}

	enrollmentDate := time.Now()
	if req.EnrollmentDate != "" {
		parsed, err := parseDate(req.EnrollmentDate)
		if err != nil {
			return JSONError(c, fiber.StatusBadRequest, "enrollmentDate must be YYYY-MM-DD")
		}
		enrollmentDate = parsed
	}

	status := req.Status
	if status == "" {
		status = models.ParticipantStatusActive
	}

	participant := models.Participant{
		ParticipantID:     participantID,
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		TrainingProgramID: req.TrainingProgramID,
		EnrollmentDate:    enrollmentDate,
		Status:            status,
	}
	if err := database.DB.Create(&participant).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return JSONError(c, fiber.StatusBadRequest, "A participant with this ID already exists")
		}
		return JSONError(c, fiber.StatusInternalServerError, "Failed to create participant")
	}
	return JSONSuccess(c, fiber.StatusCreated, participant)
}

func UpdateParticipant(c *fiber.Ctx) error {
	var participant models.Participant
	if err := database.DB.First(&participant, "id = ?", c.Params("id")).Error; err != nil {
		return JSONError(c, fiber.StatusNotFound, "Participant not found")
	}

	var req ParticipantUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.FullName != nil {
		participant.FullName = *req.FullName
	}
	if req.Email != nil {
		participant.Email = *req.Email
	}
	if req.Phone != nil {
		participant.Phone = req.Phone
	}
	if req.TrainingProgramID != nil {
		var program models.TrainingProgram
		if err := database.DB.First(&program, "id = ?", *req.TrainingProgramID).Error; err != nil {
			return JSONError(c, fiber.StatusBadRequest, "Referenced training program does not exist")
		}
		participant.TrainingProgramID = *req.TrainingProgramID
	}
	if req.EnrollmentDate != nil {
		parsed, err := parseDate(*req.EnrollmentDate)
		if err != nil {
			return JSONError(c, fiber.StatusBadRequest, "enrollmentDate must be YYYY-MM-DD")
		}
		participant.EnrollmentDate = parsed
	}
	if req.Status != nil {
		participant.Status = *req.Status
	}

	if err := database.DB.Save(&participant).Error; err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Failed to update participant")
	}
	return JSONSuccess(c, fiber.StatusOK, participant)
}

// DeleteParticipant refuses to delete a participant who still has issued
// certificates and reports how many block the delete.
func DeleteParticipant(c *fiber.Ctx) error {
	var participant models.Participant
	if err := database.DB.First(&participant, "id = ?", c.Params("id")).Error; err != nil {
		return JSONError(c, fiber.StatusNotFound, "Participant not found")
	}

	var issued int64
	if err := database.DB.Model(&models.Certificate{}).
		Where("participant_id = ?", participant.ID).Count(&issued).Error; err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Database error")
	}
	if issued > 0 {
		return JSONError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Cannot delete participant: %d certificate(s) reference them", issued))
	}

	if err := database.DB.Delete(&participant).Error; err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Failed to delete participant")
	}
	return JSONSuccess(c, fiber.StatusOK, fiber.Map{"message": "Participant deleted successfully"})
}
