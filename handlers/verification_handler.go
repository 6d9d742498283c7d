package handlers

import (
	"errors"

	"github.com/Rdx99999/bhumi-backend/database"
	"github.com/Rdx99999/bhumi-backend/services"
	"github.com/gofiber/fiber/v2"
)

type VerifyCertificateRequest struct {
	CertificateID   string `json:"certificateId" validate:"required"`
	ParticipantName string `json:"participantName" validate:"required"`
}

type CheckStatusRequest struct {
	ParticipantID string `json:"participantId"`
	Email         string `json:"email" validate:"omitempty,email"`
}

func VerifyCertificate(c *fiber.Ctx) error {
	var req VerifyCertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	svc := services.NewVerificationService(database.DB)
	result, err := svc.VerifyCertificate(req.CertificateID, req.ParticipantName)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return JSONError(c, fiber.StatusNotFound, "Certificate could not be verified")
		}
		return JSONError(c, fiber.StatusInternalServerError, "Database error")
	}
	return JSONSuccess(c, fiber.StatusOK, result)
}

func CheckParticipantStatus(c *fiber.Ctx) error {
	var req CheckStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	svc := services.NewVerificationService(database.DB)
	result, err := svc.CheckParticipantStatus(req.ParticipantID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingLookup):
			return JSONError(c, fiber.StatusBadRequest, "participantId or email is required")
		case errors.Is(err, services.ErrNotFound):
			return JSONError(c, fiber.StatusNotFound, "No matching participant found")
		default:
			return JSONError(c, fiber.StatusInternalServerError, "Database error")
		}
	}
	return JSONSuccess(c, fiber.StatusOK, result)
}
