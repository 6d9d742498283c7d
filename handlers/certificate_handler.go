package handlers

import (
	"fmt"
	"time"

	"github.com/Rdx99999/bhumi-backend/database"
	"github.com/Rdx99999/bhumi-backend/models"
	"github.com/Rdx99999/bhumi-backend/services"
	"github.com/Rdx99999/bhumi-backend/utils"
	"github.com/gofiber/fiber/v2"
)

type CertificateRequest struct {
	CertificateID     string  `json:"certificateId"`
	ParticipantID     uint    `json:"participantId" validate:"required"`
	TrainingProgramID uint    `json:"trainingProgramId" validate:"required"`
	IssueDate         string  `json:"issueDate"`
	ExpiryDate        *string `json:"expiryDate"`
	CertificatePath   *string `json:"certificatePath"`
}

type CertificateUpdateRequest struct {
	IssueDate       *string `json:"issueDate"`
	ExpiryDate      *string `json:"expiryDate"`
	CertificatePath *string `json:"certificatePath"`
}

// certificateView decorates a certificate with its derived status for admin
// listings; the status is never persisted.
type certificateView struct {
	models.Certificate
	Status string `json:"status"`
}

func viewOf(cert models.Certificate) certificateView {
	return certificateView{Certificate: cert, Status: cert.DerivedStatus(time.Now())}
}

func ListCertificates(c *fiber.Ctx) error {
	var certs []models.Certificate
	if err := database.DB.Preload("Participant").Preload("TrainingProgram").
		Find(&certs).Error; err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Database error")
	}

	views := make([]certificateView, 0, len(certs))
	for _, cert := range certs {
		views = append(views, viewOf(cert))
	}
	return JSONSuccess(c, fiber.StatusOK, views)
}

func GetCertificate(c *fiber.Ctx) error {
	var cert models.Certificate
	if err := database.DB.Preload("Participant").Preload("TrainingProgram").
		First(&cert, "id = ?", c.Params("id")).Error; err != nil {
		return JSONError(c, fiber.StatusNotFound, "Certificate not found")
	}
	return JSONSuccess(c, fiber.StatusOK, viewOf(cert))
}

func CreateCertificate(c *fiber.Ctx) error {
	var req CertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	var participant models.Participant
	if err := database.DB.First(&participant, "id = ?", req.ParticipantID).Error; err != nil {
		return JSONError(c, fiber.StatusBadRequest, "Referenced participant does not exist")
	}
	var program models.TrainingProgram
	if err := database.DB.First(&program, "id = ?", req.TrainingProgramID).Error; err != nil {
		return JSONError(c, fiber.StatusBadRequest, "Referenced training program does not exist")
	}

	issueDate := time.Now()
	if req.IssueDate != "" {
		parsed, err := parseDate(req.IssueDate)
		if err != nil {
			return JSONError(c, fiber.StatusBadRequest, "issueDate must be YYYY-MM-DD")
		}
		issueDate = parsed
	}

	var expiryDate *time.Time
	if req.ExpiryDate != nil && *req.ExpiryDate != "" {
		parsed, err := parseDate(*req.ExpiryDate)
		if err != nil {
			return JSONError(c, fiber.StatusBadRequest, "expiryDate must be YYYY-MM-DD")
		}
		expiryDate = &parsed
	}

	certificateID := req.CertificateID
	if certificateID == "" {
		var err error
		certificateID, err = utils.GenerateCertificateID(database.DB, issueDate)
		if err != nil {
			return JSONError(c, fiber.StatusInternalServerError, "Failed to generate certificate ID")
		}
	}

	cert := models.Certificate{
		CertificateID:     certificateID,
		ParticipantID:     req.ParticipantID,
		TrainingProgramID: req.TrainingProgramID,
		IssueDate:         issueDate,
		ExpiryDate:        expiryDate,
		CertificatePath:   req.CertificatePath,
	}
	if err := database.DB.Create(&cert).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return JSONError(c, fiber.StatusBadRequest, "A certificate with this ID already exists")
		}
		return JSONError(c, fiber.StatusInternalServerError, "Failed to create certificate")
	}
	return JSONSuccess(c, fiber.StatusCreated, viewOf(cert))
}

func UpdateCertificate(c *fiber.Ctx) error {
	var cert models.Certificate
	if err := database.DB.First(&cert, "id = ?", c.Params("id")).Error; err != nil {
		return JSONError(c, fiber.StatusNotFound, "Certificate not found")
	}

	var req CertificateUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return JSONError(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if req.IssueDate != nil {
		parsed, err := parseDate(*req.IssueDate)
		if err != nil {
			return JSONError(c, fiber.StatusBadRequest, "issueDate must be YYYY-MM-DD")
		}
		cert.IssueDate = parsed
	}
	if req.ExpiryDate != nil {
		if *req.ExpiryDate == "" {
			cert.ExpiryDate = nil
		} else {
			parsed, err := parseDate(*req.ExpiryDate)
			if err != nil {
				return JSONError(c, fiber.StatusBadRequest, "expiryDate must be YYYY-MM-DD")
			}
			cert.ExpiryDate = &parsed
		}
	}
	if req.CertificatePath != nil {
		cert.CertificatePath = req.CertificatePath
	}

	if err := database.DB.Save(&cert).Error; err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Failed to update certificate")
	}
	return JSONSuccess(c, fiber.StatusOK, viewOf(cert))
}

func DeleteCertificate(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.Certificate{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Failed to delete certificate")
	}
	if result.RowsAffected == 0 {
		return JSONError(c, fiber.StatusNotFound, "Certificate not found")
	}
	return JSONSuccess(c, fiber.StatusOK, fiber.Map{"message": "Certificate deleted successfully"})
}

// DownloadCertificate is public: it resolves the external certificate ID to a
// download URL, synthesizing a path when no file has been generated yet.
func DownloadCertificate(c *fiber.Ctx) error {
	certificateID := c.Params("certificateId")

	var cert models.Certificate
	if err := database.DB.First(&cert, "certificate_id = ?", certificateID).Error; err != nil {
		return JSONError(c, fiber.StatusNotFound, "Certificate not found")
	}

	downloadURL := fmt.Sprintf("/certificates/%s.pdf", cert.CertificateID)
	if cert.CertificatePath != nil && *cert.CertificatePath != "" {
		downloadURL = *cert.CertificatePath
	}
	return JSONSuccess(c, fiber.StatusOK, fiber.Map{"downloadUrl": downloadURL})
}

// GenerateCertificateFile renders and uploads the PDF for a certificate and
// stores the resulting URL.
func GenerateCertificateFile(c *fiber.Ctx) error {
	var cert models.Certificate
	if err := database.DB.Preload("Participant").Preload("TrainingProgram").
		First(&cert, "certificate_id = ?", c.Params("certificateId")).Error; err != nil {
		return JSONError(c, fiber.StatusNotFound, "Certificate not found")
	}

	url, err := services.GenerateCertificateFile(cert)
	if err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Failed to generate certificate file")
	}

	cert.CertificatePath = &url
	if err := database.DB.Save(&cert).Error; err != nil {
		return JSONError(c, fiber.StatusInternalServerError, "Failed to store certificate file path")
	}
	return JSONSuccess(c, fiber.StatusOK, viewOf(cert))
}
