package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	config "github.com/Rdx99999/bhumi-backend/configs"
	"github.com/Rdx99999/bhumi-backend/database"
	"github.com/Rdx99999/bhumi-backend/models"
	"github.com/Rdx99999/bhumi-backend/routes"
	"github.com/Rdx99999/bhumi-backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testAPICode = "test-api-code"

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		APICode: testAPICode,
		BaseURL: "https://bhumiconsultancy.in",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Service{},
		&models.TrainingProgram{},
		&models.Participant{},
		&models.Certificate{},
		&models.Contact{},
	))
	database.DB = db
	services.InitSitemapService(db, config.AppConfig.BaseURL, time.Hour)

	app := fiber.New()
	routes.PublicRoutes(app)
	routes.AdminRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, apiCode string) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if apiCode != "" {
		req.Header.Set("X-API-Code", apiCode)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env
}

func seedProgram(t *testing.T) models.TrainingProgram {
	t.Helper()
	program := models.TrainingProgram{
		Slug:         "business-compliance",
		Title:        "Business Compliance Training",
		DeliveryMode: models.DeliveryModeBoth,
	}
	require.NoError(t, database.DB.Create(&program).Error)
	return program
}

func TestVerifyCertificateEndpoint(t *testing.T) {
	app := setupApp(t)
	program := seedProgram(t)

	participant := models.Participant{
		ParticipantID: "BHM-P001", FullName: "John Doe", Email: "john.doe@example.com",
		TrainingProgramID: program.ID, EnrollmentDate: time.Now(), Status: "completed",
	}
	require.NoError(t, database.DB.Create(&participant).Error)
	require.NoError(t, database.DB.Create(&models.Certificate{
		CertificateID: "BHM23051501", ParticipantID: participant.ID,
		TrainingProgramID: program.ID, IssueDate: time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
	}).Error)

	t.Run("valid pair verifies", func(t *testing.T) {
		resp, env := doJSON(t, app, "POST", "/api/verify-certificate",
			fiber.Map{"certificateId": "BHM23051501", "participantName": "John Doe"}, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, env.Success)
		assert.Contains(t, string(env.Data), `"certificateId":"BHM23051501"`)
		assert.Contains(t, string(env.Data), `"status":"active"`)
	})

	t.Run("wrong name and unknown id produce identical responses", func(t *testing.T) {
		respA, envA := doJSON(t, app, "POST", "/api/verify-certificate",
			fiber.Map{"certificateId": "BHM23051501", "participantName": "Jane Doe"}, "")
		respB, envB := doJSON(t, app, "POST", "/api/verify-certificate",
			fiber.Map{"certificateId": "BHM00000000", "participantName": "John Doe"}, "")

		assert.Equal(t, http.StatusNotFound, respA.StatusCode)
		assert.Equal(t, respA.StatusCode, respB.StatusCode)
		assert.Equal(t, envA, envB)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		resp, env := doJSON(t, app, "POST", "/api/verify-certificate",
			fiber.Map{"certificateId": "BHM23051501"}, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, env.Success)
	})
}

func TestCheckStatusEndpoint(t *testing.T) {
	app := setupApp(t)
	program := seedProgram(t)

	participant := models.Participant{
		ParticipantID: "BHM-P001", FullName: "John Doe", Email: "john.doe@example.com",
		TrainingProgramID: program.ID, EnrollmentDate: time.Now(), Status: "active",
	}
	require.NoError(t, database.DB.Create(&participant).Error)

	t.Run("lookup by id", func(t *testing.T) {
		resp, env := doJSON(t, app, "POST", "/api/check-status",
			fiber.Map{"participantId": "BHM-P001"}, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, env.Success)
		assert.Contains(t, string(env.Data), `"enrolledPrograms"`)
	})

	t.Run("mismatched email is not found", func(t *testing.T) {
		resp, _ := doJSON(t, app, "POST", "/api/check-status",
			fiber.Map{"participantId": "BHM-P001", "email": "other@example.com"}, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("neither lookup supplied", func(t *testing.T) {
		resp, env := doJSON(t, app, "POST", "/api/check-status", fiber.Map{}, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, env.Success)
	})
}

func TestAPICodeGate(t *testing.T) {
	app := setupApp(t)

	body := fiber.Map{"title": "New Program", "deliveryMode": "online"}

	t.Run("missing code", func(t *testing.T) {
		resp, env := doJSON(t, app, "POST", "/api/training-programs", body, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.False(t, env.Success)
	})

	t.Run("wrong code", func(t *testing.T) {
		resp, _ := doJSON(t, app, "POST", "/api/training-programs", body, "wrong")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("correct code", func(t *testing.T) {
		resp, env := doJSON(t, app, "POST", "/api/training-programs", body, testAPICode)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.True(t, env.Success)
		assert.Contains(t, string(env.Data), `"slug":"new-program"`)
	})

	t.Run("public reads stay open", func(t *testing.T) {
		resp, env := doJSON(t, app, "GET", "/api/training-programs", nil, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, env.Success)
	})
}

func TestDeletionIntegrity(t *testing.T) {
	app := setupApp(t)
	program := seedProgram(t)

	participant := models.Participant{
		ParticipantID: "BHM-P001", FullName: "John Doe", Email: "john.doe@example.com",
		TrainingProgramID: program.ID, EnrollmentDate: time.Now(), Status: "active",
	}
	require.NoError(t, database.DB.Create(&participant).Error)
	require.NoError(t, database.DB.Create(&models.Certificate{
		CertificateID: "BHM23051501", ParticipantID: participant.ID,
		TrainingProgramID: program.ID, IssueDate: time.Now(),
	}).Error)

	t.Run("program with enrolled participants", func(t *testing.T) {
		resp, env := doJSON(t, app, "DELETE", fmt.Sprintf("/api/training-programs/%d", program.ID), nil, testAPICode)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, env.Error, "1 participant(s)")
	})

	t.Run("participant with issued certificates", func(t *testing.T) {
		resp, env := doJSON(t, app, "DELETE", fmt.Sprintf("/api/participants/%d", participant.ID), nil, testAPICode)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, env.Error, "1 certificate(s)")
	})

	t.Run("delete succeeds once dependents are gone", func(t *testing.T) {
		require.NoError(t, database.DB.Delete(&models.Certificate{}, "certificate_id = ?", "BHM23051501").Error)

		resp, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/api/participants/%d", participant.ID), nil, testAPICode)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/training-programs/%d", program.ID), nil, testAPICode)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestGetProgramByIDOrSlug(t *testing.T) {
	app := setupApp(t)
	program := seedProgram(t)

	resp, env := doJSON(t, app, "GET", fmt.Sprintf("/api/training-programs/%d", program.ID), nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"slug":"business-compliance"`)

	resp, env = doJSON(t, app, "GET", "/api/training-programs/business-compliance", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), fmt.Sprintf(`"id":%d`, program.ID))

	resp, _ = doJSON(t, app, "GET", "/api/training-programs/unknown-slug", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDownloadCertificate(t *testing.T) {
	app := setupApp(t)
	program := seedProgram(t)

	participant := models.Participant{
		ParticipantID: "BHM-P001", FullName: "John Doe", Email: "john.doe@example.com",
		TrainingProgramID: program.ID, EnrollmentDate: time.Now(), Status: "completed",
	}
	require.NoError(t, database.DB.Create(&participant).Error)

	path := "https://res.cloudinary.com/bhumi/certificates/BHM23051501.pdf"
	require.NoError(t, database.DB.Create(&models.Certificate{
		CertificateID: "BHM23051501", ParticipantID: participant.ID,
		TrainingProgramID: program.ID, IssueDate: time.Now(), CertificatePath: &path,
	}).Error)
	require.NoError(t, database.DB.Create(&models.Certificate{
		CertificateID: "BHM23051502", ParticipantID: participant.ID,
		TrainingProgramID: program.ID, IssueDate: time.Now(),
	}).Error)

	t.Run("stored path wins", func(t *testing.T) {
		resp, env := doJSON(t, app, "GET", "/api/certificates/download/BHM23051501", nil, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(env.Data), path)
	})

	t.Run("synthesized path fallback", func(t *testing.T) {
		resp, env := doJSON(t, app, "GET", "/api/certificates/download/BHM23051502", nil, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(env.Data), "/certificates/BHM23051502.pdf")
	})

	t.Run("unknown certificate", func(t *testing.T) {
		resp, _ := doJSON(t, app, "GET", "/api/certificates/download/BHM99999999", nil, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestSubmitContact(t *testing.T) {
	app := setupApp(t)

	t.Run("valid submission persists", func(t *testing.T) {
		resp, env := doJSON(t, app, "POST", "/api/contact", fiber.Map{
			"name": "John Doe", "email": "john.doe@example.com",
			"subject": "Enquiry", "message": "Weekend batches?",
		}, "")
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.True(t, env.Success)

		var count int64
		require.NoError(t, database.DB.Model(&models.Contact{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		resp, env := doJSON(t, app, "POST", "/api/contact", fiber.Map{"name": "John Doe"}, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, env.Success)
	})
}

func TestUniqueConstraintRaceSurfacesAsValidationError(t *testing.T) {
	app := setupApp(t)
	program := seedProgram(t)

	body := fiber.Map{
		"participantId": "BHM-P001", "fullName": "John Doe",
		"email": "john.doe@example.com", "trainingProgramId": program.ID,
	}

	resp, _ := doJSON(t, app, "POST", "/api/participants", body, testAPICode)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, "POST", "/api/participants", body, testAPICode)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Error, "already exists")
}
