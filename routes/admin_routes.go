package routes

import (
	"github.com/Rdx99999/bhumi-backend/handlers"
	"github.com/Rdx99999/bhumi-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

// AdminRoutes registers every endpoint gated by the X-API-Code credential.
func AdminRoutes(app *fiber.App) {
	api := app.Group("/api", middleware.APICodeRequired())

	servicesGroup := api.Group("/services")
	servicesGroup.Post("", handlers.CreateService)
	servicesGroup.Put("/:id", handlers.UpdateService)
	servicesGroup.Delete("/:id", handlers.DeleteService)

	programs := api.Group("/training-programs")
	programs.Post("", handlers.CreateProgram)
	programs.Put("/:id", handlers.UpdateProgram)
	programs.Delete("/:id", handlers.DeleteProgram)

	participants := api.Group("/participants")
	participants.Get("", handlers.ListParticipants)
	participants.Get("/:id", handlers.GetParticipant)
	participants.Post("", handlers.CreateParticipant)
	participants.Put("/:id", handlers.UpdateParticipant)
	participants.Delete("/:id", handlers.DeleteParticipant)

	certificates := api.Group("/certificates")
	certificates.Get("", handlers.ListCertificates)
	certificates.Get("/:id", handlers.GetCertificate)
	certificates.Post("", handlers.CreateCertificate)
	certificates.Put("/:id", handlers.UpdateCertificate)
	certificates.Delete("/:id", handlers.DeleteCertificate)
	certificates.Post("/:certificateId/generate", handlers.GenerateCertificateFile)

	contacts := api.Group("/contacts")
	contacts.Get("", handlers.ListContacts)
	contacts.Get("/:id", handlers.GetContact)
	contacts.Put("/:id", handlers.UpdateContact)
	contacts.Delete("/:id", handlers.DeleteContact)
}
