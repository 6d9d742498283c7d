package routes

import (
	"github.com/Rdx99999/bhumi-backend/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	app.Get("/sitemap.xml", handlers.GetSitemap)

	api := app.Group("/api")

	api.Post("/verify-certificate", handlers.VerifyCertificate)
	api.Post("/check-status", handlers.CheckParticipantStatus)

	api.Get("/services", handlers.ListServices)
	api.Get("/services/:id", handlers.GetService)

	api.Get("/training-programs", handlers.ListPrograms)
	api.Get("/training-programs/:idOrSlug", handlers.GetProgram)

	api.Get("/certificates/download/:certificateId", handlers.DownloadCertificate)

	api.Post("/contact", handlers.SubmitContact)
}
