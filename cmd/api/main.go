package main

import (
	"log"
	"time"

	config "github.com/Rdx99999/bhumi-backend/configs"
	"github.com/Rdx99999/bhumi-backend/database"
	"github.com/Rdx99999/bhumi-backend/jobs"
	"github.com/Rdx99999/bhumi-backend/notifications"
	"github.com/Rdx99999/bhumi-backend/routes"
	"github.com/Rdx99999/bhumi-backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	config.LoadConfig()
	database.ConnectDB()
	database.Migrate()
	database.SeedServices()
	notifications.InitTelegramService()
	services.InitSitemapService(
		database.DB,
		config.AppConfig.BaseURL,
		time.Duration(config.AppConfig.SitemapTTLMinutes)*time.Minute,
	)

	c := cron.New()
	c.AddFunc("*/5 * * * *", jobs.RetryPendingContactAlerts)
	go c.Start()
	log.Println("✅ Cron job for contact alert retries scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Bhumi Consultancy Services API",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			message := err.Error()
			if code == fiber.StatusInternalServerError {
				message = "Something went wrong. Please try again."
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error":   message,
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, X-API-Code",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.PublicRoutes(app)
	routes.AdminRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Printf("✅ Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
