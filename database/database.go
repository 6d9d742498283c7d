package database

import (
	"fmt"
	"log"
	"strings"

	config "github.com/Rdx99999/bhumi-backend/configs"
	"github.com/Rdx99999/bhumi-backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.AppConfig.DBPath

	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.Service{},
		&models.TrainingProgram{},
		&models.Participant{},
		&models.Certificate{},
		&models.Contact{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedServices inserts the default consultancy services on first boot so the
// public site never renders an empty services page.
func SeedServices() {
	var count int64
	if err := DB.Model(&models.Service{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check services table: %v", err)
		return
	}
	if count > 0 {
		return
	}

	defaults := []models.Service{
		{
			Title:       "Business Consultancy",
			Description: "End-to-end advisory for small and medium businesses, from registration to growth strategy.",
			Icon:        "briefcase",
			Features:    []string{"Company registration", "Compliance audits", "Growth planning"},
		},
		{
			Title:       "Corporate Training",
			Description: "Certified training programs for professionals, delivered online and on-site.",
			Icon:        "graduation-cap",
			Features:    []string{"Industry-recognized certificates", "Flexible delivery modes", "Experienced trainers"},
		},
		{
			Title:       "Financial Advisory",
			Description: "Taxation, accounting, and financial planning services tailored to your business.",
			Icon:        "chart-line",
			Features:    []string{"Tax filing", "Bookkeeping", "Investment planning"},
		},
	}

	if err := DB.Create(&defaults).Error; err != nil {
		log.Fatalf("🔥 Failed to seed services: %v", err)
		return
	}
	log.Println("✅ Default services seeded successfully")
}

// IsUniqueViolation reports whether err is a SQLite unique-index violation.
// Concurrent creates race on the participantId/certificateId/slug indexes;
// the store is the arbiter and callers surface the loss as a validation error.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
