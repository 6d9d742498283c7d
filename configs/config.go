package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBPath string

	// APICode is the pre-shared credential required on mutating endpoints.
	APICode string

	// BaseURL is the canonical site origin used for sitemap links.
	BaseURL string

	TelegramBotToken string
	TelegramChatID   string

	CloudinaryURL string

	SitemapTTLMinutes int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "8080"),
		DBPath: getEnv("DB_PATH", "bhumi.db"),

		APICode: getEnv("API_CODE", ""),
		BaseURL: getEnv("BASE_URL", "https://bhumiconsultancy.in"),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", ""),

		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),

		SitemapTTLMinutes: getEnvInt("SITEMAP_TTL_MINUTES", 60),
	}

	if AppConfig.APICode == "" {
		log.Println("Warning: API_CODE is not set. All mutating endpoints will reject requests.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
