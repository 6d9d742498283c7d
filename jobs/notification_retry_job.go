package jobs

import (
	"log"
	"time"

	"github.com/Rdx99999/bhumi-backend/database"
	"github.com/Rdx99999/bhumi-backend/models"
	"github.com/Rdx99999/bhumi-backend/notifications"
)

// RetryPendingContactAlerts resends Telegram alerts for recent contact
// submissions whose first delivery attempt did not go out (rate limited or
// the bot API was down). Runs on the cron schedule from main.
func RetryPendingContactAlerts() {
	if notifications.Telegram == nil {
		return
	}

	cutoff := time.Now().Add(-24 * time.Hour)

	var pending []models.Contact
	err := database.DB.
		Where("notified = ? AND created_at > ?", false, cutoff).
		Order("created_at asc").
		Limit(10).
		Find(&pending).Error
	if err != nil {
		log.Printf("🔥 Failed to load pending contact alerts: %v", err)
		return
	}

	for _, contact := range pending {
		if err := notifications.SendContactAlert(contact); err != nil {
			log.Printf("🔥 Retry of contact alert %d failed: %v", contact.ID, err)
			continue
		}
		if err := database.DB.Model(&models.Contact{}).Where("id = ?", contact.ID).
			Update("notified", true).Error; err != nil {
			log.Printf("🔥 Failed to mark contact %d as notified: %v", contact.ID, err)
		}
	}
}
