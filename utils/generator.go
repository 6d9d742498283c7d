package utils

import (
	"fmt"
	"time"

	"github.com/Rdx99999/bhumi-backend/models"
	"gorm.io/gorm"
)

// GenerateParticipantID returns the next unused external participant ID of
// the form BHM-P001. It starts from the current row count and walks forward
// past gaps left by deletions.
func GenerateParticipantID(tx *gorm.DB) (string, error) {
	var count int64
	if err := tx.Model(&models.Participant{}).Count(&count).Error; err != nil {
		return "", err
	}

	for n := count + 1; ; n++ {
		id := fmt.Sprintf("BHM-P%03d", n)

		var participant models.Participant
		err := tx.Where("participant_id = ?", id).First(&participant).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return id, nil
			}
			return "", err
		}
	}
}

// GenerateCertificateID returns the next unused external certificate ID of
// the form BHM23051501: the BHM prefix, the issue date as YYMMDD, and a
// two-digit sequence within that day.
func GenerateCertificateID(tx *gorm.DB, issueDate time.Time) (string, error) {
	base := "BHM" + issueDate.Format("060102")

	for n := 1; n <= 99; n++ {
		id := fmt.Sprintf("%s%02d", base, n)

		var cert models.Certificate
		err := tx.Where("certificate_id = ?", id).First(&cert).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return id, nil
			}
			return "", err
		}
	}
	return "", fmt.Errorf("certificate sequence exhausted for %s", base)
}
