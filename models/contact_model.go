package models

import "time"

const (
	ContactStatusPending   = "pending"
	ContactStatusContacted = "contacted"
	ContactStatusResolved  = "resolved"
	ContactStatusArchived  = "archived"
)

type Contact struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:255;not null" json:"name"`
	Email   string  `gorm:"size:255;not null;index" json:"email"`
	Phone   *string `gorm:"size:20" json:"phone,omitempty"`
	Subject string  `gorm:"size:255;not null" json:"subject"`
	Message string  `gorm:"type:text;not null" json:"message"`
	Status  string  `gorm:"size:20;not null;default:'pending'" json:"status"`

	// Notified tracks whether the Telegram alert for this submission went
	// out; the retry job picks up rows where it is still false.
	Notified bool `gorm:"default:false" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
