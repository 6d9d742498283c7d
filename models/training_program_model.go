package models

import "time"

const (
	DeliveryModeOnline  = "online"
	DeliveryModeOffline = "offline"
	DeliveryModeBoth    = "both"
)

type TrainingProgram struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Slug         string  `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Title        string  `gorm:"size:255;not null" json:"title"`
	Description  string  `gorm:"type:text" json:"description"`
	Category     string  `gorm:"size:100" json:"category"`
	Duration     string  `gorm:"size:100" json:"duration"`
	Price        float64 `gorm:"type:numeric(10,2);default:0.00" json:"price"`
	OnlinePrice  float64 `gorm:"type:numeric(10,2);default:0.00" json:"onlinePrice"`
	OfflinePrice float64 `gorm:"type:numeric(10,2);default:0.00" json:"offlinePrice"`
	DeliveryMode string  `gorm:"size:20;not null;default:'both'" json:"deliveryMode"`
	ImageURL     *string `gorm:"size:255" json:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
