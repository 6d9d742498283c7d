package models

import (
	"time"

	"gorm.io/datatypes"
)

type Service struct {
	ID          uint                       `gorm:"primaryKey" json:"id"`
	Title       string                     `gorm:"size:255;not null" json:"title"`
	Description string                     `gorm:"type:text;not null" json:"description"`
	Icon        string                     `gorm:"size:100" json:"icon"`
	Features    datatypes.JSONSlice[string] `json:"features"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
