package models

import "time"

const (
	ParticipantStatusActive    = "active"
	ParticipantStatusCompleted = "completed"
	ParticipantStatusPaused    = "paused"
	ParticipantStatusWithdrawn = "withdrawn"
)

type Participant struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	ParticipantID     string    `gorm:"size:20;not null;uniqueIndex" json:"participantId"`
	FullName          string    `gorm:"size:255;not null" json:"fullName"`
	Email             string    `gorm:"size:255;not null" json:"email"`
	Phone             *string   `gorm:"size:20" json:"phone,omitempty"`
	TrainingProgramID uint      `gorm:"not null" json:"trainingProgramId"`
	EnrollmentDate    time.Time `json:"enrollmentDate"`
	Status            string    `gorm:"size:20;not null;default:'active'" json:"status"`

	TrainingProgram TrainingProgram `gorm:"foreignkey:TrainingProgramID" json:"trainingProgram,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
