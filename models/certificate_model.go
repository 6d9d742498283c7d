package models

import "time"

// Certificate status is derived at read time, never stored. "revoked" is
// reserved for a future administrative action and is not produced by
// DerivedStatus.
const (
	CertificateStatusActive  = "active"
	CertificateStatusExpired = "expired"
	CertificateStatusRevoked = "revoked"
)

type Certificate struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	CertificateID     string     `gorm:"size:20;not null;uniqueIndex" json:"certificateId"`
	ParticipantID     uint       `gorm:"not null" json:"participantId"`
	TrainingProgramID uint       `gorm:"not null" json:"trainingProgramId"`
	IssueDate         time.Time  `gorm:"not null" json:"issueDate"`
	ExpiryDate        *time.Time `json:"expiryDate,omitempty"`
	CertificatePath   *string    `gorm:"type:text" json:"certificatePath,omitempty"`

	Participant     Participant     `gorm:"foreignkey:ParticipantID" json:"participant,omitempty"`
	TrainingProgram TrainingProgram `gorm:"foreignkey:TrainingProgramID" json:"trainingProgram,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Certificate) DerivedStatus(now time.Time) string {
	if c.ExpiryDate != nil && c.ExpiryDate.Before(now) {
		return CertificateStatusExpired
	}
	return CertificateStatusActive
}
