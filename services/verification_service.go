package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Rdx99999/bhumi-backend/models"
	"gorm.io/gorm"
)

// ErrNotFound covers both "no such record" and "record exists but the
// supplied name/email does not match". Callers must not distinguish the two,
// so a valid ID cannot be probed with guessed names.
var ErrNotFound = errors.New("no matching record found")

// ErrMissingLookup is returned when a status check supplies neither a
// participant ID nor an email.
var ErrMissingLookup = errors.New("participantId or email is required")

// VerificationService answers the two public read-only questions of the
// verification surface: is this certificate genuine, and how far along is
// this participant.
type VerificationService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewVerificationService(db *gorm.DB) *VerificationService {
	return &VerificationService{db: db, now: time.Now}
}

type CertificateSummary struct {
	CertificateID   string    `json:"certificateId"`
	IssueDate       time.Time `json:"issueDate"`
	Status          string    `json:"status"`
	CertificatePath *string   `json:"certificatePath,omitempty"`
}

type ParticipantSummary struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type TrainingSummary struct {
	Name string `json:"name"`
	ID   uint   `json:"id"`
}

type VerificationResult struct {
	Certificate CertificateSummary `json:"certificate"`
	Participant ParticipantSummary `json:"participant"`
	Training    TrainingSummary    `json:"training"`
}

type EnrolledProgram struct {
	ProgramID      uint       `json:"programId"`
	ProgramName    string     `json:"programName"`
	CompletionDate *time.Time `json:"completionDate,omitempty"`
	CertificateID  *string    `json:"certificateId,omitempty"`
}

type StatusResult struct {
	Participant struct {
		ParticipantID string `json:"participantId"`
		Name          string `json:"name"`
		Status        string `json:"status"`
	} `json:"participant"`
	EnrolledPrograms []EnrolledProgram `json:"enrolledPrograms"`
}

// VerifyCertificate looks up certificateID and cross-checks the claimed
// participant name. Name comparison is case-insensitive on trimmed input.
func (s *VerificationService) VerifyCertificate(certificateID, participantName string) (*VerificationResult, error) {
	var cert models.Certificate
	err := s.db.Preload("Participant").Preload("TrainingProgram").
		Where("certificate_id = ?", strings.TrimSpace(certificateID)).
		First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !namesMatch(participantName, cert.Participant.FullName) {
		return nil, ErrNotFound
	}

	return &VerificationResult{
		Certificate: CertificateSummary{
			CertificateID:   cert.CertificateID,
			IssueDate:       cert.IssueDate,
			Status:          cert.DerivedStatus(s.now()),
			CertificatePath: cert.CertificatePath,
		},
		Participant: ParticipantSummary{
			Name: cert.Participant.FullName,
			ID:   cert.Participant.ParticipantID,
		},
		Training: TrainingSummary{
			Name: cert.TrainingProgram.Title,
			ID:   cert.TrainingProgram.ID,
		},
	}, nil
}

// CheckParticipantStatus resolves a participant by external ID or email and
// assembles their enrolled-program summary. When both lookups are supplied
// the ID wins, but the stored email must also match the supplied one;
// otherwise a guessed ID would expose another person's record.
func (s *VerificationService) CheckParticipantStatus(participantID, email string) (*StatusResult, error) {
	participantID = strings.TrimSpace(participantID)
	email = strings.TrimSpace(email)
	if participantID == "" && email == "" {
		return nil, ErrMissingLookup
	}

	var participant models.Participant
	query := s.db.Preload("TrainingProgram")
	if participantID != "" {
		query = query.Where("participant_id = ?", participantID)
	} else {
		query = query.Where("LOWER(email) = LOWER(?)", email)
	}
	if err := query.First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if participantID != "" && email != "" && !strings.EqualFold(participant.Email, email) {
		return nil, ErrNotFound
	}

	entry := EnrolledProgram{
		ProgramID:   participant.TrainingProgramID,
		ProgramName: participant.TrainingProgram.Title,
	}

	var cert models.Certificate
	err := s.db.Where("participant_id = ? AND training_program_id = ?", participant.ID, participant.TrainingProgramID).
		First(&cert).Error
	switch {
	case err == nil:
		issue := cert.IssueDate
		entry.CompletionDate = &issue
		certID := cert.CertificateID
		entry.CertificateID = &certID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Enrolled but not yet certified: completionDate and certificateId
		// stay absent, signaling "in progress".
	default:
		return nil, err
	}

	result := &StatusResult{EnrolledPrograms: []EnrolledProgram{entry}}
	result.Participant.ParticipantID = participant.ParticipantID
	result.Participant.Name = participant.FullName
	result.Participant.Status = participant.Status
	return result, nil
}

func namesMatch(supplied, stored string) bool {
	return strings.EqualFold(strings.TrimSpace(supplied), strings.TrimSpace(stored))
}
