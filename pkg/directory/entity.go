package directory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/recruit/pkg/apperrors"
	"github.com/artem13815/recruit/pkg/resume"
)

const domain = "directory"

var (
	ErrCandidateNotFound = apperrors.NotFound(domain, "кандидат не найден")
	ErrHROnly            = apperrors.Forbidden(domain, "доступно только HR-специалистам")
	ErrForeignResume     = apperrors.Validation(domain, "резюме не принадлежит кандидату")
)

// Candidate is a candidate user joined with the latest resume and its current
// analysis. Resume and analysis fields are empty when absent.
type Candidate struct {
	UserID           uuid.UUID  `json:"userId"`
	FullName         string     `json:"fullName"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone,omitempty"`
	Location         string     `json:"location,omitempty"`
	ResumeID         *uuid.UUID `json:"resumeId,omitempty"`
	Filename         string     `json:"filename,omitempty"`
	UploadedAt       *time.Time `json:"uploadedAt,omitempty"`
	DetectedPosition string     `json:"detectedPosition,omitempty"`
	ExperienceLevel  string     `json:"experienceLevel,omitempty"`
	Skills           []string   `json:"skills"`
	AnalysisID       *uuid.UUID `json:"analysisId,omitempty"`
	Score            *float64   `json:"authenticityScore,omitempty"`
	Verdict          string     `json:"verdict,omitempty"`
}

// Favorite is an HR bookmark; one per (HR, candidate) pair.
type Favorite struct {
	ID              uuid.UUID  `json:"id"`
	HRUserID        uuid.UUID  `json:"hrUserId"`
	CandidateUserID uuid.UUID  `json:"candidateUserId"`
	ResumeID        *uuid.UUID `json:"resumeId,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type FavoriteView struct {
	Favorite  Favorite  `json:"favorite"`
	Candidate Candidate `json:"candidate"`
}

// Repository читает кандидатов и хранит избранное.
type Repository interface {
	// ListCandidates returns active candidates that have at least one resume,
	// newest upload first.
	ListCandidates(ctx context.Context) ([]Candidate, error)
	GetCandidate(ctx context.Context, userID uuid.UUID) (Candidate, error)
	// UpsertFavorite inserts or overwrites notes and resume on (hr, candidate).
	UpsertFavorite(ctx context.Context, f Favorite) error
	DeleteFavorite(ctx context.Context, hrID, candidateID uuid.UUID) error
	FavoriteExists(ctx context.Context, hrID, candidateID uuid.UUID) (bool, error)
	ListFavorites(ctx context.Context, hrID uuid.UUID) ([]FavoriteView, error)
}

// ResumeSource is the slice of the resume store the directory reads.
type ResumeSource interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]resume.Resume, error)
	CurrentAnalysis(ctx context.Context, resumeID uuid.UUID) (resume.Analysis, error)
}
