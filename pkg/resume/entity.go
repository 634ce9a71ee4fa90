package resume

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/recruit/pkg/apperrors"
	"github.com/artem13815/recruit/pkg/classifier"
)

const domain = "resume"

var (
	ErrNotFound    = apperrors.NotFound(domain, "резюме не найдено")
	ErrNoAnalysis  = apperrors.NotFound(domain, "резюме ещё не проанализировано")
	ErrEmptyFile   = apperrors.Validation(domain, "файл резюме пуст")
	ErrEmptyText   = apperrors.Validation(domain, "текст резюме пуст")
	ErrUnsupported = apperrors.Validation(domain, "поддерживаются только файлы PDF, DOCX и TXT")
	ErrTooLarge    = apperrors.Validation(domain, "файл слишком большой")
)

// Resume хранит загруженный файл и извлечённые из него атрибуты.
// Содержимое неизменяемо после создания.
type Resume struct {
	ID               uuid.UUID  `json:"id"`
	OwnerID          uuid.UUID  `json:"ownerId"`
	Filename         string     `json:"filename"`
	RawBytes         []byte     `json:"-"`
	MimeType         string     `json:"mimeType"`
	Size             int64      `json:"size"`
	UploadedAt       time.Time  `json:"uploadedAt"`
	ExtractedText    string     `json:"extractedText,omitempty"`
	DetectedPosition string     `json:"detectedPosition,omitempty"`
	ExperienceLevel  string     `json:"experienceLevel,omitempty"`
	Skills           []string   `json:"skills"`
	IsAnalyzed       bool       `json:"isAnalyzed"`
	AnalyzedAt       *time.Time `json:"analyzedAt,omitempty"`
}

// Analysis is one immutable classifier run over a resume. Re-analysis appends a
// new row and marks the previous one superseded.
type Analysis struct {
	ID              uuid.UUID          `json:"id"`
	ResumeID        uuid.UUID          `json:"resumeId"`
	OwnerID         uuid.UUID          `json:"ownerId"`
	Score           float64            `json:"authenticityScore"`
	Position        string             `json:"detectedPosition"`
	Flags           []string           `json:"flags"`
	Recommendations []string           `json:"recommendations"`
	Verdict         classifier.Verdict `json:"verdict"`
	RawPayload      map[string]any     `json:"rawPayload"`
	CreatedAt       time.Time          `json:"createdAt"`
	SupersededAt    *time.Time         `json:"supersededAt,omitempty"`
}

// NewAnalysis snapshots a classifier result for resumeID.
func NewAnalysis(resumeID, ownerID uuid.UUID, res classifier.Result, at time.Time) Analysis {
	return Analysis{
		ID:              uuid.New(),
		ResumeID:        resumeID,
		OwnerID:         ownerID,
		Score:           res.Score,
		Position:        res.Position,
		Flags:           res.Flags,
		Recommendations: res.Recommendations,
		Verdict:         res.Verdict,
		RawPayload:      res.Payload(),
		CreatedAt:       at,
	}
}

// apply copies the derived attributes of res onto r.
func (r *Resume) apply(res classifier.Result, at time.Time) {
	r.DetectedPosition = res.Position
	r.ExperienceLevel = res.ExperienceLevel
	r.Skills = res.Skills
	r.IsAnalyzed = true
	r.AnalyzedAt = &at
}

// Repository хранит резюме и историю их анализов.
type Repository interface {
	// CreateWithAnalysis stores the resume and its first analysis atomically.
	CreateWithAnalysis(ctx context.Context, r Resume, a Analysis) error
	// AppendAnalysis supersedes the current analysis and stores a as current,
	// refreshing the resume's derived attributes in the same transaction.
	AppendAnalysis(ctx context.Context, r Resume, a Analysis) error
	// Get returns metadata and extracted text; RawBytes stays empty.
	Get(ctx context.Context, id uuid.UUID) (Resume, error)
	GetFile(ctx context.Context, id uuid.UUID) (Resume, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Resume, error)
	CurrentAnalysis(ctx context.Context, resumeID uuid.UUID) (Analysis, error)
	ListAnalyses(ctx context.Context, resumeID uuid.UUID) ([]Analysis, error)
}
