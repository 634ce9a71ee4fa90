package interview

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is a finished interview persisted at the user's request. Immutable.
// Its ID is the ID of the session it was saved from.
type Record struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"userId"`
	ResumeID        *uuid.UUID   `json:"resumeId,omitempty"`
	Type            Type         `json:"interviewType"`
	Position        string       `json:"position"`
	Questions       []string     `json:"questions"`
	Answers         []string     `json:"answers"`
	Evaluations     []Evaluation `json:"evaluations"`
	Feedback        Feedback     `json:"feedback"`
	TotalScore      float64      `json:"totalScore"`
	DurationSeconds int          `json:"durationSeconds"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// RecordRepository хранит завершённые собеседования.
type RecordRepository interface {
	// Create returns ErrRecordExists when a record with r.ID is already stored.
	Create(ctx context.Context, r Record) error
	// ListByUser returns newest first; limit <= 0 means no limit.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Record, error)
	GetForUser(ctx context.Context, userID, id uuid.UUID) (Record, error)
}
