package interview

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/recruit/pkg/apperrors"
)

const domain = "interview"

var (
	ErrEmptyAnswer   = apperrors.Validation(domain, "ответ не может быть пустым")
	ErrNoQuestions   = apperrors.Validation(domain, "не удалось сформировать вопросы")
	ErrNotInProgress = apperrors.InvalidState(domain, "собеседование не идёт")
	ErrNotFinished   = apperrors.InvalidState(domain, "собеседование ещё не завершено")
	ErrAlreadyActive = apperrors.InvalidState(domain, "уже есть активное собеседование, завершите или сбросьте его")
	ErrNoSession     = apperrors.NotFound(domain, "нет данных о собеседовании")
	ErrNoRecord      = apperrors.NotFound(domain, "запись о собеседовании не найдена")
	ErrRecordExists  = apperrors.Conflict(domain, "собеседование уже сохранено")
)

type State string

const (
	StateConfigured State = "configured"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
	StateAborted    State = "aborted"
)

func (s State) Terminal() bool { return s == StateCompleted || s == StateAborted }

// Type is the interview format chosen by the candidate.
type Type string

const (
	TypeTechnical     Type = "Technical"
	TypeBehavioral    Type = "Behavioral"
	TypeComprehensive Type = "Comprehensive"
)

func (t Type) Valid() bool {
	return t == TypeTechnical || t == TypeBehavioral || t == TypeComprehensive
}

func (t Type) Label() string {
	switch t {
	case TypeTechnical:
		return "Техническое"
	case TypeBehavioral:
		return "Поведенческое"
	case TypeComprehensive:
		return "Комплексное"
	}
	return string(t)
}

// Session is one interview attempt of a single user.
// len(Answers) == len(Evaluations) == CurrentIndex <= len(Questions) at all times.
type Session struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"userId"`
	ResumeID        *uuid.UUID   `json:"resumeId,omitempty"`
	Position        string       `json:"position"`
	ExperienceLevel string       `json:"experienceLevel"`
	Type            Type         `json:"type"`
	Questions       []string     `json:"questions"`
	Answers         []string     `json:"answers"`
	Evaluations     []Evaluation `json:"evaluations"`
	CurrentIndex    int          `json:"currentIndex"`
	State           State        `json:"state"`
	StartedAt       time.Time    `json:"startedAt"`
	FinishedAt      *time.Time   `json:"finishedAt,omitempty"`
}

func NewSession(userID uuid.UUID, resumeID *uuid.UUID, position, level string, typ Type, questions []string) *Session {
	return &Session{
		ID:              uuid.New(),
		UserID:          userID,
		ResumeID:        resumeID,
		Position:        position,
		ExperienceLevel: level,
		Type:            typ,
		Questions:       questions,
		Answers:         []string{},
		Evaluations:     []Evaluation{},
		State:           StateConfigured,
	}
}

// Begin moves a configured session to InProgress.
func (s *Session) Begin(now time.Time) error {
	if s.State != StateConfigured {
		return ErrNotInProgress
	}
	if len(s.Questions) == 0 {
		return ErrNoQuestions
	}
	s.State = StateInProgress
	s.StartedAt = now
	return nil
}

// CurrentQuestion returns the next unanswered question.
func (s *Session) CurrentQuestion() (string, bool) {
	if s.State != StateInProgress || s.CurrentIndex >= len(s.Questions) {
		return "", false
	}
	return s.Questions[s.CurrentIndex], true
}

// SubmitAnswer evaluates and records answer for the current question.
// An empty answer changes nothing.
func (s *Session) SubmitAnswer(ev Evaluator, answer string, now time.Time) (Evaluation, error) {
	question, ok := s.CurrentQuestion()
	if !ok {
		return Evaluation{}, ErrNotInProgress
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return Evaluation{}, ErrEmptyAnswer
	}
	e := ev.Evaluate(question, answer, s.Position)
	s.Answers = append(s.Answers, answer)
	s.Evaluations = append(s.Evaluations, e)
	s.CurrentIndex++
	if s.CurrentIndex == len(s.Questions) {
		s.State = StateCompleted
		s.FinishedAt = &now
	}
	return e, nil
}

// Abort ends an in-progress session early.
func (s *Session) Abort(now time.Time) error {
	if s.State != StateInProgress {
		return ErrNotInProgress
	}
	s.State = StateAborted
	s.FinishedAt = &now
	return nil
}

func (s *Session) Progress() (answered, total int) {
	return s.CurrentIndex, len(s.Questions)
}

func (s *Session) Scores() []float64 {
	out := make([]float64, 0, len(s.Evaluations))
	for _, e := range s.Evaluations {
		out = append(out, e.Score)
	}
	return out
}

// Duration is the time spent so far, or in total once the session is finished.
func (s *Session) Duration(now time.Time) time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	end := now
	if s.FinishedAt != nil {
		end = *s.FinishedAt
	}
	return end.Sub(s.StartedAt)
}

// consistent reports whether the lockstep invariant holds; decoded sessions are checked with it.
func (s *Session) consistent() bool {
	return len(s.Answers) == s.CurrentIndex &&
		len(s.Evaluations) == s.CurrentIndex &&
		s.CurrentIndex <= len(s.Questions) &&
		s.State != ""
}
