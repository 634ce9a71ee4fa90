package interview

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/pkg/apperrors"
	"github.com/artem13815/recruit/pkg/auth"
	"github.com/artem13815/recruit/pkg/logger"
	"github.com/artem13815/recruit/pkg/resume"
)

const (
	MinQuestions = 3
	MaxQuestions = 10

	defaultLevel = "Middle"
)

// ResumeSource resolves the resume an interview is based on.
type ResumeSource interface {
	Get(ctx context.Context, id uuid.UUID) (resume.Resume, error)
}

type StartInput struct {
	ResumeID uuid.UUID // uuid.Nil starts a generic interview
	Type     Type
	Count    int
}

type SubmitResult struct {
	Evaluation Evaluation `json:"evaluation"`
	Session    *Session   `json:"session"`
}

type Results struct {
	Session  *Session `json:"session"`
	Feedback Feedback `json:"feedback"`
}

// UseCase drives one interview per user from start to the saved record.
type UseCase interface {
	Start(ctx context.Context, actor auth.Actor, in StartInput) (*Session, error)
	Current(ctx context.Context, actor auth.Actor) (*Session, error)
	Submit(ctx context.Context, actor auth.Actor, answer string) (SubmitResult, error)
	Abort(ctx context.Context, actor auth.Actor) (*Session, error)
	Results(ctx context.Context, actor auth.Actor) (Results, error)
	Save(ctx context.Context, actor auth.Actor) (Record, error)
	Reset(ctx context.Context, actor auth.Actor) error
	History(ctx context.Context, actor auth.Actor, limit int) ([]Record, error)
	GetRecord(ctx context.Context, actor auth.Actor, id uuid.UUID) (Record, error)
}

type service struct {
	sessions  SessionStore
	records   RecordRepository
	resumes   ResumeSource
	evaluator Evaluator
	bank      Bank

	mu  sync.Mutex
	rng *rand.Rand

	now func() time.Time
	log *zap.Logger
}

// NewService builds the orchestrator. seed 0 seeds from the clock.
func NewService(sessions SessionStore, records RecordRepository, resumes ResumeSource, evaluator Evaluator, bank Bank, seed int64, log *zap.Logger) UseCase {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if evaluator == nil {
		evaluator = HeuristicEvaluator{}
	}
	return &service{
		sessions:  sessions,
		records:   records,
		resumes:   resumes,
		evaluator: evaluator,
		bank:      bank,
		rng:       rand.New(rand.NewSource(seed)),
		now:       func() time.Time { return time.Now().UTC() },
		log:       logger.OrNop(log),
	}
}

func (s *service) Start(ctx context.Context, actor auth.Actor, in StartInput) (*Session, error) {
	if in.Type == "" {
		in.Type = TypeComprehensive
	}
	if !in.Type.Valid() {
		return nil, apperrors.Validation(domain, "неизвестный тип собеседования")
	}
	if in.Count < MinQuestions || in.Count > MaxQuestions {
		return nil, apperrors.Validation(domain, "количество вопросов должно быть от 3 до 10")
	}

	current, err := s.sessions.Load(ctx, actor.UserID)
	switch {
	case err == nil && current.State == StateInProgress:
		return nil, ErrAlreadyActive
	case err == nil:
		s.log.Info("discarding finished unsaved interview", zap.String("session_id", current.ID.String()))
	case !apperrors.IsKind(err, apperrors.KindNotFound):
		return nil, err
	}

	position, level := s.bank.DefaultPosition, defaultLevel
	var resumeID *uuid.UUID
	if in.ResumeID != uuid.Nil {
		r, err := s.resumes.Get(ctx, in.ResumeID)
		if err != nil {
			return nil, err
		}
		if r.OwnerID != actor.UserID {
			return nil, resume.ErrNotFound
		}
		if r.DetectedPosition != "" {
			position = r.DetectedPosition
		}
		if r.ExperienceLevel != "" {
			level = r.ExperienceLevel
		}
		resumeID = &r.ID
	}
	position, _ = s.bank.Pool(position)

	s.mu.Lock()
	questions := s.bank.Generate(s.rng, position, level, in.Count)
	s.mu.Unlock()

	sess := NewSession(actor.UserID, resumeID, position, level, in.Type, questions)
	if err := sess.Begin(s.now()); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.log.Info("interview started",
		zap.String("user_id", actor.UserID.String()),
		zap.String("position", position),
		zap.String("level", level),
		zap.Int("questions", len(questions)),
	)
	return sess, nil
}

func (s *service) Current(ctx context.Context, actor auth.Actor) (*Session, error) {
	return s.sessions.Load(ctx, actor.UserID)
}

func (s *service) Submit(ctx context.Context, actor auth.Actor, answer string) (SubmitResult, error) {
	sess, err := s.sessions.Load(ctx, actor.UserID)
	if err != nil {
		return SubmitResult{}, err
	}
	ev, err := sess.SubmitAnswer(s.evaluator, answer, s.now())
	if err != nil {
		return SubmitResult{}, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return SubmitResult{}, err
	}
	s.log.Debug("answer evaluated",
		zap.String("session_id", sess.ID.String()),
		zap.Int("index", sess.CurrentIndex),
		zap.Float64("score", ev.Score),
		zap.String("answer", logger.Truncate(answer, 80)),
	)
	return SubmitResult{Evaluation: ev, Session: sess}, nil
}

func (s *service) Abort(ctx context.Context, actor auth.Actor) (*Session, error) {
	sess, err := s.sessions.Load(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if err := sess.Abort(s.now()); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) Results(ctx context.Context, actor auth.Actor) (Results, error) {
	sess, err := s.sessions.Load(ctx, actor.UserID)
	if err != nil {
		return Results{}, err
	}
	return Results{Session: sess, Feedback: Finalize(sess.Scores())}, nil
}

// Save persists a finished session once and clears it.
func (s *service) Save(ctx context.Context, actor auth.Actor) (Record, error) {
	sess, err := s.sessions.Load(ctx, actor.UserID)
	if err != nil {
		return Record{}, err
	}
	if !sess.State.Terminal() {
		return Record{}, ErrNotFinished
	}
	fb := Finalize(sess.Scores())
	rec := Record{
		ID:              sess.ID,
		UserID:          actor.UserID,
		ResumeID:        sess.ResumeID,
		Type:            sess.Type,
		Position:        sess.Position,
		Questions:       sess.Questions,
		Answers:         sess.Answers,
		Evaluations:     sess.Evaluations,
		Feedback:        fb,
		TotalScore:      fb.TotalScore,
		DurationSeconds: int(sess.Duration(s.now()).Seconds()),
		CreatedAt:       s.now(),
	}
	switch err := s.records.Create(ctx, rec); {
	case errors.Is(err, ErrRecordExists):
		// a concurrent Save of the same session got there first
		stored, gerr := s.records.GetForUser(ctx, actor.UserID, sess.ID)
		if gerr != nil {
			return Record{}, gerr
		}
		return stored, nil
	case err != nil:
		return Record{}, err
	}
	if err := s.sessions.Delete(ctx, actor.UserID); err != nil {
		s.log.Warn("interview saved but session not cleared", zap.String("session_id", sess.ID.String()), zap.Error(err))
	}
	s.log.Info("interview saved",
		zap.String("record_id", rec.ID.String()),
		zap.Float64("total_score", rec.TotalScore),
		zap.String("tier", string(fb.Tier)),
	)
	return rec, nil
}

func (s *service) Reset(ctx context.Context, actor auth.Actor) error {
	return s.sessions.Delete(ctx, actor.UserID)
}

func (s *service) History(ctx context.Context, actor auth.Actor, limit int) ([]Record, error) {
	return s.records.ListByUser(ctx, actor.UserID, limit)
}

func (s *service) GetRecord(ctx context.Context, actor auth.Actor, id uuid.UUID) (Record, error) {
	return s.records.GetForUser(ctx, actor.UserID, id)
}
