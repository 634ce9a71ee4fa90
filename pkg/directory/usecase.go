package directory

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/pkg/apperrors"
	"github.com/artem13815/recruit/pkg/auth"
	"github.com/artem13815/recruit/pkg/interview"
	"github.com/artem13815/recruit/pkg/logger"
	"github.com/artem13815/recruit/pkg/resume"
)

const recentInterviews = 3

// InterviewSource lists a user's saved interviews, newest first.
type InterviewSource interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]interview.Record, error)
}

type CandidateDetails struct {
	Candidate Candidate        `json:"candidate"`
	Resumes   []resume.Resume  `json:"resumes"`
	Analysis  *resume.Analysis `json:"analysis,omitempty"`
	Favorite  bool             `json:"favorite"`
}

type CandidateStats struct {
	ResumesTotal     int                `json:"resumesTotal"`
	ResumesAnalyzed  int                `json:"resumesAnalyzed"`
	Interviews       int                `json:"interviews"`
	AverageInterview float64            `json:"averageInterviewScore"`
	RecentInterviews []interview.Record `json:"recentInterviews"`
}

// UseCase is the HR-facing candidate directory plus the candidate dashboard.
type UseCase interface {
	ListCandidates(ctx context.Context, actor auth.Actor, f Filter, s Sort) ([]Candidate, error)
	CandidateDetails(ctx context.Context, actor auth.Actor, candidateID uuid.UUID) (CandidateDetails, error)
	ToggleFavorite(ctx context.Context, actor auth.Actor, candidateID uuid.UUID, resumeID *uuid.UUID, notes string) (bool, error)
	RemoveFavorite(ctx context.Context, actor auth.Actor, candidateID uuid.UUID) error
	IsFavorite(ctx context.Context, actor auth.Actor, candidateID uuid.UUID) (bool, error)
	ListFavorites(ctx context.Context, actor auth.Actor) ([]FavoriteView, error)
	Analytics(ctx context.Context, actor auth.Actor) (Analytics, error)
	CandidateStats(ctx context.Context, actor auth.Actor) (CandidateStats, error)
}

type service struct {
	repo       Repository
	resumes    ResumeSource
	interviews InterviewSource
	now        func() time.Time
	log        *zap.Logger
}

func NewService(repo Repository, resumes ResumeSource, interviews InterviewSource, log *zap.Logger) UseCase {
	return &service{
		repo:       repo,
		resumes:    resumes,
		interviews: interviews,
		now:        func() time.Time { return time.Now().UTC() },
		log:        logger.OrNop(log),
	}
}

func (s *service) ListCandidates(ctx context.Context, actor auth.Actor, f Filter, srt Sort) ([]Candidate, error) {
	if !actor.IsHR() {
		return nil, ErrHROnly
	}
	if srt.By != "" && !srt.By.Valid() {
		return nil, apperrors.Validation(domain, "неизвестный ключ сортировки")
	}
	all, err := s.repo.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(all, f, srt), nil
}

func (s *service) CandidateDetails(ctx context.Context, actor auth.Actor, candidateID uuid.UUID) (CandidateDetails, error) {
	if !actor.IsHR() {
		return CandidateDetails{}, ErrHROnly
	}
	c, err := s.repo.GetCandidate(ctx, candidateID)
	if err != nil {
		return CandidateDetails{}, err
	}
	resumes, err := s.resumes.ListByOwner(ctx, candidateID)
	if err != nil {
		return CandidateDetails{}, err
	}
	d := CandidateDetails{Candidate: c, Resumes: resumes}
	if c.ResumeID != nil {
		a, err := s.resumes.CurrentAnalysis(ctx, *c.ResumeID)
		switch {
		case err == nil:
			d.Analysis = &a
		case !apperrors.IsKind(err, apperrors.KindNotFound):
			return CandidateDetails{}, err
		}
	}
	if d.Favorite, err = s.repo.FavoriteExists(ctx, actor.UserID, candidateID); err != nil {
		return CandidateDetails{}, err
	}
	return d, nil
}

// ToggleFavorite adds the candidate to the HR's favorites or overwrites the
// existing entry. Repeating the call never creates a second row. An explicit
// resumeID must belong to the candidate.
func (s *service) ToggleFavorite(ctx context.Context, actor auth.Actor, candidateID uuid.UUID, resumeID *uuid.UUID, notes string) (bool, error) {
	if !actor.IsHR() {
		return false, ErrHROnly
	}
	c, err := s.repo.GetCandidate(ctx, candidateID)
	if err != nil {
		return false, err
	}
	if resumeID == nil {
		resumeID = c.ResumeID
	} else if err := s.requireOwnResume(ctx, candidateID, *resumeID); err != nil {
		return false, err
	}
	f := Favorite{
		ID:              uuid.New(),
		HRUserID:        actor.UserID,
		CandidateUserID: candidateID,
		ResumeID:        resumeID,
		Notes:           strings.TrimSpace(notes),
		CreatedAt:       s.now(),
	}
	if err := s.repo.UpsertFavorite(ctx, f); err != nil {
		return false, err
	}
	s.log.Info("favorite saved", zap.String("hr_id", actor.UserID.String()), zap.String("candidate_id", candidateID.String()))
	return true, nil
}

func (s *service) requireOwnResume(ctx context.Context, candidateID, resumeID uuid.UUID) error {
	owned, err := s.resumes.ListByOwner(ctx, candidateID)
	if err != nil {
		return err
	}
	for _, r := range owned {
		if r.ID == resumeID {
			return nil
		}
	}
	return ErrForeignResume
}

func (s *service) RemoveFavorite(ctx context.Context, actor auth.Actor, candidateID uuid.UUID) error {
	if !actor.IsHR() {
		return ErrHROnly
	}
	return s.repo.DeleteFavorite(ctx, actor.UserID, candidateID)
}

func (s *service) IsFavorite(ctx context.Context, actor auth.Actor, candidateID uuid.UUID) (bool, error) {
	if !actor.IsHR() {
		return false, ErrHROnly
	}
	return s.repo.FavoriteExists(ctx, actor.UserID, candidateID)
}

func (s *service) ListFavorites(ctx context.Context, actor auth.Actor) ([]FavoriteView, error) {
	if !actor.IsHR() {
		return nil, ErrHROnly
	}
	return s.repo.ListFavorites(ctx, actor.UserID)
}

func (s *service) Analytics(ctx context.Context, actor auth.Actor) (Analytics, error) {
	if !actor.IsHR() {
		return Analytics{}, ErrHROnly
	}
	all, err := s.repo.ListCandidates(ctx)
	if err != nil {
		return Analytics{}, err
	}
	return Aggregate(all), nil
}

func (s *service) CandidateStats(ctx context.Context, actor auth.Actor) (CandidateStats, error) {
	resumes, err := s.resumes.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return CandidateStats{}, err
	}
	records, err := s.interviews.ListByUser(ctx, actor.UserID, 0)
	if err != nil {
		return CandidateStats{}, err
	}

	st := CandidateStats{ResumesTotal: len(resumes), Interviews: len(records)}
	for _, r := range resumes {
		if r.IsAnalyzed {
			st.ResumesAnalyzed++
		}
	}
	if len(records) > 0 {
		var sum float64
		for _, r := range records {
			sum += r.TotalScore
		}
		st.AverageInterview = math.Round(sum/float64(len(records))*10) / 10
	}
	st.RecentInterviews = records[:min(len(records), recentInterviews)]
	return st, nil
}
