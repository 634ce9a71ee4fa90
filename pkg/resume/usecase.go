package resume

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/pkg/apperrors"
	"github.com/artem13815/recruit/pkg/auth"
	"github.com/artem13815/recruit/pkg/classifier"
	"github.com/artem13815/recruit/pkg/logger"
)

// Upload is a file received from a candidate.
type Upload struct {
	Filename string
	MimeType string
	Data     []byte
}

// Submission is a stored resume together with its current analysis.
type Submission struct {
	Resume   Resume   `json:"resume"`
	Analysis Analysis `json:"analysis"`
}

// Details is a resume with its current analysis, if any.
type Details struct {
	Resume   Resume    `json:"resume"`
	Analysis *Analysis `json:"analysis,omitempty"`
}

// File is a downloadable resume body.
type File struct {
	Filename string
	MimeType string
	Data     []byte
}

// UseCase covers resume ingestion, analysis and retrieval.
type UseCase interface {
	Submit(ctx context.Context, actor auth.Actor, up Upload) (Submission, error)
	SubmitText(ctx context.Context, actor auth.Actor, filename, text string) (Submission, error)
	Reanalyze(ctx context.Context, actor auth.Actor, id uuid.UUID) (Analysis, error)
	List(ctx context.Context, actor auth.Actor) ([]Resume, error)
	Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (Details, error)
	Download(ctx context.Context, actor auth.Actor, id uuid.UUID) (File, error)
	Analyses(ctx context.Context, actor auth.Actor, id uuid.UUID) ([]Analysis, error)
}

type service struct {
	repo     Repository
	analyzer classifier.Analyzer
	maxBytes int64
	now      func() time.Time
	log      *zap.Logger
}

// NewService wires the resume pipeline. maxBytes <= 0 disables the size limit.
func NewService(repo Repository, analyzer classifier.Analyzer, maxBytes int64, log *zap.Logger) UseCase {
	return &service{
		repo:     repo,
		analyzer: analyzer,
		maxBytes: maxBytes,
		now:      func() time.Time { return time.Now().UTC() },
		log:      logger.OrNop(log),
	}
}

func (s *service) Submit(ctx context.Context, actor auth.Actor, up Upload) (Submission, error) {
	if !actor.IsCandidate() {
		return Submission{}, apperrors.Forbidden(domain, "загружать резюме могут только кандидаты")
	}
	if len(up.Data) == 0 {
		return Submission{}, ErrEmptyFile
	}
	if s.maxBytes > 0 && int64(len(up.Data)) > s.maxBytes {
		return Submission{}, ErrTooLarge
	}
	format := Format(up.Filename, up.MimeType)
	if format == "" {
		return Submission{}, ErrUnsupported
	}
	text := ExtractText(up.Filename, format, up.Data)
	return s.store(ctx, actor, up.Filename, format, up.Data, text)
}

func (s *service) SubmitText(ctx context.Context, actor auth.Actor, filename, text string) (Submission, error) {
	if !actor.IsCandidate() {
		return Submission{}, apperrors.Forbidden(domain, "загружать резюме могут только кандидаты")
	}
	if strings.TrimSpace(text) == "" {
		return Submission{}, ErrEmptyText
	}
	filename = strings.TrimSpace(filename)
	if filename == "" {
		filename = "resume.txt"
	}
	return s.store(ctx, actor, filename, MimeText, []byte(text), text)
}

func (s *service) store(ctx context.Context, actor auth.Actor, filename, mime string, data []byte, text string) (Submission, error) {
	now := s.now()
	r := Resume{
		ID:            uuid.New(),
		OwnerID:       actor.UserID,
		Filename:      filename,
		RawBytes:      data,
		MimeType:      mime,
		Size:          int64(len(data)),
		UploadedAt:    now,
		ExtractedText: text,
	}
	res := s.analyzer.Analyze(ctx, text, filename)
	r.apply(res, now)
	a := NewAnalysis(r.ID, r.OwnerID, res, now)

	if err := s.repo.CreateWithAnalysis(ctx, r, a); err != nil {
		return Submission{}, err
	}
	s.log.Info("resume stored",
		zap.String("resume_id", r.ID.String()),
		zap.String("owner_id", r.OwnerID.String()),
		zap.Float64("score", a.Score),
		zap.String("verdict", string(a.Verdict)),
		zap.String("engine", res.Engine),
	)
	r.RawBytes = nil
	return Submission{Resume: r, Analysis: a}, nil
}

func (s *service) Reanalyze(ctx context.Context, actor auth.Actor, id uuid.UUID) (Analysis, error) {
	r, err := s.visible(ctx, actor, id)
	if err != nil {
		return Analysis{}, err
	}
	now := s.now()
	res := s.analyzer.Analyze(ctx, r.ExtractedText, r.Filename)
	r.apply(res, now)
	a := NewAnalysis(r.ID, r.OwnerID, res, now)
	if err := s.repo.AppendAnalysis(ctx, r, a); err != nil {
		return Analysis{}, err
	}
	s.log.Info("resume reanalyzed", zap.String("resume_id", r.ID.String()), zap.Float64("score", a.Score))
	return a, nil
}

func (s *service) List(ctx context.Context, actor auth.Actor) ([]Resume, error) {
	return s.repo.ListByOwner(ctx, actor.UserID)
}

func (s *service) Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (Details, error) {
	r, err := s.visible(ctx, actor, id)
	if err != nil {
		return Details{}, err
	}
	d := Details{Resume: r}
	a, err := s.repo.CurrentAnalysis(ctx, id)
	switch {
	case err == nil:
		d.Analysis = &a
	case apperrors.IsKind(err, apperrors.KindNotFound):
	default:
		return Details{}, err
	}
	return d, nil
}

func (s *service) Download(ctx context.Context, actor auth.Actor, id uuid.UUID) (File, error) {
	if _, err := s.visible(ctx, actor, id); err != nil {
		return File{}, err
	}
	r, err := s.repo.GetFile(ctx, id)
	if err != nil {
		return File{}, err
	}
	mime := r.MimeType
	if mime == "" {
		mime = "application/octet-stream"
	}
	return File{Filename: r.Filename, MimeType: mime, Data: r.RawBytes}, nil
}

func (s *service) Analyses(ctx context.Context, actor auth.Actor, id uuid.UUID) ([]Analysis, error) {
	if _, err := s.visible(ctx, actor, id); err != nil {
		return nil, err
	}
	return s.repo.ListAnalyses(ctx, id)
}

// visible loads a resume the actor may see: HR sees every resume, a candidate only their own.
func (s *service) visible(ctx context.Context, actor auth.Actor, id uuid.UUID) (Resume, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return Resume{}, err
	}
	if !actor.IsHR() && r.OwnerID != actor.UserID {
		return Resume{}, ErrNotFound
	}
	return r, nil
}
