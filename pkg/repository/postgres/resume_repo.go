package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/recruit/pkg/classifier"
	"github.com/artem13815/recruit/pkg/directory"
	"github.com/artem13815/recruit/pkg/resume"
)

const resumeMetaColumns = `id, owner_id, filename, mime_type, size_bytes, uploaded_at, extracted_text,
	detected_position, experience_level, skills, is_analyzed, analyzed_at`

const analysisColumns = `id, resume_id, owner_id, authenticity_score, detected_position, flags,
	recommendations, verdict, raw_payload, created_at, superseded_at`

var (
	_ resume.Repository      = (*ResumeRepository)(nil)
	_ directory.ResumeSource = (*ResumeRepository)(nil)
)

// ResumeRepository хранит резюме и их анализы.
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) *ResumeRepository {
	return &ResumeRepository{pool: pool}
}

func (r *ResumeRepository) CreateWithAnalysis(ctx context.Context, rs resume.Resume, a resume.Analysis) error {
	skills, err := json.Marshal(nonNil(rs.Skills))
	if err != nil {
		return err
	}
	err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO resumes (id, owner_id, filename, raw_bytes, mime_type, size_bytes, uploaded_at,
				extracted_text, detected_position, experience_level, skills, is_analyzed, analyzed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`, rs.ID, rs.OwnerID, rs.Filename, rs.RawBytes, rs.MimeType, rs.Size, rs.UploadedAt,
			rs.ExtractedText, rs.DetectedPosition, rs.ExperienceLevel, skills, rs.IsAnalyzed, rs.AnalyzedAt); err != nil {
			return err
		}
		return insertAnalysis(ctx, tx, a)
	})
	return translate(err, nil, nil)
}

func (r *ResumeRepository) AppendAnalysis(ctx context.Context, rs resume.Resume, a resume.Analysis) error {
	skills, err := json.Marshal(nonNil(rs.Skills))
	if err != nil {
		return err
	}
	err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			UPDATE resume_analyses SET superseded_at = $2
			WHERE resume_id = $1 AND superseded_at IS NULL
		`, rs.ID, a.CreatedAt); err != nil {
			return err
		}
		if err := insertAnalysis(ctx, tx, a); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `
			UPDATE resumes SET detected_position = $2, experience_level = $3, skills = $4,
				is_analyzed = TRUE, analyzed_at = $5
			WHERE id = $1
		`, rs.ID, rs.DetectedPosition, rs.ExperienceLevel, skills, rs.AnalyzedAt)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return resume.ErrNotFound
		}
		return nil
	})
	return translate(err, resume.ErrNotFound, nil)
}

func insertAnalysis(ctx context.Context, tx pgx.Tx, a resume.Analysis) error {
	flags, err := json.Marshal(nonNil(a.Flags))
	if err != nil {
		return err
	}
	recs, err := json.Marshal(nonNil(a.Recommendations))
	if err != nil {
		return err
	}
	payload, err := json.Marshal(a.RawPayload)
	if err != nil {
		return fmt.Errorf("encode analysis payload: %w", err)
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO resume_analyses (`+analysisColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULL)
	`, a.ID, a.ResumeID, a.OwnerID, a.Score, a.Position, flags, recs, string(a.Verdict), payload, a.CreatedAt)
	return err
}

func scanResumeMeta(row pgx.Row, extra ...any) (resume.Resume, error) {
	var rs resume.Resume
	var skills []byte
	dest := append([]any{&rs.ID, &rs.OwnerID, &rs.Filename, &rs.MimeType, &rs.Size, &rs.UploadedAt,
		&rs.ExtractedText, &rs.DetectedPosition, &rs.ExperienceLevel, &skills, &rs.IsAnalyzed, &rs.AnalyzedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return resume.Resume{}, err
	}
	if err := json.Unmarshal(skills, &rs.Skills); err != nil {
		return resume.Resume{}, fmt.Errorf("decode skills: %w", err)
	}
	return rs, nil
}

func (r *ResumeRepository) Get(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	rs, err := scanResumeMeta(r.pool.QueryRow(ctx, `SELECT `+resumeMetaColumns+` FROM resumes WHERE id = $1`, id))
	return rs, translate(err, resume.ErrNotFound, nil)
}

func (r *ResumeRepository) GetFile(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	var raw []byte
	rs, err := scanResumeMeta(r.pool.QueryRow(ctx, `SELECT `+resumeMetaColumns+`, raw_bytes FROM resumes WHERE id = $1`, id), &raw)
	if err != nil {
		return resume.Resume{}, translate(err, resume.ErrNotFound, nil)
	}
	rs.RawBytes = raw
	return rs, nil
}

func (r *ResumeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]resume.Resume, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+resumeMetaColumns+` FROM resumes
		WHERE owner_id = $1
		ORDER BY uploaded_at DESC
	`, ownerID)
	if err != nil {
		return nil, translate(err, nil, nil)
	}
	defer rows.Close()

	out := []resume.Resume{}
	for rows.Next() {
		rs, err := scanResumeMeta(rows)
		if err != nil {
			return nil, translate(err, nil, nil)
		}
		out = append(out, rs)
	}
	return out, translate(rows.Err(), nil, nil)
}

func scanAnalysis(row pgx.Row) (resume.Analysis, error) {
	var a resume.Analysis
	var verdict string
	var flags, recs, payload []byte
	if err := row.Scan(&a.ID, &a.ResumeID, &a.OwnerID, &a.Score, &a.Position, &flags, &recs,
		&verdict, &payload, &a.CreatedAt, &a.SupersededAt); err != nil {
		return resume.Analysis{}, err
	}
	a.Verdict = classifier.Verdict(verdict)
	for _, f := range []struct {
		raw []byte
		dst any
	}{{flags, &a.Flags}, {recs, &a.Recommendations}, {payload, &a.RawPayload}} {
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return resume.Analysis{}, fmt.Errorf("decode analysis: %w", err)
		}
	}
	return a, nil
}

func (r *ResumeRepository) CurrentAnalysis(ctx context.Context, resumeID uuid.UUID) (resume.Analysis, error) {
	a, err := scanAnalysis(r.pool.QueryRow(ctx, `
		SELECT `+analysisColumns+` FROM resume_analyses
		WHERE resume_id = $1 AND superseded_at IS NULL
	`, resumeID))
	return a, translate(err, resume.ErrNoAnalysis, nil)
}

func (r *ResumeRepository) ListAnalyses(ctx context.Context, resumeID uuid.UUID) ([]resume.Analysis, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+analysisColumns+` FROM resume_analyses
		WHERE resume_id = $1
		ORDER BY created_at, superseded_at NULLS LAST
	`, resumeID)
	if err != nil {
		return nil, translate(err, nil, nil)
	}
	defer rows.Close()

	out := []resume.Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, translate(err, nil, nil)
		}
		out = append(out, a)
	}
	return out, translate(rows.Err(), nil, nil)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
