package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/recruit/pkg/directory"
)

// candidateSelect joins every active candidate with the latest resume and the
// current analysis of that resume. %s is the LATERAL join kind.
const candidateSelect = `
	SELECT u.id, u.full_name, u.email, u.phone, u.location,
		r.id, r.filename, r.uploaded_at, r.detected_position, r.experience_level, r.skills,
		a.id, a.authenticity_score, a.verdict
	FROM users u
	%s JOIN LATERAL (
		SELECT id, filename, uploaded_at, detected_position, experience_level, skills
		FROM resumes
		WHERE owner_id = u.id
		ORDER BY uploaded_at DESC
		LIMIT 1
	) r ON TRUE
	LEFT JOIN resume_analyses a ON a.resume_id = r.id AND a.superseded_at IS NULL
	WHERE u.role = 'candidate' AND u.is_active`

var _ directory.Repository = (*DirectoryRepository)(nil)

// DirectoryRepository serves the HR candidate listing and favorites.
type DirectoryRepository struct {
	pool *pgxpool.Pool
}

func NewDirectoryRepository(pool *pgxpool.Pool) *DirectoryRepository {
	return &DirectoryRepository{pool: pool}
}

// scanCandidate reads the candidateSelect columns followed by extra.
func scanCandidate(row pgx.Row, extra ...any) (directory.Candidate, error) {
	var (
		c                               directory.Candidate
		filename, position, level, verd *string
		skills                          []byte
	)
	dest := append([]any{&c.UserID, &c.FullName, &c.Email, &c.Phone, &c.Location,
		&c.ResumeID, &filename, &c.UploadedAt, &position, &level, &skills,
		&c.AnalysisID, &c.Score, &verd}, extra...)
	if err := row.Scan(dest...); err != nil {
		return directory.Candidate{}, err
	}
	c.Filename = deref(filename)
	c.DetectedPosition = deref(position)
	c.ExperienceLevel = deref(level)
	c.Verdict = deref(verd)
	c.Skills = []string{}
	if skills != nil {
		if err := json.Unmarshal(skills, &c.Skills); err != nil {
			return directory.Candidate{}, fmt.Errorf("decode skills: %w", err)
		}
	}
	return c, nil
}

func (r *DirectoryRepository) ListCandidates(ctx context.Context) ([]directory.Candidate, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(candidateSelect, "")+` ORDER BY r.uploaded_at DESC`)
	if err != nil {
		return nil, translate(err, nil, nil)
	}
	defer rows.Close()

	out := []directory.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, translate(err, nil, nil)
		}
		out = append(out, c)
	}
	return out, translate(rows.Err(), nil, nil)
}

// GetCandidate also returns candidates without any resume.
func (r *DirectoryRepository) GetCandidate(ctx context.Context, userID uuid.UUID) (directory.Candidate, error) {
	c, err := scanCandidate(r.pool.QueryRow(ctx, fmt.Sprintf(candidateSelect, "LEFT")+` AND u.id = $1`, userID))
	return c, translate(err, directory.ErrCandidateNotFound, nil)
}

func (r *DirectoryRepository) UpsertFavorite(ctx context.Context, f directory.Favorite) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO favorites (id, hr_user_id, candidate_user_id, resume_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (hr_user_id, candidate_user_id)
		DO UPDATE SET notes = EXCLUDED.notes, resume_id = EXCLUDED.resume_id
	`, f.ID, f.HRUserID, f.CandidateUserID, f.ResumeID, f.Notes, f.CreatedAt)
	return translate(err, nil, nil)
}

// DeleteFavorite is a no-op when the pair is not bookmarked.
func (r *DirectoryRepository) DeleteFavorite(ctx context.Context, hrID, candidateID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM favorites WHERE hr_user_id = $1 AND candidate_user_id = $2`, hrID, candidateID)
	return translate(err, nil, nil)
}

func (r *DirectoryRepository) FavoriteExists(ctx context.Context, hrID, candidateID uuid.UUID) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM favorites WHERE hr_user_id = $1 AND candidate_user_id = $2)
	`, hrID, candidateID).Scan(&ok)
	return ok, translate(err, nil, nil)
}

func (r *DirectoryRepository) ListFavorites(ctx context.Context, hrID uuid.UUID) ([]directory.FavoriteView, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(candidateSelect, "LEFT")+`
		AND u.id IN (SELECT candidate_user_id FROM favorites WHERE hr_user_id = $1)
	`, hrID)
	if err != nil {
		return nil, translate(err, nil, nil)
	}
	byUser := map[uuid.UUID]directory.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			rows.Close()
			return nil, translate(err, nil, nil)
		}
		byUser[c.UserID] = c
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, translate(err, nil, nil)
	}

	favRows, err := r.pool.Query(ctx, `
		SELECT id, hr_user_id, candidate_user_id, resume_id, notes, created_at
		FROM favorites
		WHERE hr_user_id = $1
		ORDER BY created_at DESC
	`, hrID)
	if err != nil {
		return nil, translate(err, nil, nil)
	}
	defer favRows.Close()

	out := []directory.FavoriteView{}
	for favRows.Next() {
		var f directory.Favorite
		if err := favRows.Scan(&f.ID, &f.HRUserID, &f.CandidateUserID, &f.ResumeID, &f.Notes, &f.CreatedAt); err != nil {
			return nil, translate(err, nil, nil)
		}
		c, ok := byUser[f.CandidateUserID]
		if !ok {
			// deactivated candidate
			continue
		}
		out = append(out, directory.FavoriteView{Favorite: f, Candidate: c})
	}
	return out, translate(favRows.Err(), nil, nil)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
