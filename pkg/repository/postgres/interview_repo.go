package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/recruit/pkg/interview"
)

const interviewColumns = `id, user_id, resume_id, interview_type, position, questions, answers,
	evaluations, feedback, total_score, duration_seconds, created_at`

var _ interview.RecordRepository = (*InterviewRepository)(nil)

type InterviewRepository struct {
	pool *pgxpool.Pool
}

func NewInterviewRepository(pool *pgxpool.Pool) *InterviewRepository {
	return &InterviewRepository{pool: pool}
}

func (r *InterviewRepository) Create(ctx context.Context, rec interview.Record) error {
	enc := func(v any) []byte {
		b, _ := json.Marshal(v)
		return b
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO interviews (`+interviewColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, rec.ID, rec.UserID, rec.ResumeID, string(rec.Type), rec.Position,
		enc(nonNil(rec.Questions)), enc(nonNil(rec.Answers)), enc(nonNilEvaluations(rec.Evaluations)), enc(rec.Feedback),
		rec.TotalScore, rec.DurationSeconds, rec.CreatedAt)
	return translate(err, nil, interview.ErrRecordExists)
}

func scanRecord(row pgx.Row) (interview.Record, error) {
	var (
		rec                                 interview.Record
		typ                                 string
		questions, answers, evals, feedback []byte
	)
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.ResumeID, &typ, &rec.Position, &questions, &answers,
		&evals, &feedback, &rec.TotalScore, &rec.DurationSeconds, &rec.CreatedAt); err != nil {
		return interview.Record{}, err
	}
	rec.Type = interview.Type(typ)
	for _, f := range []struct {
		raw []byte
		dst any
	}{{questions, &rec.Questions}, {answers, &rec.Answers}, {evals, &rec.Evaluations}, {feedback, &rec.Feedback}} {
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return interview.Record{}, fmt.Errorf("decode interview: %w", err)
		}
	}
	return rec, nil
}

func (r *InterviewRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]interview.Record, error) {
	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+interviewColumns+` FROM interviews
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, lim)
	if err != nil {
		return nil, translate(err, nil, nil)
	}
	defer rows.Close()

	out := []interview.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, translate(err, nil, nil)
		}
		out = append(out, rec)
	}
	return out, translate(rows.Err(), nil, nil)
}

func (r *InterviewRepository) GetForUser(ctx context.Context, userID, id uuid.UUID) (interview.Record, error) {
	rec, err := scanRecord(r.pool.QueryRow(ctx, `
		SELECT `+interviewColumns+` FROM interviews WHERE id = $1 AND user_id = $2
	`, id, userID))
	return rec, translate(err, interview.ErrNoRecord, nil)
}

func nonNilEvaluations(e []interview.Evaluation) []interview.Evaluation {
	if e == nil {
		return []interview.Evaluation{}
	}
	return e
}
