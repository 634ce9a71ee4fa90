package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/recruit/pkg/admin"
)

var _ admin.Executor = (*AdminExecutor)(nil)

// AdminExecutor runs console statements against the application database.
type AdminExecutor struct {
	pool *pgxpool.Pool
}

func NewAdminExecutor(pool *pgxpool.Pool) *AdminExecutor {
	return &AdminExecutor{pool: pool}
}

// Query runs q in a read-only transaction that is always rolled back.
func (e *AdminExecutor) Query(ctx context.Context, q string, maxRows int) ([]string, [][]any, error) {
	tx, err := e.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Name
	}
	out := [][]any{}
	for rows.Next() {
		if maxRows > 0 && len(out) >= maxRows {
			break
		}
		vals, err := rows.Values()
		if err != nil {
			return nil, nil, err
		}
		for i, v := range vals {
			vals[i] = displayValue(v)
		}
		out = append(out, vals)
	}
	return cols, out, rows.Err()
}

func displayValue(v any) any {
	switch t := v.(type) {
	case [16]byte:
		return uuid.UUID(t).String()
	case []byte:
		return fmt.Sprintf("<%d bytes>", len(t))
	default:
		return v
	}
}

func (e *AdminExecutor) Exec(ctx context.Context, q string) (int64, error) {
	tag, err := e.pool.Exec(ctx, q)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (e *AdminExecutor) Tables(ctx context.Context) ([]string, error) {
	rows, err := e.pool.Query(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (e *AdminExecutor) TableStats(ctx context.Context) ([]admin.TableStat, error) {
	tables, err := e.Tables(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]admin.TableStat, 0, len(tables))
	for _, t := range tables {
		st := admin.TableStat{Table: t}
		q := "SELECT count(*) FROM " + pgx.Identifier{t}.Sanitize()
		if err := e.pool.QueryRow(ctx, q).Scan(&st.Rows); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}
