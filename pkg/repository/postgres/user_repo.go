package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/recruit/pkg/auth"
)

const userColumns = `id, email, username, password_hash, full_name, role, company, position, phone, location, is_active, created_at, last_login`

// UserRepository implements auth.UserRepository backed by PostgreSQL (pgx).
var _ auth.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (auth.User, error) {
	var u auth.User
	var role string
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.FullName, &role,
		&u.Company, &u.Position, &u.Phone, &u.Location, &u.IsActive, &u.CreatedAt, &u.LastLogin); err != nil {
		return auth.User{}, err
	}
	u.Role = auth.Role(role)
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u auth.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, u.ID, strings.ToLower(u.Email), u.Username, u.PasswordHash, u.FullName, string(u.Role),
		u.Company, u.Position, u.Phone, u.Location, u.IsActive, u.CreatedAt, u.LastLogin)
	return translate(err, nil, auth.ErrUserAlreadyExists)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	return u, translate(err, auth.ErrNotFound, nil)
}

func (r *UserRepository) GetByLogin(ctx context.Context, login string) (auth.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE username = $1 OR email = lower($1)
		ORDER BY username = $1 DESC
		LIMIT 1
	`, login))
	return u, translate(err, auth.ErrNotFound, nil)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, p auth.ProfileUpdate) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET email = $2, username = $3, full_name = $4,
			company = $5, position = $6, phone = $7, location = $8
		WHERE id = $1
		RETURNING `+userColumns,
		id, strings.ToLower(p.Email), p.Username, p.FullName, p.Company, p.Position, p.Phone, p.Location)
	u, err := scanUser(row)
	if err != nil {
		return auth.User{}, translate(err, auth.ErrNotFound, auth.ErrUserAlreadyExists)
	}
	return u, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.execOne(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, hash)
}

func (r *UserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.execOne(ctx, `UPDATE users SET is_active = $2 WHERE id = $1`, id, active)
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.execOne(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, id, at)
}

func (r *UserRepository) execOne(ctx context.Context, sql string, args ...any) error {
	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return translate(err, nil, nil)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrNotFound
	}
	return nil
}
