package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/recruit/pkg/apperrors"
)

const domain = "auth"

// Common errors used by repository/use cases
var (
	ErrNotFound           = apperrors.NotFound(domain, "пользователь не найден")
	ErrUserAlreadyExists  = apperrors.Conflict(domain, "пользователь с таким email или логином уже существует")
	ErrInvalidCredentials = apperrors.New(apperrors.KindUnauthorized, domain, "неверный логин или пароль")
	ErrPasswordMismatch   = apperrors.Validation(domain, "пароли не совпадают")
	ErrWrongPassword      = apperrors.Validation(domain, "текущий пароль указан неверно")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Unique violations on email or username surface as ErrUserAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	// GetByLogin matches either username or email.
	GetByLogin(ctx context.Context, login string) (User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, p ProfileUpdate) (User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
