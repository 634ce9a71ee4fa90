package auth

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/recruit/pkg/apperrors"
	"github.com/artem13815/recruit/pkg/logger"
)

const minPasswordLen = 6

// AuthUseCase describes registration, login and profile maintenance.
type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (AuthResult, error)
	Login(ctx context.Context, login, password string) (AuthResult, error)
	Profile(ctx context.Context, id uuid.UUID) (User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, p ProfileUpdate) (User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, current, next, confirm string) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo   UserRepository
	tokens TokenGenerator
	cost   int
	now    func() time.Time
	log    *zap.Logger
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenGenerator, log *zap.Logger) AuthUseCase {
	return &authService{
		repo:   repo,
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
		now:    func() time.Time { return time.Now().UTC() },
		log:    logger.OrNop(log),
	}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)
	in.FullName = strings.TrimSpace(in.FullName)

	if in.Email == "" || in.Username == "" || in.FullName == "" || in.Password == "" {
		return AuthResult{}, apperrors.Validation(domain, "email, логин, имя и пароль обязательны")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return AuthResult{}, apperrors.Validation(domain, "некорректный email")
	}
	if in.Password != in.PasswordConfirm {
		return AuthResult{}, ErrPasswordMismatch
	}
	if len([]rune(in.Password)) < minPasswordLen {
		return AuthResult{}, apperrors.Validation(domain, "пароль должен содержать не менее 6 символов")
	}
	if in.Role == "" {
		in.Role = RoleCandidate
	}
	if !in.Role.Valid() {
		return AuthResult{}, apperrors.Validation(domain, "неизвестная роль пользователя")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return AuthResult{}, err
	}
	user := User{
		ID:           uuid.New(),
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         in.Role,
		Company:      strings.TrimSpace(in.Company),
		Position:     strings.TrimSpace(in.Position),
		Phone:        strings.TrimSpace(in.Phone),
		Location:     strings.TrimSpace(in.Location),
		IsActive:     true,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}
	s.log.Info("user registered", zap.String("user_id", user.ID.String()), zap.String("role", string(user.Role)))

	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, login, password string) (AuthResult, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return AuthResult{}, apperrors.Validation(domain, "логин и пароль обязательны")
	}
	user, err := s.repo.GetByLogin(ctx, login)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}
	if !user.IsActive {
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	now := s.now()
	if err := s.repo.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.log.Warn("failed to update last login", zap.String("user_id", user.ID.String()), zap.Error(err))
	} else {
		user.LastLogin = &now
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Profile(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authService) UpdateProfile(ctx context.Context, id uuid.UUID, p ProfileUpdate) (User, error) {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Username = strings.TrimSpace(p.Username)
	p.FullName = strings.TrimSpace(p.FullName)
	if p.Email == "" || p.Username == "" || p.FullName == "" {
		return User{}, apperrors.Validation(domain, "email, логин и имя обязательны")
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return User{}, apperrors.Validation(domain, "некорректный email")
	}
	return s.repo.UpdateProfile(ctx, id, p)
}

func (s *authService) ChangePassword(ctx context.Context, id uuid.UUID, current, next, confirm string) error {
	if next != confirm {
		return ErrPasswordMismatch
	}
	if len([]rune(next)) < minPasswordLen {
		return apperrors.Validation(domain, "пароль должен содержать не менее 6 символов")
	}
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.cost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, id, string(hash))
}

func (s *authService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SetActive(ctx, id, false); err != nil {
		return err
	}
	s.log.Info("user deactivated", zap.String("user_id", id.String()))
	return nil
}
