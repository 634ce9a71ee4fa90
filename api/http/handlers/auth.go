package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/api/http/presenter"
	"github.com/artem13815/recruit/pkg/auth"
	"github.com/artem13815/recruit/pkg/logger"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
	log     *zap.Logger
}

func NewAuthHandler(useCase auth.AuthUseCase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{useCase: useCase, log: logger.OrNop(log)}
}

type registerRequest struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
	FullName        string `json:"fullName"`
	Role            string `json:"role" enums:"candidate,hr"`
	Company         string `json:"company"`
	Position        string `json:"position"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
}

type authResponse struct {
	User  auth.User `json:"user"`
	Token string    `json:"token"`
}

// Register handles user registration.
// @Summary Регистрация пользователя
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "регистрационные данные"
// @Success 201 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	result, err := h.useCase.Register(c.Context(), auth.RegisterInput{
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		FullName:        req.FullName,
		Role:            auth.Role(strings.ToLower(strings.TrimSpace(req.Role))),
		Company:         req.Company,
		Position:        req.Position,
		Phone:           req.Phone,
		Location:        req.Location,
	})
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusCreated, authResponse{User: result.User, Token: result.Token})
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Login handles user login.
// @Summary Вход по логину или email
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "учётные данные"
// @Success 200 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Login) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "логин и пароль обязательны")
	}

	result, err := h.useCase.Login(c.Context(), strings.TrimSpace(req.Login), req.Password)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, authResponse{User: result.User, Token: result.Token})
}

// Me returns the caller's profile.
// @Summary  Профиль текущего пользователя
// @Tags     profile
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} auth.User
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	u, err := h.useCase.Profile(c.Context(), actor.UserID)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, u)
}

type profileRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// UpdateMe overwrites the caller's profile. The role cannot be changed.
// @Summary  Обновить профиль
// @Tags     profile
// @Accept   json
// @Produce  json
// @Param    input body profileRequest true "поля профиля"
// @Security BearerAuth
// @Success  200 {object} auth.User
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /me [put]
func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	u, err := h.useCase.UpdateProfile(c.Context(), actor.UserID, auth.ProfileUpdate(req))
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, u)
}

type passwordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ChangePassword
// @Summary  Сменить пароль
// @Tags     profile
// @Accept   json
// @Param    input body passwordRequest true "текущий и новый пароль"
// @Security BearerAuth
// @Success  204
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /me/password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req passwordRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.useCase.ChangePassword(c.Context(), actor.UserID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Deactivate
// @Summary  Деактивировать учётную запись
// @Tags     profile
// @Security BearerAuth
// @Success  204
// @Router   /me/deactivate [post]
func (h *AuthHandler) Deactivate(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.useCase.Deactivate(c.Context(), actor.UserID); err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
