package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/pkg/apperrors"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

const internalMessage = "внутренняя ошибка сервера"

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Status maps an error kind to the HTTP status code.
func Status(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict, apperrors.KindInvalidState:
		return http.StatusConflict
	case apperrors.KindDegradedInput:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes err as {"message": ...}. Server-side failures are logged and
// their details are not exposed.
func Fail(c *fiber.Ctx, log *zap.Logger, err error) error {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		if log != nil {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return Error(c, status, internalMessage)
	}
	return Error(c, status, apperrors.Message(err))
}

// ErrorHandler renders errors returned from handlers, including *fiber.Error
// raised by routing and middleware, as {"message": ...}.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return Error(c, fe.Code, fe.Message)
		}
		return Fail(c, log, err)
	}
}
