package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/recruit/pkg/auth"
	"github.com/artem13815/recruit/pkg/security/jwt"
)

// parseLimit reads ?limit=; zero means no limit.
func parseLimit(c *fiber.Ctx, defLimit int) int {
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			return n
		}
	}
	return defLimit
}

// requireActor returns the authenticated caller. The error is rendered by
// presenter.ErrorHandler.
func requireActor(c *fiber.Ctx) (auth.Actor, error) {
	actor, ok := jwt.ActorFrom(c)
	if !ok {
		return auth.Actor{}, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return actor, nil
}

func pathUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "некорректный идентификатор")
	}
	return id, nil
}
