package jwt

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/recruit/pkg/auth"
)

const (
	localUserID = "userId"
	localRole   = "role"
)

// UserLookup resolves a token subject to the stored account.
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (auth.User, error)
}

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success sets user id (subject) and role into c.Locals.
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	return newAuthMiddleware(secret, expectedIssuer, nil)
}

// NewActiveAuthMiddleware is NewAuthMiddleware that also loads the account on
// every request, so tokens of deactivated users stop working before expiry.
func NewActiveAuthMiddleware(secret, expectedIssuer string, users UserLookup) fiber.Handler {
	return newAuthMiddleware(secret, expectedIssuer, users)
}

func newAuthMiddleware(secret, expectedIssuer string, users UserLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		tokenStr := strings.TrimSpace(authHeader)
		if parts := strings.SplitN(tokenStr, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenStr = strings.TrimSpace(parts[1])
		}
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "empty token"})
		}
		claims, err := Parse(tokenStr, secret, expectedIssuer)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}
		if _, err := uuid.Parse(claims.Subject); err != nil || !claims.Role.Valid() {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token claims"})
		}
		if users != nil {
			u, err := users.GetByID(c.UserContext(), uuid.MustParse(claims.Subject))
			switch {
			case errors.Is(err, auth.ErrNotFound), err == nil && !u.IsActive:
				return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "учётная запись деактивирована"})
			case err != nil:
				return err
			}
		}
		c.Locals(localUserID, claims.Subject)
		c.Locals(localRole, string(claims.Role))
		return c.Next()
	}
}

// RequireRole rejects requests whose token role is not listed.
// Must run after NewAuthMiddleware.
func RequireRole(roles ...auth.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := ActorFrom(c)
		if !ok {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		if !slices.Contains(roles, actor.Role) {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{"message": "недостаточно прав"})
		}
		return c.Next()
	}
}

// ActorFrom reads the identity stored by NewAuthMiddleware.
func ActorFrom(c *fiber.Ctx) (auth.Actor, bool) {
	idStr, _ := c.Locals(localUserID).(string)
	role, _ := c.Locals(localRole).(string)
	id, err := uuid.Parse(idStr)
	if err != nil || role == "" {
		return auth.Actor{}, false
	}
	return auth.Actor{UserID: id, Role: auth.Role(role)}, true
}
