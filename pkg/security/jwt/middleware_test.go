package jwt

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/recruit/pkg/auth"
)

const (
	testSecret = "test-secret"
	testIssuer = "recruit-test"
)

func newApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/", NewAuthMiddleware(testSecret, testIssuer))
	api.Get("/me", func(c *fiber.Ctx) error {
		actor, _ := ActorFrom(c)
		return c.SendString(string(actor.Role) + ":" + actor.UserID.String())
	})
	api.Get("/hr", RequireRole(auth.RoleHR), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })
	return app
}

func tokenFor(t *testing.T, gen *Generator, role auth.Role) (string, uuid.UUID) {
	t.Helper()
	id := uuid.New()
	tok, err := gen.Generate(context.Background(), auth.User{ID: id, Role: role, Username: "u"})
	require.NoError(t, err)
	return tok, id
}

func TestMiddlewareSetsActor(t *testing.T) {
	gen := NewGenerator(testSecret, testIssuer, time.Hour)
	tok, id := tokenFor(t, gen, auth.RoleCandidate)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := newApp().Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "candidate:"+id.String(), string(body))
}

func TestMiddlewareRejectsBadTokens(t *testing.T) {
	wrongIssuer, _ := tokenFor(t, NewGenerator(testSecret, "other", time.Hour), auth.RoleHR)
	expired, _ := tokenFor(t, NewGenerator(testSecret, testIssuer, -time.Minute), auth.RoleHR)
	wrongKey, _ := tokenFor(t, NewGenerator("another-secret", testIssuer, time.Hour), auth.RoleHR)

	for name, header := range map[string]string{
		"missing":      "",
		"wrong issuer": "Bearer " + wrongIssuer,
		"expired":      "Bearer " + expired,
		"wrong key":    wrongKey,
		"garbage":      "Bearer abc.def.ghi",
	} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := newApp().Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, name)
	}
}

func TestRequireRole(t *testing.T) {
	gen := NewGenerator(testSecret, testIssuer, time.Hour)
	candidate, _ := tokenFor(t, gen, auth.RoleCandidate)
	hr, _ := tokenFor(t, gen, auth.RoleHR)

	for tok, want := range map[string]int{candidate: http.StatusForbidden, hr: http.StatusNoContent} {
		req := httptest.NewRequest(http.MethodGet, "/hr", nil)
		req.Header.Set("Authorization", tok)
		resp, err := newApp().Test(req)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode)
	}
}

type userLookup map[uuid.UUID]auth.User

func (m userLookup) GetByID(_ context.Context, id uuid.UUID) (auth.User, error) {
	u, ok := m[id]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return u, nil
}

func TestActiveMiddlewareRejectsDeactivatedAccount(t *testing.T) {
	gen := NewGenerator(testSecret, testIssuer, time.Hour)
	active, activeID := tokenFor(t, gen, auth.RoleCandidate)
	deactivated, deactivatedID := tokenFor(t, gen, auth.RoleCandidate)
	unknown, _ := tokenFor(t, gen, auth.RoleCandidate)
	users := userLookup{
		activeID:      {ID: activeID, IsActive: true},
		deactivatedID: {ID: deactivatedID, IsActive: false},
	}

	app := fiber.New()
	app.Get("/me", NewActiveAuthMiddleware(testSecret, testIssuer, users), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})

	for tok, want := range map[string]int{
		active:      http.StatusNoContent,
		deactivated: http.StatusUnauthorized,
		unknown:     http.StatusUnauthorized,
	} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode)
	}
}
