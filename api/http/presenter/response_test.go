package presenter

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/recruit/pkg/apperrors"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperrors.Validation("x", "bad"), http.StatusBadRequest},
		{apperrors.New(apperrors.KindUnauthorized, "x", "no"), http.StatusUnauthorized},
		{apperrors.Forbidden("x", "no"), http.StatusForbidden},
		{apperrors.NotFound("x", "none"), http.StatusNotFound},
		{apperrors.Conflict("x", "dup"), http.StatusConflict},
		{apperrors.InvalidState("x", "state"), http.StatusConflict},
		{apperrors.New(apperrors.KindDegradedInput, "x", "unreadable"), http.StatusUnprocessableEntity},
		{apperrors.Storage("x", errors.New("conn reset")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err), tc.err.Error())
	}
}

func TestFailHidesInternalDetails(t *testing.T) {
	app := fiber.New()
	app.Get("/storage", func(c *fiber.Ctx) error {
		return Fail(c, nil, apperrors.Storage("x", errors.New("password=secret")))
	})
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return Fail(c, nil, apperrors.Conflict("x", "уже существует"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/storage", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, string(body), "secret")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/conflict", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.JSONEq(t, `{"message":"уже существует"}`, string(body))
}
