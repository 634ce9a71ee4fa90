package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/api/http/presenter"
	"github.com/artem13815/recruit/pkg/admin"
	"github.com/artem13815/recruit/pkg/logger"
)

// AdminHandler exposes the SQL console to HR users.
type AdminHandler struct {
	console *admin.Console
	log     *zap.Logger
}

func NewAdminHandler(console *admin.Console, log *zap.Logger) *AdminHandler {
	return &AdminHandler{console: console, log: logger.OrNop(log)}
}

// Tables
// @Summary  Таблицы базы данных
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} string
// @Router   /admin/tables [get]
func (h *AdminHandler) Tables(c *fiber.Ctx) error {
	tables, err := h.console.Tables(c.Context())
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, tables)
}

// Stats
// @Summary  Количество строк по таблицам
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} admin.TableStat
// @Router   /admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.console.TableStats(c.Context())
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, stats)
}

type queryRequest struct {
	Query string `json:"query"`
}

// Query runs one SQL statement. Statement errors are returned in the body
// with status 200.
// @Summary  Выполнить SQL-запрос
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    input body queryRequest true "SQL"
// @Security BearerAuth
// @Success  200 {object} admin.Result
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /admin/query [post]
func (h *AdminHandler) Query(c *fiber.Ctx) error {
	var req queryRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Query) == "" {
		return presenter.Error(c, http.StatusBadRequest, "пустой запрос")
	}
	return presenter.JSON(c, http.StatusOK, h.console.Execute(c.Context(), req.Query))
}
