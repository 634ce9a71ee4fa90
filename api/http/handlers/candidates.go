package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/api/http/presenter"
	"github.com/artem13815/recruit/pkg/directory"
	"github.com/artem13815/recruit/pkg/logger"
)

// DirectoryHandler serves the HR candidate directory and candidate stats.
type DirectoryHandler struct {
	svc directory.UseCase
	log *zap.Logger
}

func NewDirectoryHandler(svc directory.UseCase, log *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{svc: svc, log: logger.OrNop(log)}
}

// ListCandidates
// @Summary  Список кандидатов
// @Tags     HR
// @Produce  json
// @Param    q        query string false "поиск по имени, email, должности и навыкам"
// @Param    position query string false "точное совпадение должности"
// @Param    sort     query string false "recency | score | name"
// @Param    desc     query bool   false "по убыванию"
// @Security BearerAuth
// @Success  200 {array}  directory.Candidate
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  403 {object} presenter.ErrorResponse
// @Router   /candidates [get]
func (h *DirectoryHandler) ListCandidates(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	s := directory.Sort{By: directory.SortKey(strings.ToLower(c.Query("sort", string(directory.SortRecency))))}
	if !s.By.Valid() {
		return presenter.Error(c, http.StatusBadRequest, "sort: допустимо recency, score или name")
	}
	if v := c.Query("desc"); v != "" {
		if s.Desc, err = strconv.ParseBool(v); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "desc: ожидается true или false")
		}
	}
	f := directory.Filter{Search: c.Query("q"), Position: c.Query("position")}

	items, err := h.svc.ListCandidates(c.Context(), actor, f, s)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// CandidateDetails
// @Summary  Карточка кандидата
// @Tags     HR
// @Produce  json
// @Param    id path string true "ID кандидата"
// @Security BearerAuth
// @Success  200 {object} directory.CandidateDetails
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /candidates/{id} [get]
func (h *DirectoryHandler) CandidateDetails(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	d, err := h.svc.CandidateDetails(c.Context(), actor, id)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, d)
}

type favoriteRequest struct {
	ResumeID *uuid.UUID `json:"resumeId"`
	Notes    string     `json:"notes"`
}

// PutFavorite adds a candidate to favorites or overwrites the notes.
// @Summary  Добавить в избранное
// @Tags     HR
// @Accept   json
// @Produce  json
// @Param    candidateId path string          true  "ID кандидата"
// @Param    input       body favoriteRequest false "заметки"
// @Security BearerAuth
// @Success  200 {object} map[string]bool
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /favorites/{candidateId} [put]
func (h *DirectoryHandler) PutFavorite(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "candidateId")
	if err != nil {
		return err
	}
	var req favoriteRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
		}
	}
	ok, err := h.svc.ToggleFavorite(c.Context(), actor, id, req.ResumeID, req.Notes)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"favorite": ok})
}

// DeleteFavorite
// @Summary  Убрать из избранного
// @Tags     HR
// @Param    candidateId path string true "ID кандидата"
// @Security BearerAuth
// @Success  204
// @Router   /favorites/{candidateId} [delete]
func (h *DirectoryHandler) DeleteFavorite(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "candidateId")
	if err != nil {
		return err
	}
	if err := h.svc.RemoveFavorite(c.Context(), actor, id); err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// IsFavorite
// @Summary  Кандидат в избранном?
// @Tags     HR
// @Produce  json
// @Param    candidateId path string true "ID кандидата"
// @Security BearerAuth
// @Success  200 {object} map[string]bool
// @Router   /favorites/{candidateId} [get]
func (h *DirectoryHandler) IsFavorite(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "candidateId")
	if err != nil {
		return err
	}
	ok, err := h.svc.IsFavorite(c.Context(), actor, id)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"favorite": ok})
}

// ListFavorites
// @Summary  Избранные кандидаты
// @Tags     HR
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} directory.FavoriteView
// @Router   /favorites [get]
func (h *DirectoryHandler) ListFavorites(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	items, err := h.svc.ListFavorites(c.Context(), actor)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Analytics
// @Summary  Аналитика по кандидатам
// @Tags     HR
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} directory.Analytics
// @Router   /analytics [get]
func (h *DirectoryHandler) Analytics(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	a, err := h.svc.Analytics(c.Context(), actor)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, a)
}

// Stats returns the caller's own resume and interview summary.
// @Summary  Моя статистика
// @Tags     profile
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} directory.CandidateStats
// @Router   /me/stats [get]
func (h *DirectoryHandler) Stats(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	st, err := h.svc.CandidateStats(c.Context(), actor)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, st)
}
