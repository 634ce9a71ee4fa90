package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/api/http/presenter"
	"github.com/artem13815/recruit/pkg/interview"
	"github.com/artem13815/recruit/pkg/logger"
)

const defaultQuestionCount = 5

type InterviewHandler struct {
	svc interview.UseCase
	log *zap.Logger
}

func NewInterviewHandler(svc interview.UseCase, log *zap.Logger) *InterviewHandler {
	return &InterviewHandler{svc: svc, log: logger.OrNop(log)}
}

// sessionView is a session plus the derived fields a client renders.
type sessionView struct {
	*interview.Session
	TypeLabel       string `json:"typeLabel"`
	CurrentQuestion string `json:"currentQuestion,omitempty"`
	Answered        int    `json:"answered"`
	Total           int    `json:"total"`
	DurationSeconds int    `json:"durationSeconds"`
}

func newSessionView(s *interview.Session) sessionView {
	v := sessionView{Session: s, TypeLabel: s.Type.Label()}
	v.CurrentQuestion, _ = s.CurrentQuestion()
	v.Answered, v.Total = s.Progress()
	v.DurationSeconds = int(s.Duration(time.Now()).Seconds())
	return v
}

type startRequest struct {
	ResumeID *uuid.UUID `json:"resumeId"`
	Type     string     `json:"type" enums:"Technical,Behavioral,Comprehensive"`
	Count    int        `json:"count"`
}

// Start
// @Summary     Начать собеседование
// @Description Вопросы подбираются по должности и уровню из резюме; без резюме используется общий набор.
// @Tags        Собеседование
// @Accept      json
// @Produce     json
// @Param       input body startRequest true "параметры"
// @Security    BearerAuth
// @Success     201 {object} sessionView
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     409 {object} presenter.ErrorResponse
// @Router      /interviews [post]
func (h *InterviewHandler) Start(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req startRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
		}
	}
	in := interview.StartInput{Type: interview.Type(req.Type), Count: req.Count}
	if in.Count == 0 {
		in.Count = defaultQuestionCount
	}
	if req.ResumeID != nil {
		in.ResumeID = *req.ResumeID
	}
	sess, err := h.svc.Start(c.Context(), actor, in)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusCreated, newSessionView(sess))
}

// Current
// @Summary  Текущее собеседование
// @Tags     Собеседование
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} sessionView
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /interviews/current [get]
func (h *InterviewHandler) Current(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	sess, err := h.svc.Current(c.Context(), actor)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, newSessionView(sess))
}

type answerRequest struct {
	Answer string `json:"answer"`
}

type answerResponse struct {
	Evaluation interview.Evaluation `json:"evaluation"`
	Session    sessionView          `json:"session"`
}

// Answer
// @Summary  Ответить на текущий вопрос
// @Tags     Собеседование
// @Accept   json
// @Produce  json
// @Param    input body answerRequest true "ответ"
// @Security BearerAuth
// @Success  200 {object} answerResponse
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /interviews/answer [post]
func (h *InterviewHandler) Answer(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	res, err := h.svc.Submit(c.Context(), actor, req.Answer)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, answerResponse{Evaluation: res.Evaluation, Session: newSessionView(res.Session)})
}

// Abort
// @Summary  Прервать собеседование
// @Tags     Собеседование
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} sessionView
// @Router   /interviews/abort [post]
func (h *InterviewHandler) Abort(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	sess, err := h.svc.Abort(c.Context(), actor)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, newSessionView(sess))
}

// Results
// @Summary  Итоги завершённого собеседования
// @Tags     Собеседование
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} interview.Results
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /interviews/results [get]
func (h *InterviewHandler) Results(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	res, err := h.svc.Results(c.Context(), actor)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Save
// @Summary  Сохранить результаты в историю
// @Tags     Собеседование
// @Produce  json
// @Security BearerAuth
// @Success  201 {object} interview.Record
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /interviews/save [post]
func (h *InterviewHandler) Save(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	rec, err := h.svc.Save(c.Context(), actor)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusCreated, rec)
}

// Reset
// @Summary  Сбросить текущее собеседование
// @Tags     Собеседование
// @Security BearerAuth
// @Success  204
// @Router   /interviews [delete]
func (h *InterviewHandler) Reset(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.svc.Reset(c.Context(), actor); err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// History
// @Summary  История собеседований
// @Tags     Собеседование
// @Produce  json
// @Param    limit query int false "не более N записей"
// @Security BearerAuth
// @Success  200 {array} interview.Record
// @Router   /interviews/history [get]
func (h *InterviewHandler) History(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	items, err := h.svc.History(c.Context(), actor, parseLimit(c, 0))
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Record
// @Summary  Сохранённое собеседование
// @Tags     Собеседование
// @Produce  json
// @Param    id path string true "ID записи"
// @Security BearerAuth
// @Success  200 {object} interview.Record
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /interviews/history/{id} [get]
func (h *InterviewHandler) Record(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	rec, err := h.svc.GetRecord(c.Context(), actor, id)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, rec)
}
