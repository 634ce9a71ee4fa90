package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/api/http/presenter"
	"github.com/artem13815/recruit/pkg/logger"
	"github.com/artem13815/recruit/pkg/resume"
)

type ResumesHandler struct {
	svc      resume.UseCase
	maxBytes int64
	log      *zap.Logger
}

func NewResumesHandler(svc resume.UseCase, maxBytes int64, log *zap.Logger) *ResumesHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20
	}
	return &ResumesHandler{svc: svc, maxBytes: maxBytes, log: logger.OrNop(log)}
}

// Upload принимает файл резюме, извлекает текст и сразу анализирует его.
// @Summary     Загрузить резюме
// @Description Принимает PDF, DOCX или TXT. Нечитаемый файл сохраняется с оценкой «Error».
// @Tags        Резюме
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Файл резюме (PDF/DOCX/TXT)"
// @Security    BearerAuth
// @Success     201 {object} resume.Submission
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     403 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /resumes [post]
func (h *ResumesHandler) Upload(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "файл обязателен (pdf, docx или txt)")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "не удалось открыть загруженный файл")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	sub, err := h.svc.Submit(c.Context(), actor, resume.Upload{
		Filename: fh.Filename,
		MimeType: fh.Header.Get("Content-Type"),
		Data:     data,
	})
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusCreated, sub)
}

type textRequest struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// SubmitText анализирует резюме, вставленное текстом.
// @Summary  Отправить резюме текстом
// @Tags     Резюме
// @Accept   json
// @Produce  json
// @Param    input body textRequest true "текст резюме"
// @Security BearerAuth
// @Success  201 {object} resume.Submission
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /resumes/text [post]
func (h *ResumesHandler) SubmitText(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req textRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	sub, err := h.svc.SubmitText(c.Context(), actor, req.Filename, req.Text)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusCreated, sub)
}

// List
// @Summary  Мои резюме
// @Tags     Резюме
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} resume.Resume
// @Router   /resumes [get]
func (h *ResumesHandler) List(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	items, err := h.svc.List(c.Context(), actor)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get
// @Summary  Резюме с текущим анализом
// @Tags     Резюме
// @Produce  json
// @Param    id path string true "ID резюме"
// @Security BearerAuth
// @Success  200 {object} resume.Details
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /resumes/{id} [get]
func (h *ResumesHandler) Get(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	d, err := h.svc.Get(c.Context(), actor, id)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, d)
}

// Download отдаёт исходный файл резюме.
// @Summary  Скачать файл резюме
// @Tags     Резюме
// @Produce  octet-stream
// @Param    id path string true "ID резюме"
// @Security BearerAuth
// @Success  200 {file} binary
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /resumes/{id}/file [get]
func (h *ResumesHandler) Download(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	f, err := h.svc.Download(c.Context(), actor, id)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, f.MimeType)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename*=UTF-8''"+url.PathEscape(f.Filename))
	return c.Status(http.StatusOK).Send(f.Data)
}

// Analyses
// @Summary  История анализов резюме
// @Tags     Резюме
// @Produce  json
// @Param    id path string true "ID резюме"
// @Security BearerAuth
// @Success  200 {array} resume.Analysis
// @Router   /resumes/{id}/analyses [get]
func (h *ResumesHandler) Analyses(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	items, err := h.svc.Analyses(c.Context(), actor, id)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Reanalyze
// @Summary  Повторный анализ
// @Tags     Резюме
// @Produce  json
// @Param    id path string true "ID резюме"
// @Security BearerAuth
// @Success  200 {object} resume.Analysis
// @Router   /resumes/{id}/reanalyze [post]
func (h *ResumesHandler) Reanalyze(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	a, err := h.svc.Reanalyze(c.Context(), actor, id)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, a)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(f, max+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(b)) > max {
		return nil, resume.ErrTooLarge
	}
	return b, nil
}
