package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/advisor/api/http/presenter"
	"github.com/artem13815/advisor/pkg/advisor"
	"github.com/artem13815/advisor/pkg/curriculum"
)

type CurriculumHandler struct {
	svc *advisor.Service
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewCurriculumHandler(svc *advisor.Service, maxBytes int64) *CurriculumHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20
	}
	return &CurriculumHandler{svc: svc, maxBytes: maxBytes}
}

type parseRequest struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Parse разбирает учебный план из файла, ссылки или текста.
// @Summary Разбор учебного плана
// @Description multipart с полем file (PDF, DOCX, TXT) или JSON {"text": ...} / {"url": ...}.
// @Tags    curriculum
// @Accept  multipart/form-data
// @Accept  json
// @Produce json
// @Param   file formData file false "учебный план"
// @Security BearerAuth
// @Success 200 {object} advisor.ParsedPlan
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse "не удалось скачать документ"
// @Router  /curriculum/parse [post]
func (h *CurriculumHandler) Parse(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return h.parseUpload(c)
	}

	var req parseRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	switch {
	case strings.TrimSpace(req.URL) != "":
		plan, err := h.svc.ParseURL(c.Context(), strings.TrimSpace(req.URL))
		if err != nil {
			return presenter.Error(c, http.StatusBadGateway, err.Error())
		}
		return presenter.JSON(c, http.StatusOK, plan)
	default:
		plan, err := h.svc.ParseText(req.Text)
		if err != nil {
			if errors.Is(err, advisor.ErrEmptyText) {
				return presenter.Error(c, http.StatusBadRequest, "file, text or url is required")
			}
			return presenter.Error(c, http.StatusInternalServerError, "failed to parse text")
		}
		return presenter.JSON(c, http.StatusOK, plan)
	}
}

func (h *CurriculumHandler) parseUpload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf, docx or txt)")
	}
	if !curriculum.Supported(fh.Filename) {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf, docx and txt are allowed")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	plan, err := h.svc.ParseDocument(fh.Filename, data)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to read document: %v", err))
	}
	return presenter.JSON(c, http.StatusOK, plan)
}
