package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/advisor/api/http/presenter"
	"github.com/artem13815/advisor/pkg/advisor"
)

type FAQHandler struct {
	svc *advisor.Service
}

func NewFAQHandler(svc *advisor.Service) *FAQHandler {
	return &FAQHandler{svc: svc}
}

type askRequest struct {
	Question string `json:"question"`
}

// Ask ищет ответ на вопрос в FAQ программ.
// @Summary Вопрос по программам
// @Description Возвращает outcome matched, no_match или out_of_domain.
// @Tags    faq
// @Accept  json
// @Produce json
// @Param   input body askRequest true "вопрос"
// @Success 200 {object} faq.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /faq/ask [post]
func (h *FAQHandler) Ask(c *fiber.Ctx) error {
	var req askRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	res, err := h.svc.Ask(req.Question)
	if err != nil {
		if errors.Is(err, advisor.ErrEmptyQuestion) {
			return presenter.Error(c, http.StatusBadRequest, "question is required")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to answer")
	}
	return presenter.JSON(c, http.StatusOK, res)
}
