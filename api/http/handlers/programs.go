package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/advisor/api/http/presenter"
	"github.com/artem13815/advisor/pkg/advisor"
	"github.com/artem13815/advisor/pkg/program"
)

type ProgramsHandler struct {
	svc *advisor.Service
}

func NewProgramsHandler(svc *advisor.Service) *ProgramsHandler {
	return &ProgramsHandler{svc: svc}
}

type programsResponse struct {
	Programs []program.Summary `json:"programs"`
}

// List возвращает краткое описание всех программ.
// @Summary Список программ
// @Tags    programs
// @Produce json
// @Success 200 {object} programsResponse
// @Router  /programs [get]
func (h *ProgramsHandler) List(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, programsResponse{Programs: h.svc.Programs()})
}

// Compare сравнивает программы с учётом профиля пользователя.
// @Summary Сравнение программ
// @Tags    programs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} advisor.Comparison
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /programs/compare [get]
func (h *ProgramsHandler) Compare(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	cmp, err := h.svc.Compare(c.Context(), userID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to compare programs")
	}
	return presenter.JSON(c, http.StatusOK, cmp)
}
