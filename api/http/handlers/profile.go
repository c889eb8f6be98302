package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/advisor/api/http/presenter"
	"github.com/artem13815/advisor/pkg/advisor"
	"github.com/artem13815/advisor/pkg/profile"
)

type ProfileHandler struct {
	svc *advisor.Service
}

func NewProfileHandler(svc *advisor.Service) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Get возвращает профиль текущего пользователя.
// @Summary Профиль пользователя
// @Tags    profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} profile.UserProfile
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	p, err := h.svc.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "profile is not filled yet")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// Update сохраняет рассказ пользователя о себе.
// @Summary Обновить профиль
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body advisor.ProfileInput true "профиль"
// @Security BearerAuth
// @Success 200 {object} profile.UserProfile
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /profile [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	var req advisor.ProfileInput
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.svc.UpdateProfile(c.Context(), userID, req)
	if err != nil {
		if handled, herr := validationFailed(c, err); handled {
			return herr
		}
		if errors.Is(err, advisor.ErrUnknownProgram) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to save profile")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// Examples возвращает примеры описаний профиля.
// @Summary Примеры профилей
// @Tags    profile
// @Produce json
// @Success 200 {object} profile.Examples
// @Router  /profile/examples [get]
func (h *ProfileHandler) Examples(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.svc.Examples())
}

type classifyRequest struct {
	Text string `json:"text"`
}

// Classify определяет тип профиля по тексту без сохранения.
// @Summary Классификация профиля
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body classifyRequest true "текст о себе"
// @Success 200 {object} profile.Match
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /profile/classify [post]
func (h *ProfileHandler) Classify(c *fiber.Ctx) error {
	var req classifyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Text) == "" {
		return presenter.Error(c, http.StatusBadRequest, "text is required")
	}
	return presenter.JSON(c, http.StatusOK, h.svc.Classify(req.Text))
}
