package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/advisor/api/http/presenter"
	"github.com/artem13815/advisor/pkg/advisor"
)

type RecommendationsHandler struct {
	svc *advisor.Service
}

func NewRecommendationsHandler(svc *advisor.Service) *RecommendationsHandler {
	return &RecommendationsHandler{svc: svc}
}

// Get подбирает выборные дисциплины под профиль пользователя.
// @Summary Персональные рекомендации
// @Tags    recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} advisor.Recommendation
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse "профиль не заполнен"
// @Failure 503 {object} presenter.ErrorResponse "нет учебного плана"
// @Router  /recommendations [get]
func (h *RecommendationsHandler) Get(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	rec, err := h.svc.Recommend(c.Context(), userID)
	switch {
	case err == nil:
		return presenter.JSON(c, http.StatusOK, rec)
	case errors.Is(err, advisor.ErrProfileMissing):
		return presenter.Error(c, http.StatusConflict, "tell about your background first: PUT /profile")
	case errors.Is(err, advisor.ErrNoCurriculum):
		return presenter.Error(c, http.StatusServiceUnavailable, "no parsed curriculum is loaded")
	default:
		return presenter.Error(c, http.StatusInternalServerError, "failed to build recommendations")
	}
}
