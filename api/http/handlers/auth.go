package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/advisor/api/http/presenter"
	"github.com/artem13815/advisor/pkg/account"
)

type AuthHandler struct {
	useCase account.UseCase
}

func NewAuthHandler(useCase account.UseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "registration payload"
// @Success 201 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.useCase.Register(c.Context(), account.Credentials(req))
	if err != nil {
		switch {
		case errors.Is(err, account.ErrUserAlreadyExists):
			return presenter.Error(c, http.StatusConflict, "user already exists")
		case errors.Is(err, account.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusBadRequest, "valid email and a password of at least 8 characters are required")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
		}
	}
	return presenter.JSON(c, http.StatusCreated, toAuthResponse(result))
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "login payload"
// @Success 200 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Email == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Login(c.Context(), account.Credentials(req))
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to login")
	}
	return presenter.JSON(c, http.StatusOK, toAuthResponse(result))
}

func toAuthResponse(r account.Result) authResponse {
	return authResponse{
		ID:      r.User.ID.String(),
		Email:   r.User.Email,
		IsAdmin: r.User.IsAdmin,
		Token:   r.Token,
	}
}
