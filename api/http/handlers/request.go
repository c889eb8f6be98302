package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/advisor/api/http/presenter"
	"github.com/artem13815/advisor/pkg/security/jwt"
	"github.com/artem13815/advisor/pkg/validation"
)

var errUnauthenticated = errors.New("unauthenticated")

// currentUser returns the id set by the auth middleware.
func currentUser(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := jwt.UserID(c)
	if !ok {
		return uuid.Nil, errUnauthenticated
	}
	return id, nil
}

func unauthorized(c *fiber.Ctx) error {
	return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
}

// validationFailed answers 400 when err is a validation error.
func validationFailed(c *fiber.Ctx, err error) (bool, error) {
	var verr *validation.Error
	if !errors.As(err, &verr) {
		return false, nil
	}
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field+": "+f.Tag)
	}
	return true, presenter.Invalid(c, fields)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
