package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse — тело любого ответа с ошибкой.
type ErrorResponse struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Invalid answers 400 listing the request fields that failed validation.
func Invalid(c *fiber.Ctx, fields []string) error {
	return JSON(c, fiber.StatusBadRequest, ErrorResponse{Message: "validation failed", Fields: fields})
}
