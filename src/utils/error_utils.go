package utils

import (
	"errors"

	"Backend-TechAudit/src/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors services return instead of HTTP statuses. Controllers
// translate them through HandleServiceError.
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")
	ErrInvalidState = errors.New("operation not allowed in current state")
)

// HandleError writes the uniform failure envelope.
func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// HandleValidationError writes a 400 listing every violated rule.
func HandleValidationError(c *fiber.Ctx, ve models.ValidationErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Success: false,
		Error:   "validation failed: " + ve.Error(),
		Details: ve,
	})
}

// HandleServiceError maps a service error onto the HTTP status taxonomy:
// 400 validation, 404 missing, 409 conflict/state, 500 otherwise.
func HandleServiceError(c *fiber.Ctx, err error) error {
	var ve models.ValidationErrors
	switch {
	case errors.As(err, &ve):
		return HandleValidationError(c, ve)
	case errors.Is(err, ErrNotFound) || errors.Is(err, mongo.ErrNoDocuments):
		return HandleError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrConflict) || mongo.IsDuplicateKeyError(err):
		return HandleError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidState):
		return HandleError(c, fiber.StatusConflict, err.Error())
	default:
		return HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}
