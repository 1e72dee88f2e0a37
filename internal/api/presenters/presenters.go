package presenters

import (
	"context"
	"errors"

	"recipe-catalog/domain"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		res.Data = verr.Violations
	}

	return c.Status(code).JSON(res)
}

// StatusCode maps a service error to the HTTP status it surfaces as.
func StatusCode(err error) int {
	var verr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrCuisineNotFound),
		errors.Is(err, domain.ErrAllergenNotFound),
		errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrRecipeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrCuisineNameTaken),
		errors.Is(err, domain.ErrAllergenNameTaken),
		errors.Is(err, domain.ErrIngredientNameTaken),
		errors.Is(err, domain.ErrCuisineInUse),
		errors.Is(err, domain.ErrAllergenInUse),
		errors.Is(err, domain.ErrIngredientInUse):
		return fiber.StatusConflict
	case errors.As(err, &verr):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusBadRequest
	}
}
