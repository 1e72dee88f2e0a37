package handlers

import (
	"strconv"

	"recipe-catalog/domain"
	"recipe-catalog/internal/api/presenters"
	"recipe-catalog/pkg/allergen"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AllergenHandler interface {
		GetAllergens(c *fiber.Ctx) error
		GetAllergenDetail(c *fiber.Ctx) error
		CreateAllergen(c *fiber.Ctx) error
		UpdateAllergen(c *fiber.Ctx) error
		DeleteAllergen(c *fiber.Ctx) error
	}

	allergenHandler struct {
		allergenService allergen.AllergenService
		validator       *validator.Validate
	}
)

func NewAllergenHandler(allergenService allergen.AllergenService, validator *validator.Validate) AllergenHandler {
	return &allergenHandler{
		allergenService: allergenService,
		validator:       validator,
	}
}

func (h *allergenHandler) GetAllergens(c *fiber.Ctx) error {
	res, err := h.allergenService.GetAllergens(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetAllergens, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAllergens)
}

func (h *allergenHandler) GetAllergenDetail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAllergen, domain.ErrInvalidID)
	}

	res, err := h.allergenService.GetAllergenByID(c.Context(), uint(id))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetAllergen, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAllergen)
}

func (h *allergenHandler) CreateAllergen(c *fiber.Ctx) error {
	req := new(domain.AllergenRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateAllergen, err)
	}

	res, err := h.allergenService.CreateAllergen(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedCreateAllergen, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateAllergen)
}

func (h *allergenHandler) UpdateAllergen(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAllergen, domain.ErrInvalidID)
	}

	req := new(domain.AllergenRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAllergen, err)
	}

	res, err := h.allergenService.UpdateAllergen(c.Context(), uint(id), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedUpdateAllergen, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateAllergen)
}

func (h *allergenHandler) DeleteAllergen(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteAllergen, domain.ErrInvalidID)
	}

	if err := h.allergenService.DeleteAllergen(c.Context(), uint(id)); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedDeleteAllergen, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
