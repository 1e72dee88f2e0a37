package handlers

import (
	"strconv"

	"recipe-catalog/domain"
	"recipe-catalog/internal/api/presenters"
	"recipe-catalog/pkg/cuisine"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CuisineHandler interface {
		GetCuisines(c *fiber.Ctx) error
		GetCuisineDetail(c *fiber.Ctx) error
		CreateCuisine(c *fiber.Ctx) error
		UpdateCuisine(c *fiber.Ctx) error
		DeleteCuisine(c *fiber.Ctx) error
	}

	cuisineHandler struct {
		cuisineService cuisine.CuisineService
		validator      *validator.Validate
	}
)

func NewCuisineHandler(cuisineService cuisine.CuisineService, validator *validator.Validate) CuisineHandler {
	return &cuisineHandler{
		cuisineService: cuisineService,
		validator:      validator,
	}
}

func (h *cuisineHandler) GetCuisines(c *fiber.Ctx) error {
	res, err := h.cuisineService.GetCuisines(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetCuisines, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCuisines)
}

func (h *cuisineHandler) GetCuisineDetail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCuisine, domain.ErrInvalidID)
	}

	res, err := h.cuisineService.GetCuisineByID(c.Context(), uint(id))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetCuisine, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCuisine)
}

func (h *cuisineHandler) CreateCuisine(c *fiber.Ctx) error {
	req := new(domain.CuisineRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCuisine, err)
	}

	res, err := h.cuisineService.CreateCuisine(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedCreateCuisine, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCuisine)
}

func (h *cuisineHandler) UpdateCuisine(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCuisine, domain.ErrInvalidID)
	}

	req := new(domain.CuisineRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCuisine, err)
	}

	res, err := h.cuisineService.UpdateCuisine(c.Context(), uint(id), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedUpdateCuisine, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCuisine)
}

func (h *cuisineHandler) DeleteCuisine(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCuisine, domain.ErrInvalidID)
	}

	if err := h.cuisineService.DeleteCuisine(c.Context(), uint(id)); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedDeleteCuisine, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
