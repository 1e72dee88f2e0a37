package presenters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"recipe-catalog/domain"

	"github.com/gofiber/fiber/v2"
)

func TestStatusCode(t *testing.T) {
	verr := &domain.ValidationError{}
	verr.Append("title", "must be at least 3 characters")

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"cuisine not found", domain.ErrCuisineNotFound, fiber.StatusNotFound},
		{"allergen not found", domain.ErrAllergenNotFound, fiber.StatusNotFound},
		{"ingredient not found", domain.ErrIngredientNotFound, fiber.StatusNotFound},
		{"recipe not found", domain.ErrRecipeNotFound, fiber.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get recipe: %w", domain.ErrRecipeNotFound), fiber.StatusNotFound},
		{"cuisine name taken", domain.ErrCuisineNameTaken, fiber.StatusConflict},
		{"allergen name taken", domain.ErrAllergenNameTaken, fiber.StatusConflict},
		{"ingredient name taken", domain.ErrIngredientNameTaken, fiber.StatusConflict},
		{"cuisine in use", domain.ErrCuisineInUse, fiber.StatusConflict},
		{"allergen in use", domain.ErrAllergenInUse, fiber.StatusConflict},
		{"ingredient in use", domain.ErrIngredientInUse, fiber.StatusConflict},
		{"validation error", verr, fiber.StatusUnprocessableEntity},
		{"deadline exceeded", context.DeadlineExceeded, fiber.StatusServiceUnavailable},
		{"unknown error", errors.New("boom"), fiber.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusCode(tc.err); got != tc.want {
				t.Errorf("StatusCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestErrorResponseCarriesViolations(t *testing.T) {
	verr := &domain.ValidationError{}
	verr.Append("difficulty", "must be between 1 and 5")

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusUnprocessableEntity, "failed to create recipe", verr)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusUnprocessableEntity)
	}

	var body struct {
		Status  bool               `json:"status"`
		Message string             `json:"message"`
		Data    []domain.Violation `json:"data"`
		Error   string             `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status {
		t.Error("status = true, want false")
	}
	if len(body.Data) != 1 || body.Data[0].Field != "difficulty" {
		t.Errorf("data = %+v, want one difficulty violation", body.Data)
	}
	if body.Error == "" {
		t.Error("error field is empty")
	}
}

func TestSuccessResponseOmitsErrorField(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return SuccessResponse(c, fiber.Map{"id": 1}, fiber.StatusOK, "success")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if _, ok := body["error"]; ok {
		t.Errorf("error key present in success body: %s", raw)
	}
	if body["status"] != true {
		t.Errorf("status = %v, want true", body["status"])
	}
}
