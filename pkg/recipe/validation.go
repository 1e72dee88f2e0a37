package recipe

import (
	"fmt"
	"unicode/utf8"

	"recipe-catalog/domain"
	"recipe-catalog/entities"
)

const (
	titleMinLen        = 3
	titleMaxLen        = 100
	descriptionMaxLen  = 500
	instructionsMinLen = 10
	difficultyMin      = 1
	difficultyMax      = 5
)

// validateCreateRecipe checks every field constraint on a create request and
// collects all violations instead of stopping at the first one.
func validateCreateRecipe(req domain.CreateRecipeRequest) error {
	verr := &domain.ValidationError{}

	validateTitle(verr, req.Title)
	validateDescription(verr, req.Description)
	validateInstructions(verr, req.Instructions)
	validateCookingTime(verr, req.CookingTime)
	validateDifficulty(verr, req.Difficulty)
	if req.CuisineID == 0 {
		verr.Append("cuisine_id", "cuisine_id is required")
	}
	for i, line := range req.Ingredients {
		validateIngredientLine(verr, i, line)
	}

	if verr.HasViolations() {
		return verr
	}
	return nil
}

// validateUpdateRecipe checks only the fields present in a patch request.
func validateUpdateRecipe(req domain.UpdateRecipeRequest) error {
	verr := &domain.ValidationError{}

	if req.Title != nil {
		validateTitle(verr, *req.Title)
	}
	if req.Description != nil {
		validateDescription(verr, *req.Description)
	}
	if req.Instructions != nil {
		validateInstructions(verr, *req.Instructions)
	}
	if req.CookingTime != nil {
		validateCookingTime(verr, *req.CookingTime)
	}
	if req.Difficulty != nil {
		validateDifficulty(verr, *req.Difficulty)
	}
	if req.CuisineID != nil && *req.CuisineID == 0 {
		verr.Append("cuisine_id", "cuisine_id must be a valid id")
	}

	if verr.HasViolations() {
		return verr
	}
	return nil
}

func validateTitle(verr *domain.ValidationError, title string) {
	if n := utf8.RuneCountInString(title); n < titleMinLen || n > titleMaxLen {
		verr.Append("title", fmt.Sprintf("title must be between %d and %d characters", titleMinLen, titleMaxLen))
	}
}

func validateDescription(verr *domain.ValidationError, description string) {
	if utf8.RuneCountInString(description) > descriptionMaxLen {
		verr.Append("description", fmt.Sprintf("description must be at most %d characters", descriptionMaxLen))
	}
}

func validateInstructions(verr *domain.ValidationError, instructions string) {
	if utf8.RuneCountInString(instructions) < instructionsMinLen {
		verr.Append("instructions", fmt.Sprintf("instructions must be at least %d characters", instructionsMinLen))
	}
}

func validateCookingTime(verr *domain.ValidationError, cookingTime int) {
	if cookingTime <= 0 {
		verr.Append("cooking_time", "cooking_time must be greater than 0")
	}
}

func validateDifficulty(verr *domain.ValidationError, difficulty int) {
	if difficulty < difficultyMin || difficulty > difficultyMax {
		verr.Append("difficulty", fmt.Sprintf("difficulty must be between %d and %d", difficultyMin, difficultyMax))
	}
}

func validateIngredientLine(verr *domain.ValidationError, i int, line domain.RecipeIngredientRequest) {
	field := fmt.Sprintf("ingredients[%d]", i)
	if line.IngredientID == 0 {
		verr.Append(field+".ingredient_id", "ingredient_id is required")
	}
	if line.Quantity < 1 {
		verr.Append(field+".quantity", "quantity must be a positive integer")
	}
	if !entities.Measurement(line.Measurement).Valid() {
		verr.Append(field+".measurement", fmt.Sprintf("measurement must be a unit code between %d and %d",
			entities.MeasurementGram, entities.MeasurementPinch))
	}
}
