package domain

import "errors"

var (
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessGetIngredient    = "success get ingredient detail"
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"

	MessageFailedGetIngredients   = "failed to get ingredients"
	MessageFailedGetIngredient    = "failed to get ingredient detail"
	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"

	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrIngredientNameTaken = errors.New("ingredient name already exists")
	ErrIngredientInUse     = errors.New("ingredient is still referenced by recipes")
)

type (
	IngredientRequest struct {
		Name string `json:"name" validate:"required,max=100"`
	}

	IngredientResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)
