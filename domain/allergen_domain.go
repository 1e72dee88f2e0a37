package domain

import "errors"

var (
	MessageSuccessGetAllergens   = "success get allergens"
	MessageSuccessGetAllergen    = "success get allergen detail"
	MessageSuccessCreateAllergen = "allergen created successfully"
	MessageSuccessUpdateAllergen = "allergen updated successfully"
	MessageSuccessDeleteAllergen = "allergen deleted successfully"

	MessageFailedGetAllergens   = "failed to get allergens"
	MessageFailedGetAllergen    = "failed to get allergen detail"
	MessageFailedCreateAllergen = "failed to create allergen"
	MessageFailedUpdateAllergen = "failed to update allergen"
	MessageFailedDeleteAllergen = "failed to delete allergen"

	ErrAllergenNotFound  = errors.New("allergen not found")
	ErrAllergenNameTaken = errors.New("allergen name already exists")
	ErrAllergenInUse     = errors.New("allergen is still referenced by recipes")
)

type (
	AllergenRequest struct {
		Name string `json:"name" validate:"required,max=100"`
	}

	AllergenResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)
