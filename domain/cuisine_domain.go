package domain

import "errors"

var (
	MessageSuccessGetCuisines   = "success get cuisines"
	MessageSuccessGetCuisine    = "success get cuisine detail"
	MessageSuccessCreateCuisine = "cuisine created successfully"
	MessageSuccessUpdateCuisine = "cuisine updated successfully"
	MessageSuccessDeleteCuisine = "cuisine deleted successfully"

	MessageFailedGetCuisines   = "failed to get cuisines"
	MessageFailedGetCuisine    = "failed to get cuisine detail"
	MessageFailedCreateCuisine = "failed to create cuisine"
	MessageFailedUpdateCuisine = "failed to update cuisine"
	MessageFailedDeleteCuisine = "failed to delete cuisine"

	ErrCuisineNotFound  = errors.New("cuisine not found")
	ErrCuisineNameTaken = errors.New("cuisine name already exists")
	ErrCuisineInUse     = errors.New("cuisine is still referenced by recipes")
)

type (
	CuisineRequest struct {
		Name string `json:"name" validate:"required,max=100"`
	}

	CuisineResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)
