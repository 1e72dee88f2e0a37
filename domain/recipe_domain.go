package domain

import "errors"

var (
	MessageSuccessGetRecipes             = "success get recipes"
	MessageSuccessGetRecipeDetail        = "success get recipe detail"
	MessageSuccessCreateRecipe           = "recipe created successfully"
	MessageSuccessUpdateRecipe           = "recipe updated successfully"
	MessageSuccessDeleteRecipe           = "recipe deleted successfully"
	MessageSuccessUploadRecipeImage      = "recipe image uploaded successfully"
	MessageSuccessGetRecipesByIngredient = "success get recipes by ingredient"

	MessageFailedGetRecipes             = "failed to get recipes"
	MessageFailedGetRecipeDetail        = "failed to get recipe detail"
	MessageFailedCreateRecipe           = "failed to create recipe"
	MessageFailedUpdateRecipe           = "failed to update recipe"
	MessageFailedDeleteRecipe           = "failed to delete recipe"
	MessageFailedUploadRecipeImage      = "failed to upload recipe image"
	MessageFailedGetRecipesByIngredient = "failed to get recipes by ingredient"

	ErrRecipeNotFound          = errors.New("recipe not found")
	ErrInvalidDifficultyFilter = errors.New("difficulty must be an integer between 1 and 5")
)

type (
	RecipeIngredientRequest struct {
		IngredientID uint `json:"ingredient_id"`
		Quantity     int  `json:"quantity"`
		Measurement  int  `json:"measurement"`
	}

	CreateRecipeRequest struct {
		Title        string                    `json:"title" validate:"required"`
		Description  string                    `json:"description"`
		Instructions string                    `json:"instructions" validate:"required"`
		CookingTime  int                       `json:"cooking_time"`
		Difficulty   int                       `json:"difficulty"`
		CuisineID    uint                      `json:"cuisine_id"`
		AllergenIDs  []uint                    `json:"allergen_ids"`
		Ingredients  []RecipeIngredientRequest `json:"ingredients"`
	}

	// UpdateRecipeRequest patches a recipe. Nil fields are left untouched;
	// allergen and ingredient links are not editable here.
	UpdateRecipeRequest struct {
		Title        *string `json:"title"`
		Description  *string `json:"description"`
		Instructions *string `json:"instructions"`
		CookingTime  *int    `json:"cooking_time"`
		Difficulty   *int    `json:"difficulty"`
		CuisineID    *uint   `json:"cuisine_id"`
	}

	RecipeIngredientResponse struct {
		ID          uint               `json:"id"`
		Ingredient  IngredientResponse `json:"ingredient"`
		Quantity    int                `json:"quantity"`
		Measurement int                `json:"measurement"`
	}

	RecipeResponse struct {
		ID           uint                       `json:"id"`
		Title        string                     `json:"title"`
		Description  string                     `json:"description,omitempty"`
		Instructions string                     `json:"instructions"`
		CookingTime  int                        `json:"cooking_time"`
		Difficulty   int                        `json:"difficulty"`
		ImageURL     string                     `json:"image_url,omitempty"`
		Cuisine      CuisineResponse            `json:"cuisine"`
		Allergens    []AllergenResponse         `json:"allergens"`
		Ingredients  []RecipeIngredientResponse `json:"ingredients"`
	}
)
