package recipe

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"recipe-catalog/domain"
	"recipe-catalog/entities"
	"recipe-catalog/internal/utils/storage"

	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, skip, limit, difficulty int) ([]domain.RecipeResponse, error)
		GetRecipeByID(ctx context.Context, id uint) (domain.RecipeResponse, error)
		GetRecipesByIngredient(ctx context.Context, ingredientID uint) ([]domain.RecipeResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id uint) error
		UploadRecipeImage(ctx context.Context, id uint, image *multipart.FileHeader) (domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, skip, limit, difficulty int) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, skip, limit, difficulty)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, toRecipeResponse(recipe))
	}
	return res, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id uint) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipesByIngredient(ctx context.Context, ingredientID uint) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipesByIngredient(ctx, ingredientID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, toRecipeResponse(recipe))
	}
	return res, nil
}

// CreateRecipe validates field constraints up front, persists the aggregate
// in one transaction and re-reads the stored recipe so the response carries
// the hydrated cuisine, allergens and ingredient lines.
func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	if err := validateCreateRecipe(req); err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		CookingTime:  req.CookingTime,
		Difficulty:   req.Difficulty,
		CuisineID:    req.CuisineID,
	}
	for _, line := range req.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, entities.RecipeIngredient{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Measurement:  entities.Measurement(line.Measurement),
		})
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, req.AllergenIDs); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipeByID(ctx, recipe.ID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error) {
	if err := validateUpdateRecipe(req); err != nil {
		return domain.RecipeResponse{}, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Instructions != nil {
		fields["instructions"] = *req.Instructions
	}
	if req.CookingTime != nil {
		fields["cooking_time"] = *req.CookingTime
	}
	if req.Difficulty != nil {
		fields["difficulty"] = *req.Difficulty
	}
	if req.CuisineID != nil {
		fields["cuisine_id"] = *req.CuisineID
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipeByID(ctx, id)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id uint, image *multipart.FileHeader) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	fileName := fmt.Sprintf("recipe-%d", recipe.ID)
	var objectKey string
	var uploadErr error

	if recipe.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, image, "recipes", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, image, "recipes", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.RecipeResponse{}, uploadErr
	}

	if err := s.recipeRepository.SaveRecipeImageURL(ctx, id, s.s3.GetPublicLinkKey(objectKey)); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipeByID(ctx, id)
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:           recipe.ID,
		Title:        recipe.Title,
		Description:  recipe.Description,
		Instructions: recipe.Instructions,
		CookingTime:  recipe.CookingTime,
		Difficulty:   recipe.Difficulty,
		ImageURL:     recipe.ImageURL,
		Allergens:    make([]domain.AllergenResponse, 0, len(recipe.Allergens)),
		Ingredients:  make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients)),
	}

	if recipe.Cuisine != nil {
		res.Cuisine = domain.CuisineResponse{ID: recipe.Cuisine.ID, Name: recipe.Cuisine.Name}
	}
	for _, allergen := range recipe.Allergens {
		res.Allergens = append(res.Allergens, domain.AllergenResponse{ID: allergen.ID, Name: allergen.Name})
	}
	for _, line := range recipe.Ingredients {
		item := domain.RecipeIngredientResponse{
			ID:          line.ID,
			Quantity:    line.Quantity,
			Measurement: int(line.Measurement),
		}
		if line.Ingredient != nil {
			item.Ingredient = domain.IngredientResponse{ID: line.Ingredient.ID, Name: line.Ingredient.Name}
		}
		res.Ingredients = append(res.Ingredients, item)
	}
	return res
}
