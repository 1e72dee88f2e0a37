package recipe

import (
	"context"
	"time"

	"recipe-catalog/domain"
	"recipe-catalog/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const queryTimeout = 5 * time.Second

type (
	RecipeRepository interface {
		GetRecipes(ctx context.Context, skip, limit, difficulty int) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipesByIngredient(ctx context.Context, ingredientID uint) ([]*entities.Recipe, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, allergenIDs []uint) error
		UpdateRecipe(ctx context.Context, id uint, fields map[string]interface{}) error
		DeleteRecipe(ctx context.Context, id uint) error
		SaveRecipeImageURL(ctx context.Context, id uint, imageURL string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) GetRecipes(ctx context.Context, skip, limit, difficulty int) ([]*entities.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := r.db.WithContext(ctx).
		Preload("Cuisine").
		Preload("Allergens").
		Preload("Ingredients.Ingredient")

	if difficulty > 0 {
		query = query.Where("difficulty = ?", difficulty)
	}

	var recipes []*entities.Recipe
	if err := query.
		Offset(skip).
		Limit(limit).
		Order("id asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Cuisine").
		Preload("Allergens").
		Preload("Ingredients.Ingredient").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipesByIngredient(ctx context.Context, ingredientID uint) ([]*entities.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Ingredient{}).
		Where("id = ?", ingredientID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domain.ErrIngredientNotFound
	}

	// Distinct keeps a recipe with several matching lines from showing up twice.
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Distinct("recipes.*").
		Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
		Where("recipe_ingredients.ingredient_id = ?", ingredientID).
		Preload("Cuisine").
		Preload("Allergens").
		Preload("Ingredients.Ingredient").
		Order("recipes.id asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// CreateRecipe validates every referenced cuisine, allergen and ingredient
// inside the write transaction, then inserts the recipe row, its ingredient
// lines and its allergen join rows. Any missing reference rolls the whole
// thing back.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, allergenIDs []uint) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := validateCuisineExists(tx, recipe.CuisineID); err != nil {
			return err
		}
		if err := validateAllergensExist(tx, allergenIDs); err != nil {
			return err
		}

		ingredientIDs := make([]uint, 0, len(recipe.Ingredients))
		for _, line := range recipe.Ingredients {
			ingredientIDs = append(ingredientIDs, line.IngredientID)
		}
		if err := validateIngredientsExist(tx, ingredientIDs); err != nil {
			return err
		}

		lines := recipe.Ingredients
		recipe.Ingredients = nil
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		recipe.Ingredients = lines

		for i := range recipe.Ingredients {
			recipe.Ingredients[i].RecipeID = recipe.ID
		}
		if len(recipe.Ingredients) > 0 {
			if err := tx.Omit(clause.Associations).Create(&recipe.Ingredients).Error; err != nil {
				return err
			}
		}

		if len(allergenIDs) > 0 {
			joins := make([]entities.RecipeAllergen, 0, len(allergenIDs))
			for _, allergenID := range allergenIDs {
				joins = append(joins, entities.RecipeAllergen{RecipeID: recipe.ID, AllergenID: allergenID})
			}
			if err := tx.Create(&joins).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// UpdateRecipe applies a partial field update. When cuisine_id is among the
// changed fields its existence is re-checked inside the same transaction.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, id uint, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe entities.Recipe
		if err := tx.Where("id = ?", id).First(&recipe).Error; err != nil {
			return err
		}

		if cuisineID, ok := fields["cuisine_id"].(uint); ok {
			if err := validateCuisineExists(tx, cuisineID); err != nil {
				return err
			}
		}

		if len(fields) == 0 {
			return nil
		}
		return tx.Model(&recipe).Updates(fields).Error
	})
}

// DeleteRecipe removes the recipe together with its ingredient lines and
// allergen join rows. Referenced cuisines, allergens and ingredients stay.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe entities.Recipe
		if err := tx.Where("id = ?", id).First(&recipe).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeAllergen{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

func (r *recipeRepository) SaveRecipeImageURL(ctx context.Context, id uint, imageURL string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}

func validateCuisineExists(tx *gorm.DB, cuisineID uint) error {
	var count int64
	if err := tx.Model(&entities.Cuisine{}).
		Where("id = ?", cuisineID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrCuisineNotFound
	}
	return nil
}

// validateAllergensExist fails when any requested id is missing. Ids are
// deduplicated first so the count comparison holds.
func validateAllergensExist(tx *gorm.DB, allergenIDs []uint) error {
	if len(allergenIDs) == 0 {
		return nil
	}

	unique := dedupeIDs(allergenIDs)
	var count int64
	if err := tx.Model(&entities.Allergen{}).
		Where("id IN ?", unique).
		Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(unique)) {
		return domain.ErrAllergenNotFound
	}
	return nil
}

// validateIngredientsExist allows duplicate ids; a recipe may carry the same
// ingredient on several lines.
func validateIngredientsExist(tx *gorm.DB, ingredientIDs []uint) error {
	if len(ingredientIDs) == 0 {
		return nil
	}

	unique := dedupeIDs(ingredientIDs)
	var count int64
	if err := tx.Model(&entities.Ingredient{}).
		Where("id IN ?", unique).
		Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(unique)) {
		return domain.ErrIngredientNotFound
	}
	return nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
