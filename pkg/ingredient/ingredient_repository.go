package ingredient

import (
	"context"
	"time"

	"recipe-catalog/domain"
	"recipe-catalog/entities"

	"gorm.io/gorm"
)

const queryTimeout = 5 * time.Second

type (
	IngredientRepository interface {
		GetIngredients(ctx context.Context) ([]*entities.Ingredient, error)
		GetIngredientByID(ctx context.Context, id uint) (*entities.Ingredient, error)
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		DeleteIngredient(ctx context.Context, id uint) error
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).Order("id asc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id uint) (*entities.Ingredient, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Save(ingredient).Error
}

// DeleteIngredient removes an ingredient unless a recipe line still
// references it. Check and delete share one transaction.
func (r *ingredientRepository) DeleteIngredient(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ingredient entities.Ingredient
		if err := tx.Where("id = ?", id).First(&ingredient).Error; err != nil {
			return err
		}

		var refs int64
		if err := tx.Model(&entities.RecipeIngredient{}).
			Where("ingredient_id = ?", id).
			Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return domain.ErrIngredientInUse
		}

		return tx.Delete(&ingredient).Error
	})
}
