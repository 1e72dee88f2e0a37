package allergen

import (
	"context"
	"time"

	"recipe-catalog/domain"
	"recipe-catalog/entities"

	"gorm.io/gorm"
)

const queryTimeout = 5 * time.Second

type (
	AllergenRepository interface {
		GetAllergens(ctx context.Context) ([]*entities.Allergen, error)
		GetAllergenByID(ctx context.Context, id uint) (*entities.Allergen, error)
		CreateAllergen(ctx context.Context, allergen *entities.Allergen) error
		UpdateAllergen(ctx context.Context, allergen *entities.Allergen) error
		DeleteAllergen(ctx context.Context, id uint) error
	}

	allergenRepository struct {
		db *gorm.DB
	}
)

func NewAllergenRepository(db *gorm.DB) AllergenRepository {
	return &allergenRepository{db: db}
}

func (r *allergenRepository) GetAllergens(ctx context.Context) ([]*entities.Allergen, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var allergens []*entities.Allergen
	if err := r.db.WithContext(ctx).Order("id asc").Find(&allergens).Error; err != nil {
		return nil, err
	}
	return allergens, nil
}

func (r *allergenRepository) GetAllergenByID(ctx context.Context, id uint) (*entities.Allergen, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var allergen entities.Allergen
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&allergen).Error; err != nil {
		return nil, err
	}
	return &allergen, nil
}

func (r *allergenRepository) CreateAllergen(ctx context.Context, allergen *entities.Allergen) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Create(allergen).Error
}

func (r *allergenRepository) UpdateAllergen(ctx context.Context, allergen *entities.Allergen) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Save(allergen).Error
}

// DeleteAllergen removes an allergen unless a recipe still references it
// through the join table. Check and delete share one transaction.
func (r *allergenRepository) DeleteAllergen(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var allergen entities.Allergen
		if err := tx.Where("id = ?", id).First(&allergen).Error; err != nil {
			return err
		}

		var refs int64
		if err := tx.Model(&entities.RecipeAllergen{}).
			Where("allergen_id = ?", id).
			Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return domain.ErrAllergenInUse
		}

		return tx.Delete(&allergen).Error
	})
}
