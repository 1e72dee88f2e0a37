package cuisine

import (
	"context"
	"time"

	"recipe-catalog/domain"
	"recipe-catalog/entities"

	"gorm.io/gorm"
)

const queryTimeout = 5 * time.Second

type (
	CuisineRepository interface {
		GetCuisines(ctx context.Context) ([]*entities.Cuisine, error)
		GetCuisineByID(ctx context.Context, id uint) (*entities.Cuisine, error)
		CreateCuisine(ctx context.Context, cuisine *entities.Cuisine) error
		UpdateCuisine(ctx context.Context, cuisine *entities.Cuisine) error
		DeleteCuisine(ctx context.Context, id uint) error
	}

	cuisineRepository struct {
		db *gorm.DB
	}
)

func NewCuisineRepository(db *gorm.DB) CuisineRepository {
	return &cuisineRepository{db: db}
}

func (r *cuisineRepository) GetCuisines(ctx context.Context) ([]*entities.Cuisine, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var cuisines []*entities.Cuisine
	if err := r.db.WithContext(ctx).Order("id asc").Find(&cuisines).Error; err != nil {
		return nil, err
	}
	return cuisines, nil
}

func (r *cuisineRepository) GetCuisineByID(ctx context.Context, id uint) (*entities.Cuisine, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var cuisine entities.Cuisine
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cuisine).Error; err != nil {
		return nil, err
	}
	return &cuisine, nil
}

func (r *cuisineRepository) CreateCuisine(ctx context.Context, cuisine *entities.Cuisine) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Create(cuisine).Error
}

func (r *cuisineRepository) UpdateCuisine(ctx context.Context, cuisine *entities.Cuisine) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Save(cuisine).Error
}

// DeleteCuisine removes a cuisine unless a recipe still references it.
// The existence check, the reference count and the delete run in one
// transaction so a concurrent recipe create cannot slip in between.
func (r *cuisineRepository) DeleteCuisine(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cuisine entities.Cuisine
		if err := tx.Where("id = ?", id).First(&cuisine).Error; err != nil {
			return err
		}

		var refs int64
		if err := tx.Model(&entities.Recipe{}).
			Where("cuisine_id = ?", id).
			Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return domain.ErrCuisineInUse
		}

		return tx.Delete(&cuisine).Error
	})
}
