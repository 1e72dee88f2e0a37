package ingredient

import (
	"context"
	"errors"

	"recipe-catalog/domain"
	"recipe-catalog/entities"

	"gorm.io/gorm"
)

type (
	IngredientService interface {
		GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
		GetIngredientByID(ctx context.Context, id uint) (domain.IngredientResponse, error)
		CreateIngredient(ctx context.Context, req domain.IngredientRequest) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id uint, req domain.IngredientRequest) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id uint) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		res = append(res, domain.IngredientResponse{ID: i.ID, Name: i.Name})
	}
	return res, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id uint) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}
	return domain.IngredientResponse{ID: ingredient.ID, Name: ingredient.Name}, nil
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.IngredientRequest) (domain.IngredientResponse, error) {
	ingredient := &entities.Ingredient{Name: req.Name}
	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.IngredientResponse{}, domain.ErrIngredientNameTaken
		}
		return domain.IngredientResponse{}, err
	}
	return domain.IngredientResponse{ID: ingredient.ID, Name: ingredient.Name}, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id uint, req domain.IngredientRequest) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}

	ingredient.Name = req.Name
	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.IngredientResponse{}, domain.ErrIngredientNameTaken
		}
		return domain.IngredientResponse{}, err
	}
	return domain.IngredientResponse{ID: ingredient.ID, Name: ingredient.Name}, nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id uint) error {
	if err := s.ingredientRepository.DeleteIngredient(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}
	return nil
}
