package allergen

import (
	"context"
	"errors"

	"recipe-catalog/domain"
	"recipe-catalog/entities"

	"gorm.io/gorm"
)

type (
	AllergenService interface {
		GetAllergens(ctx context.Context) ([]domain.AllergenResponse, error)
		GetAllergenByID(ctx context.Context, id uint) (domain.AllergenResponse, error)
		CreateAllergen(ctx context.Context, req domain.AllergenRequest) (domain.AllergenResponse, error)
		UpdateAllergen(ctx context.Context, id uint, req domain.AllergenRequest) (domain.AllergenResponse, error)
		DeleteAllergen(ctx context.Context, id uint) error
	}

	allergenService struct {
		allergenRepository AllergenRepository
	}
)

func NewAllergenService(allergenRepository AllergenRepository) AllergenService {
	return &allergenService{allergenRepository: allergenRepository}
}

func (s *allergenService) GetAllergens(ctx context.Context) ([]domain.AllergenResponse, error) {
	allergens, err := s.allergenRepository.GetAllergens(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.AllergenResponse, 0, len(allergens))
	for _, a := range allergens {
		res = append(res, domain.AllergenResponse{ID: a.ID, Name: a.Name})
	}
	return res, nil
}

func (s *allergenService) GetAllergenByID(ctx context.Context, id uint) (domain.AllergenResponse, error) {
	allergen, err := s.allergenRepository.GetAllergenByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AllergenResponse{}, domain.ErrAllergenNotFound
		}
		return domain.AllergenResponse{}, err
	}
	return domain.AllergenResponse{ID: allergen.ID, Name: allergen.Name}, nil
}

func (s *allergenService) CreateAllergen(ctx context.Context, req domain.AllergenRequest) (domain.AllergenResponse, error) {
	allergen := &entities.Allergen{Name: req.Name}
	if err := s.allergenRepository.CreateAllergen(ctx, allergen); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.AllergenResponse{}, domain.ErrAllergenNameTaken
		}
		return domain.AllergenResponse{}, err
	}
	return domain.AllergenResponse{ID: allergen.ID, Name: allergen.Name}, nil
}

func (s *allergenService) UpdateAllergen(ctx context.Context, id uint, req domain.AllergenRequest) (domain.AllergenResponse, error) {
	allergen, err := s.allergenRepository.GetAllergenByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AllergenResponse{}, domain.ErrAllergenNotFound
		}
		return domain.AllergenResponse{}, err
	}

	allergen.Name = req.Name
	if err := s.allergenRepository.UpdateAllergen(ctx, allergen); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.AllergenResponse{}, domain.ErrAllergenNameTaken
		}
		return domain.AllergenResponse{}, err
	}
	return domain.AllergenResponse{ID: allergen.ID, Name: allergen.Name}, nil
}

func (s *allergenService) DeleteAllergen(ctx context.Context, id uint) error {
	if err := s.allergenRepository.DeleteAllergen(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAllergenNotFound
		}
		return err
	}
	return nil
}
