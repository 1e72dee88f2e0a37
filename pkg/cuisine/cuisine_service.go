package cuisine

import (
	"context"
	"errors"

	"recipe-catalog/domain"
	"recipe-catalog/entities"

	"gorm.io/gorm"
)

type (
	CuisineService interface {
		GetCuisines(ctx context.Context) ([]domain.CuisineResponse, error)
		GetCuisineByID(ctx context.Context, id uint) (domain.CuisineResponse, error)
		CreateCuisine(ctx context.Context, req domain.CuisineRequest) (domain.CuisineResponse, error)
		UpdateCuisine(ctx context.Context, id uint, req domain.CuisineRequest) (domain.CuisineResponse, error)
		DeleteCuisine(ctx context.Context, id uint) error
	}

	cuisineService struct {
		cuisineRepository CuisineRepository
	}
)

func NewCuisineService(cuisineRepository CuisineRepository) CuisineService {
	return &cuisineService{cuisineRepository: cuisineRepository}
}

func (s *cuisineService) GetCuisines(ctx context.Context) ([]domain.CuisineResponse, error) {
	cuisines, err := s.cuisineRepository.GetCuisines(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.CuisineResponse, 0, len(cuisines))
	for _, c := range cuisines {
		res = append(res, domain.CuisineResponse{ID: c.ID, Name: c.Name})
	}
	return res, nil
}

func (s *cuisineService) GetCuisineByID(ctx context.Context, id uint) (domain.CuisineResponse, error) {
	cuisine, err := s.cuisineRepository.GetCuisineByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CuisineResponse{}, domain.ErrCuisineNotFound
		}
		return domain.CuisineResponse{}, err
	}
	return domain.CuisineResponse{ID: cuisine.ID, Name: cuisine.Name}, nil
}

func (s *cuisineService) CreateCuisine(ctx context.Context, req domain.CuisineRequest) (domain.CuisineResponse, error) {
	cuisine := &entities.Cuisine{Name: req.Name}
	if err := s.cuisineRepository.CreateCuisine(ctx, cuisine); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.CuisineResponse{}, domain.ErrCuisineNameTaken
		}
		return domain.CuisineResponse{}, err
	}
	return domain.CuisineResponse{ID: cuisine.ID, Name: cuisine.Name}, nil
}

func (s *cuisineService) UpdateCuisine(ctx context.Context, id uint, req domain.CuisineRequest) (domain.CuisineResponse, error) {
	cuisine, err := s.cuisineRepository.GetCuisineByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CuisineResponse{}, domain.ErrCuisineNotFound
		}
		return domain.CuisineResponse{}, err
	}

	cuisine.Name = req.Name
	if err := s.cuisineRepository.UpdateCuisine(ctx, cuisine); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.CuisineResponse{}, domain.ErrCuisineNameTaken
		}
		return domain.CuisineResponse{}, err
	}
	return domain.CuisineResponse{ID: cuisine.ID, Name: cuisine.Name}, nil
}

func (s *cuisineService) DeleteCuisine(ctx context.Context, id uint) error {
	if err := s.cuisineRepository.DeleteCuisine(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCuisineNotFound
		}
		return err
	}
	return nil
}
