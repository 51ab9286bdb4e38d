package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "mealplan/internal/errors"
	"mealplan/internal/model"
	"mealplan/internal/repository"
)

// CatalogService handles dish catalog operations.
type CatalogService interface {
	Add(ctx context.Context, name string, dishType model.DishType, category string) (*model.Dish, error)
	List(ctx context.Context) ([]model.Dish, error)
	Update(ctx context.Context, id uint, name string, dishType model.DishType, category string) (*model.Dish, error)
	Delete(ctx context.Context, id uint) error
}

type catalogService struct {
	dishRepo repository.DishRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(dishRepo repository.DishRepository) CatalogService {
	return &catalogService{dishRepo: dishRepo}
}

// Add creates a new dish.
func (s *catalogService) Add(ctx context.Context, name string, dishType model.DishType, category string) (*model.Dish, error) {
	name = strings.TrimSpace(name)
	if err := validateDish(name, dishType); err != nil {
		return nil, err
	}

	// Uniqueness is case-sensitive; the NOCASE collation applies to ordering only.
	if err := s.checkNameFree(ctx, name, 0); err != nil {
		return nil, err
	}

	dish := &model.Dish{
		Name:     name,
		Type:     dishType,
		Category: category,
	}
	if err := s.dishRepo.Create(ctx, dish); err != nil {
		return nil, fmt.Errorf("create dish: %w", err)
	}
	return dish, nil
}

// List returns the catalog ordered by name.
func (s *catalogService) List(ctx context.Context) ([]model.Dish, error) {
	return s.dishRepo.List(ctx)
}

// Update rewrites an existing dish. A zero-row match is reported as not found
// rather than silently ignored.
func (s *catalogService) Update(ctx context.Context, id uint, name string, dishType model.DishType, category string) (*model.Dish, error) {
	name = strings.TrimSpace(name)
	if err := validateDish(name, dishType); err != nil {
		return nil, err
	}

	dish, err := s.dishRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find dish: %w", err)
	}

	if err := s.checkNameFree(ctx, name, id); err != nil {
		return nil, err
	}

	dish.Name = name
	dish.Type = dishType
	dish.Category = category
	if err := s.dishRepo.Save(ctx, dish); err != nil {
		return nil, fmt.Errorf("update dish: %w", err)
	}
	return dish, nil
}

// Delete removes a dish. Menu and recommendation rows referencing it are left
// in place and tolerated by reads.
func (s *catalogService) Delete(ctx context.Context, id uint) error {
	if _, err := s.dishRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("find dish: %w", err)
	}
	if err := s.dishRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete dish: %w", err)
	}
	return nil
}

// checkNameFree fails with ErrDuplicateName when another dish holds the name.
// selfID excludes the dish being updated from the check.
func (s *catalogService) checkNameFree(ctx context.Context, name string, selfID uint) error {
	existing, err := s.dishRepo.FindByName(ctx, name)
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("check dish name: %w", err)
	}
	if existing.ID != selfID {
		return apperrors.ErrDuplicateName
	}
	return nil
}

func validateDish(name string, dishType model.DishType) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", apperrors.ErrValidation)
	}
	if !dishType.Valid() {
		return fmt.Errorf("%w: unknown dish type %q", apperrors.ErrValidation, dishType)
	}
	return nil
}
