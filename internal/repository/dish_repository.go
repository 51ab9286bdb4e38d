package repository

import (
	"context"

	"gorm.io/gorm"

	"mealplan/internal/model"
)

// DishRepository defines dish catalog persistence operations.
type DishRepository interface {
	Create(ctx context.Context, dish *model.Dish) error
	Save(ctx context.Context, dish *model.Dish) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Dish, error)
	FindByName(ctx context.Context, name string) (*model.Dish, error)
	List(ctx context.Context) ([]model.Dish, error)
	ListByType(ctx context.Context, dishType model.DishType) ([]model.Dish, error)
}

type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository creates a new dish repository.
func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

// Create inserts a new dish.
func (r *dishRepository) Create(ctx context.Context, dish *model.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

// Save updates an existing dish.
func (r *dishRepository) Save(ctx context.Context, dish *model.Dish) error {
	return r.db.WithContext(ctx).Save(dish).Error
}

// Delete removes a dish. Rows referencing it elsewhere are left dangling.
func (r *dishRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Dish{}, id).Error
}

// FindByID finds a dish by ID.
func (r *dishRepository) FindByID(ctx context.Context, id uint) (*model.Dish, error) {
	var dish model.Dish
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

// FindByName finds a dish by its exact (case-sensitive) name.
func (r *dishRepository) FindByName(ctx context.Context, name string) (*model.Dish, error) {
	var dish model.Dish
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

// List returns all dishes ordered by name, case-insensitively.
func (r *dishRepository) List(ctx context.Context) ([]model.Dish, error) {
	var dishes []model.Dish
	if err := r.db.WithContext(ctx).Order("name COLLATE NOCASE ASC").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

// ListByType returns all dishes of one type.
func (r *dishRepository) ListByType(ctx context.Context, dishType model.DishType) ([]model.Dish, error) {
	var dishes []model.Dish
	if err := r.db.WithContext(ctx).Where("type = ?", dishType).Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}
