package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"mealplan/internal/model"
	"mealplan/internal/repository"
)

// MockDishRepository is a mock implementation of DishRepository.
type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) Create(ctx context.Context, dish *model.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockDishRepository) Save(ctx context.Context, dish *model.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockDishRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDishRepository) FindByID(ctx context.Context, id uint) (*model.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishRepository) FindByName(ctx context.Context, name string) (*model.Dish, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishRepository) List(ctx context.Context) ([]model.Dish, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockDishRepository) ListByType(ctx context.Context, dishType model.DishType) ([]model.Dish, error) {
	args := m.Called(ctx, dishType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

// MockRecommendationRepository is a mock implementation of RecommendationRepository.
// WithTransaction runs the closure against the mock itself.
type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) Candidates(ctx context.Context, dishType model.DishType, since *time.Time) ([]model.Dish, error) {
	args := m.Called(ctx, dishType, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockRecommendationRepository) CreateBatch(ctx context.Context, records []model.RecommendationRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockRecommendationRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.RecommendationRepository) error) error {
	return fn(ctx, m)
}

// MockMenuRepository is a mock implementation of MenuRepository.
// WithTransaction runs the closure against the mock itself.
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) ListEntries(ctx context.Context) ([]model.WeekMenuEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WeekMenuEntry), args.Error(1)
}

func (m *MockMenuRepository) FindByDay(ctx context.Context, day int) (*model.WeekMenuEntry, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WeekMenuEntry), args.Error(1)
}

func (m *MockMenuRepository) UpsertDay(ctx context.Context, entry *model.WeekMenuEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockMenuRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuRepository) CreateBatch(ctx context.Context, entries []model.WeekMenuEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockMenuRepository) ListPlans(ctx context.Context) ([]model.DayPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DayPlan), args.Error(1)
}

func (m *MockMenuRepository) FindPlan(ctx context.Context, day int) (*model.DayPlan, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DayPlan), args.Error(1)
}

func (m *MockMenuRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.MenuRepository) error) error {
	return fn(ctx, m)
}
