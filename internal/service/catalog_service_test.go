package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "mealplan/internal/errors"
	"mealplan/internal/model"
)

func TestCatalogService_Add(t *testing.T) {
	tests := []struct {
		name          string
		dishName      string
		dishType      model.DishType
		category      string
		setupMock     func(*MockDishRepository)
		expectedError error
	}{
		{
			name:     "successful add",
			dishName: "Mapo Tofu",
			dishType: model.DishTypeVegetable,
			category: "sichuan",
			setupMock: func(m *MockDishRepository) {
				m.On("FindByName", mock.Anything, "Mapo Tofu").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Dish")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "blank name",
			dishName:      "   ",
			dishType:      model.DishTypeMeat,
			setupMock:     func(m *MockDishRepository) {},
			expectedError: apperrors.ErrValidation,
		},
		{
			name:          "unknown type",
			dishName:      "Mystery Dish",
			dishType:      model.DishType("dessert"),
			setupMock:     func(m *MockDishRepository) {},
			expectedError: apperrors.ErrValidation,
		},
		{
			name:     "duplicate name",
			dishName: "Mapo Tofu",
			dishType: model.DishTypeVegetable,
			setupMock: func(m *MockDishRepository) {
				m.On("FindByName", mock.Anything, "Mapo Tofu").Return(&model.Dish{ID: 9, Name: "Mapo Tofu"}, nil)
			},
			expectedError: apperrors.ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockDishRepository)
			tt.setupMock(mockRepo)

			svc := NewCatalogService(mockRepo)
			dish, err := svc.Add(context.Background(), tt.dishName, tt.dishType, tt.category)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, dish)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, dish)
				assert.Equal(t, tt.dishName, dish.Name)
				assert.Equal(t, tt.dishType, dish.Type)
				assert.Equal(t, tt.category, dish.Category)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_Add_TrimsName(t *testing.T) {
	mockRepo := new(MockDishRepository)
	mockRepo.On("FindByName", mock.Anything, "Braised Pork").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Dish")).Return(nil)

	svc := NewCatalogService(mockRepo)
	dish, err := svc.Add(context.Background(), "  Braised Pork  ", model.DishTypeMeat, "")

	assert.NoError(t, err)
	assert.Equal(t, "Braised Pork", dish.Name)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_Update(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		dishName      string
		setupMock     func(*MockDishRepository)
		expectedError error
	}{
		{
			name:     "successful update",
			id:       1,
			dishName: "Hot and Sour Soup",
			setupMock: func(m *MockDishRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.Dish{ID: 1, Name: "Egg Drop Soup", Type: model.DishTypeSoup}, nil)
				m.On("FindByName", mock.Anything, "Hot and Sour Soup").Return(nil, gorm.ErrRecordNotFound)
				m.On("Save", mock.Anything, mock.AnythingOfType("*model.Dish")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "renaming to own name is allowed",
			id:       1,
			dishName: "Egg Drop Soup",
			setupMock: func(m *MockDishRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.Dish{ID: 1, Name: "Egg Drop Soup", Type: model.DishTypeSoup}, nil)
				m.On("FindByName", mock.Anything, "Egg Drop Soup").Return(&model.Dish{ID: 1, Name: "Egg Drop Soup"}, nil)
				m.On("Save", mock.Anything, mock.AnythingOfType("*model.Dish")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "id not found",
			id:       42,
			dishName: "Hot and Sour Soup",
			setupMock: func(m *MockDishRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
		{
			name:     "name taken by another dish",
			id:       1,
			dishName: "Hot and Sour Soup",
			setupMock: func(m *MockDishRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.Dish{ID: 1, Name: "Egg Drop Soup", Type: model.DishTypeSoup}, nil)
				m.On("FindByName", mock.Anything, "Hot and Sour Soup").Return(&model.Dish{ID: 7, Name: "Hot and Sour Soup"}, nil)
			},
			expectedError: apperrors.ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockDishRepository)
			tt.setupMock(mockRepo)

			svc := NewCatalogService(mockRepo)
			dish, err := svc.Update(context.Background(), tt.id, tt.dishName, model.DishTypeSoup, "soup")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, dish)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.dishName, dish.Name)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		mockRepo := new(MockDishRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.Dish{ID: 3}, nil)
		mockRepo.On("Delete", mock.Anything, uint(3)).Return(nil)

		svc := NewCatalogService(mockRepo)
		assert.NoError(t, svc.Delete(context.Background(), 3))
		mockRepo.AssertExpectations(t)
	})

	t.Run("id not found", func(t *testing.T) {
		mockRepo := new(MockDishRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCatalogService(mockRepo)
		assert.ErrorIs(t, svc.Delete(context.Background(), 3), apperrors.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})
}
