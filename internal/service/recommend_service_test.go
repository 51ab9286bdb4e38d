package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "mealplan/internal/errors"
	"mealplan/internal/model"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func dishes(t model.DishType, ids ...uint) []model.Dish {
	out := make([]model.Dish, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Dish{ID: id, Type: t})
	}
	return out
}

func TestRecommendService_Recommend(t *testing.T) {
	mockRepo := new(MockRecommendationRepository)
	mockRepo.On("Candidates", mock.Anything, model.DishTypeMeat, (*time.Time)(nil)).
		Return(dishes(model.DishTypeMeat, 1, 2, 3, 4), nil)
	mockRepo.On("Candidates", mock.Anything, model.DishTypeVegetable, (*time.Time)(nil)).
		Return(dishes(model.DishTypeVegetable, 10, 11, 12), nil)
	mockRepo.On("Candidates", mock.Anything, model.DishTypeSoup, (*time.Time)(nil)).
		Return(dishes(model.DishTypeSoup, 20), nil)

	var recorded []model.RecommendationRecord
	mockRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		recorded = args.Get(1).([]model.RecommendationRecord)
	})

	svc := NewRecommendService(mockRepo, testRng())
	sel, err := svc.Recommend(context.Background(), 2, 2, 1, false)

	assert.NoError(t, err)
	assert.Len(t, sel.Meat, 2)
	assert.Len(t, sel.Vegetable, 2)
	assert.Len(t, sel.Soup, 1)

	// No duplicate ids within a category's result.
	seen := make(map[uint]bool)
	for _, d := range sel.Meat {
		assert.False(t, seen[d.ID])
		seen[d.ID] = true
	}

	// Every returned dish is logged for the lookback window.
	assert.Len(t, recorded, 5)
	logged := make(map[uint]bool)
	for _, rec := range recorded {
		logged[rec.DishID] = true
		assert.WithinDuration(t, time.Now(), rec.RecommendedDate, time.Minute)
	}
	for _, d := range append(append(sel.Meat, sel.Vegetable...), sel.Soup...) {
		assert.True(t, logged[d.ID])
	}

	mockRepo.AssertExpectations(t)
}

func TestRecommendService_Recommend_PartialPool(t *testing.T) {
	mockRepo := new(MockRecommendationRepository)
	mockRepo.On("Candidates", mock.Anything, model.DishTypeMeat, (*time.Time)(nil)).
		Return(dishes(model.DishTypeMeat, 1), nil)
	mockRepo.On("Candidates", mock.Anything, model.DishTypeVegetable, (*time.Time)(nil)).
		Return([]model.Dish{}, nil)
	mockRepo.On("Candidates", mock.Anything, model.DishTypeSoup, (*time.Time)(nil)).
		Return([]model.Dish{}, nil)
	mockRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)

	svc := NewRecommendService(mockRepo, testRng())
	sel, err := svc.Recommend(context.Background(), 3, 2, 1, false)

	// Short pools shrink the result, they never error.
	assert.NoError(t, err)
	assert.Len(t, sel.Meat, 1)
	assert.Empty(t, sel.Vegetable)
	assert.Empty(t, sel.Soup)

	mockRepo.AssertExpectations(t)
}

func TestRecommendService_Recommend_NoRepeatWindow(t *testing.T) {
	mockRepo := new(MockRecommendationRepository)

	var sinces []*time.Time
	matchSince := mock.MatchedBy(func(since *time.Time) bool {
		sinces = append(sinces, since)
		return since != nil
	})
	mockRepo.On("Candidates", mock.Anything, model.DishTypeMeat, matchSince).
		Return([]model.Dish{}, nil)
	mockRepo.On("Candidates", mock.Anything, model.DishTypeVegetable, matchSince).
		Return([]model.Dish{}, nil)
	mockRepo.On("Candidates", mock.Anything, model.DishTypeSoup, matchSince).
		Return([]model.Dish{}, nil)
	mockRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)

	svc := NewRecommendService(mockRepo, testRng())
	_, err := svc.Recommend(context.Background(), 1, 1, 1, true)

	assert.NoError(t, err)
	for _, since := range sinces {
		if assert.NotNil(t, since) {
			assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), *since, time.Minute)
		}
	}

	mockRepo.AssertExpectations(t)
}

func TestRecommendService_Recommend_NegativeCount(t *testing.T) {
	svc := NewRecommendService(new(MockRecommendationRepository), testRng())
	_, err := svc.Recommend(context.Background(), -1, 0, 0, false)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
