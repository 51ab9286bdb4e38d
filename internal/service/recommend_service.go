package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	apperrors "mealplan/internal/errors"
	"mealplan/internal/model"
	"mealplan/internal/repository"
)

// lookbackDays is the trailing exclusion window for no-repeat recommendations.
const lookbackDays = 7

// Selection groups recommended dishes by category.
type Selection struct {
	Meat      []model.Dish `json:"meat"`
	Vegetable []model.Dish `json:"vegetable"`
	Soup      []model.Dish `json:"soup"`
}

// RecommendService draws random dishes per category and logs every draw so
// future calls can exclude the trailing week.
type RecommendService interface {
	Recommend(ctx context.Context, meat, vegetable, soup int, noRepeatInWeek bool) (*Selection, error)
}

type recommendService struct {
	recRepo repository.RecommendationRepository

	// rng is injected so selection is deterministic under test. rand.Rand is
	// not safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRecommendService creates a new recommendation service.
func NewRecommendService(recRepo repository.RecommendationRepository, rng *rand.Rand) RecommendService {
	return &recommendService{recRepo: recRepo, rng: rng}
}

// Recommend selects up to the requested number of dishes per category. Smaller
// candidate pools yield shorter lists, never an error. The candidate reads and
// the record write happen in one transaction.
func (s *recommendService) Recommend(ctx context.Context, meat, vegetable, soup int, noRepeatInWeek bool) (*Selection, error) {
	if meat < 0 || vegetable < 0 || soup < 0 {
		return nil, fmt.Errorf("%w: counts must not be negative", apperrors.ErrValidation)
	}

	var since *time.Time
	if noRepeatInWeek {
		cutoff := time.Now().AddDate(0, 0, -lookbackDays)
		since = &cutoff
	}

	counts := map[model.DishType]int{
		model.DishTypeMeat:      meat,
		model.DishTypeVegetable: vegetable,
		model.DishTypeSoup:      soup,
	}

	selection := &Selection{
		Meat:      []model.Dish{},
		Vegetable: []model.Dish{},
		Soup:      []model.Dish{},
	}

	err := s.recRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.RecommendationRepository) error {
		now := time.Now()
		var records []model.RecommendationRecord

		for _, dishType := range []model.DishType{model.DishTypeMeat, model.DishTypeVegetable, model.DishTypeSoup} {
			candidates, err := repo.Candidates(ctx, dishType, since)
			if err != nil {
				return fmt.Errorf("load %s candidates: %w", dishType, err)
			}

			picked := s.draw(candidates, counts[dishType])
			for _, dish := range picked {
				records = append(records, model.RecommendationRecord{
					DishID:          dish.ID,
					RecommendedDate: now,
				})
			}

			switch dishType {
			case model.DishTypeMeat:
				selection.Meat = picked
			case model.DishTypeVegetable:
				selection.Vegetable = picked
			case model.DishTypeSoup:
				selection.Soup = picked
			}
		}

		if err := repo.CreateBatch(ctx, records); err != nil {
			return fmt.Errorf("record recommendations: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return selection, nil
}

// draw takes a count-length prefix of an unbiased random permutation of dishes.
func (s *recommendService) draw(dishes []model.Dish, count int) []model.Dish {
	if count > len(dishes) {
		count = len(dishes)
	}

	s.mu.Lock()
	perm := s.rng.Perm(len(dishes))
	s.mu.Unlock()

	picked := make([]model.Dish, 0, count)
	for _, idx := range perm[:count] {
		picked = append(picked, dishes[idx])
	}
	return picked
}
