package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "mealplan/internal/errors"
	"mealplan/internal/model"
	"mealplan/internal/repository"
)

const daysPerWeek = 7

// MenuService builds and adjusts the 7-day plan.
type MenuService interface {
	Plan(ctx context.Context) ([]model.DayPlan, error)
	Generate(ctx context.Context) ([]model.DayPlan, error)
	RegenerateDay(ctx context.Context, day int) (*model.DayPlan, error)
}

type menuService struct {
	dishRepo repository.DishRepository
	menuRepo repository.MenuRepository

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMenuService creates a new menu service.
func NewMenuService(dishRepo repository.DishRepository, menuRepo repository.MenuRepository, rng *rand.Rand) MenuService {
	return &menuService{dishRepo: dishRepo, menuRepo: menuRepo, rng: rng}
}

// Plan returns the current week joined with dish names, ordered by day.
func (s *menuService) Plan(ctx context.Context) ([]model.DayPlan, error) {
	return s.menuRepo.ListPlans(ctx)
}

// Generate replaces the whole week: each category pool is shuffled and day d
// takes the d-th element. The meat and vegetable pools must each hold at least
// 7 dishes; the soup pool must be empty (no soup rotation) or hold at least 7.
// Validation happens before any write, and the delete-and-insert runs in one
// transaction, so a failed generation leaves the previous plan intact.
func (s *menuService) Generate(ctx context.Context) ([]model.DayPlan, error) {
	meat, vegetable, soup, err := s.loadPools(ctx)
	if err != nil {
		return nil, err
	}

	if len(meat) < daysPerWeek || len(vegetable) < daysPerWeek {
		return nil, fmt.Errorf("%w: need %d meat and %d vegetable dishes", apperrors.ErrInsufficientCatalog, daysPerWeek, daysPerWeek)
	}
	if len(soup) > 0 && len(soup) < daysPerWeek {
		return nil, fmt.Errorf("%w: soup pool must be empty or hold %d dishes", apperrors.ErrInsufficientCatalog, daysPerWeek)
	}

	s.mu.Lock()
	s.rng.Shuffle(len(meat), func(i, j int) { meat[i], meat[j] = meat[j], meat[i] })
	s.rng.Shuffle(len(vegetable), func(i, j int) { vegetable[i], vegetable[j] = vegetable[j], vegetable[i] })
	s.rng.Shuffle(len(soup), func(i, j int) { soup[i], soup[j] = soup[j], soup[i] })
	s.mu.Unlock()

	generationID := uuid.New()
	entries := make([]model.WeekMenuEntry, 0, daysPerWeek)
	for day := 0; day < daysPerWeek; day++ {
		entry := model.WeekMenuEntry{
			Day:             day,
			MeatDishID:      &meat[day].ID,
			VegetableDishID: &vegetable[day].ID,
			GenerationID:    generationID,
		}
		if len(soup) > 0 {
			entry.SoupDishID = &soup[day].ID
		}
		entries = append(entries, entry)
	}

	err = s.menuRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.MenuRepository) error {
		if err := repo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear week menu: %w", err)
		}
		if err := repo.CreateBatch(ctx, entries); err != nil {
			return fmt.Errorf("insert week menu: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.menuRepo.ListPlans(ctx)
}

// RegenerateDay redraws all three slots of one day. Each slot draws from its
// own category pool minus every dish already used on the other six days. An
// empty category pool leaves the slot empty; a nonempty pool with no unused
// dish fails the whole operation and writes nothing.
func (s *menuService) RegenerateDay(ctx context.Context, day int) (*model.DayPlan, error) {
	if day < 0 || day >= daysPerWeek {
		return nil, fmt.Errorf("%w: day must be between 0 and 6", apperrors.ErrValidation)
	}

	meat, vegetable, soup, err := s.loadPools(ctx)
	if err != nil {
		return nil, err
	}

	err = s.menuRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.MenuRepository) error {
		entries, err := repo.ListEntries(ctx)
		if err != nil {
			return fmt.Errorf("load week menu: %w", err)
		}

		used := make(map[uint]bool)
		generationID := uuid.New()
		for _, entry := range entries {
			if entry.Day == day {
				generationID = entry.GenerationID
				continue
			}
			for _, id := range []*uint{entry.MeatDishID, entry.VegetableDishID, entry.SoupDishID} {
				if id != nil {
					used[*id] = true
				}
			}
		}

		entry := model.WeekMenuEntry{Day: day, GenerationID: generationID}
		if entry.MeatDishID, err = s.drawUnused(meat, used); err != nil {
			return err
		}
		if entry.VegetableDishID, err = s.drawUnused(vegetable, used); err != nil {
			return err
		}
		if entry.SoupDishID, err = s.drawUnused(soup, used); err != nil {
			return err
		}

		return repo.UpsertDay(ctx, &entry)
	})
	if err != nil {
		return nil, err
	}

	plan, err := s.menuRepo.FindPlan(ctx, day)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return plan, nil
}

// drawUnused picks one dish uniformly at random from pool minus used. A nil
// result with nil error means the pool itself is empty (slot stays unset).
func (s *menuService) drawUnused(pool []model.Dish, used map[uint]bool) (*uint, error) {
	if len(pool) == 0 {
		return nil, nil
	}

	eligible := make([]uint, 0, len(pool))
	for _, dish := range pool {
		if !used[dish.ID] {
			eligible = append(eligible, dish.ID)
		}
	}
	if len(eligible) == 0 {
		return nil, apperrors.ErrNoAvailableDish
	}

	s.mu.Lock()
	id := eligible[s.rng.Intn(len(eligible))]
	s.mu.Unlock()
	return &id, nil
}

func (s *menuService) loadPools(ctx context.Context) (meat, vegetable, soup []model.Dish, err error) {
	if meat, err = s.dishRepo.ListByType(ctx, model.DishTypeMeat); err != nil {
		return nil, nil, nil, fmt.Errorf("load meat pool: %w", err)
	}
	if vegetable, err = s.dishRepo.ListByType(ctx, model.DishTypeVegetable); err != nil {
		return nil, nil, nil, fmt.Errorf("load vegetable pool: %w", err)
	}
	if soup, err = s.dishRepo.ListByType(ctx, model.DishTypeSoup); err != nil {
		return nil, nil, nil, fmt.Errorf("load soup pool: %w", err)
	}
	return meat, vegetable, soup, nil
}
