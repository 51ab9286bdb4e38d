package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mealplan/internal/model"
)

// MenuRepository defines week menu persistence operations.
type MenuRepository interface {
	ListEntries(ctx context.Context) ([]model.WeekMenuEntry, error)
	FindByDay(ctx context.Context, day int) (*model.WeekMenuEntry, error)
	UpsertDay(ctx context.Context, entry *model.WeekMenuEntry) error
	DeleteAll(ctx context.Context) error
	CreateBatch(ctx context.Context, entries []model.WeekMenuEntry) error
	ListPlans(ctx context.Context) ([]model.DayPlan, error)
	FindPlan(ctx context.Context, day int) (*model.DayPlan, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MenuRepository) error) error
}

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository.
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

// ListEntries returns all week menu rows ordered by day.
func (r *menuRepository) ListEntries(ctx context.Context) ([]model.WeekMenuEntry, error) {
	var entries []model.WeekMenuEntry
	if err := r.db.WithContext(ctx).Order("day ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByDay returns the entry for one day.
func (r *menuRepository) FindByDay(ctx context.Context, day int) (*model.WeekMenuEntry, error) {
	var entry model.WeekMenuEntry
	if err := r.db.WithContext(ctx).Where("day = ?", day).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpsertDay updates the row for entry.Day, inserting it if absent.
func (r *menuRepository) UpsertDay(ctx context.Context, entry *model.WeekMenuEntry) error {
	var existing model.WeekMenuEntry
	err := r.db.WithContext(ctx).Where("day = ?", entry.Day).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.WithContext(ctx).Create(entry).Error
	}
	if err != nil {
		return err
	}
	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(entry).Error
}

// DeleteAll clears the whole week.
func (r *menuRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.WeekMenuEntry{}).Error
}

// CreateBatch inserts week menu rows.
func (r *menuRepository) CreateBatch(ctx context.Context, entries []model.WeekMenuEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

// planRow is the flat shape of the plan join; dish columns are nullable both
// for empty slots and for dangling references.
type planRow struct {
	ID                uint
	Day               int
	GenerationID      uuid.UUID
	MeatDishID        *uint
	MeatName          *string
	MeatCategory      *string
	VegetableDishID   *uint
	VegetableName     *string
	VegetableCategory *string
	SoupDishID        *uint
	SoupName          *string
	SoupCategory      *string
}

const planSelect = `e.id, e.day, e.generation_id,
e.meat_dish_id, m.name AS meat_name, m.category AS meat_category,
e.vegetable_dish_id, v.name AS vegetable_name, v.category AS vegetable_category,
e.soup_dish_id, s.name AS soup_name, s.category AS soup_category`

func (r *menuRepository) planQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("week_menu_entries AS e").
		Select(planSelect).
		Joins("LEFT JOIN dishes m ON m.id = e.meat_dish_id").
		Joins("LEFT JOIN dishes v ON v.id = e.vegetable_dish_id").
		Joins("LEFT JOIN dishes s ON s.id = e.soup_dish_id")
}

// ListPlans returns the week joined with dish names, ordered by day.
func (r *menuRepository) ListPlans(ctx context.Context) ([]model.DayPlan, error) {
	var rows []planRow
	if err := r.planQuery(ctx).Order("e.day ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	plans := make([]model.DayPlan, 0, len(rows))
	for _, row := range rows {
		plans = append(plans, row.toPlan())
	}
	return plans, nil
}

// FindPlan returns one day joined with dish names.
func (r *menuRepository) FindPlan(ctx context.Context, day int) (*model.DayPlan, error) {
	var rows []planRow
	if err := r.planQuery(ctx).Where("e.day = ?", day).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	plan := rows[0].toPlan()
	return &plan, nil
}

// WithTransaction executes a function within a database transaction.
func (r *menuRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MenuRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &menuRepository{db: tx})
	})
}

func (row planRow) toPlan() model.DayPlan {
	return model.DayPlan{
		ID:           row.ID,
		Day:          row.Day,
		GenerationID: row.GenerationID,
		Meat:         slot(row.MeatDishID, row.MeatName, row.MeatCategory),
		Vegetable:    slot(row.VegetableDishID, row.VegetableName, row.VegetableCategory),
		Soup:         slot(row.SoupDishID, row.SoupName, row.SoupCategory),
	}
}

func slot(id *uint, name, category *string) *model.DishSlot {
	if id == nil {
		return nil
	}
	s := &model.DishSlot{DishID: *id}
	if name != nil {
		s.Name = *name
	}
	if category != nil {
		s.Category = *category
	}
	return s
}
