package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"mealplan/internal/model"
)

// RecommendationRepository defines recommendation log persistence operations.
type RecommendationRepository interface {
	// Candidates returns dishes of the given type. When since is non-nil,
	// dishes with a recommendation record dated since or later are excluded.
	Candidates(ctx context.Context, dishType model.DishType, since *time.Time) ([]model.Dish, error)
	CreateBatch(ctx context.Context, records []model.RecommendationRecord) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo RecommendationRepository) error) error
}

type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository creates a new recommendation repository.
func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

// Candidates returns the eligible dishes for one category.
func (r *recommendationRepository) Candidates(ctx context.Context, dishType model.DishType, since *time.Time) ([]model.Dish, error) {
	q := r.db.WithContext(ctx).Where("type = ?", dishType)
	if since != nil {
		q = q.Where(
			"id NOT IN (?)",
			r.db.Model(&model.RecommendationRecord{}).
				Select("dish_id").
				Where("recommended_date >= ?", *since),
		)
	}

	var dishes []model.Dish
	if err := q.Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

// CreateBatch appends recommendation records. A nil or empty batch is a no-op.
func (r *recommendationRepository) CreateBatch(ctx context.Context, records []model.RecommendationRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&records).Error
}

// WithTransaction executes a function within a database transaction.
func (r *recommendationRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo RecommendationRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &recommendationRepository{db: tx})
	})
}
