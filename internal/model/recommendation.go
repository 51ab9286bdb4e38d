package model

import "time"

// RecommendationRecord is one appended entry of the recommendation log.
// Rows are never updated or deleted by the application; they exist only to
// answer "was this dish recommended within the trailing week". A record may
// outlive its dish (deletes do not cascade), which is fine for the lookback.
type RecommendationRecord struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	DishID          uint      `json:"dish_id" gorm:"not null;index"`
	RecommendedDate time.Time `json:"recommended_date" gorm:"not null;index"`
}

// TableName sets the table name for this struct type.
func (RecommendationRecord) TableName() string {
	return "recommendation_records"
}
