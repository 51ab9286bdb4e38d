package model

import "time"

// DishType partitions the catalog into the three menu slots.
type DishType string

const (
	DishTypeMeat      DishType = "meat"
	DishTypeVegetable DishType = "vegetable"
	DishTypeSoup      DishType = "soup"
)

// Valid reports whether t is one of the known dish types.
func (t DishType) Valid() bool {
	switch t {
	case DishTypeMeat, DishTypeVegetable, DishTypeSoup:
		return true
	}
	return false
}

// Dish represents a catalog entry. Names are unique case-sensitively; the
// case-insensitive collation applies only to list ordering.
type Dish struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Type      DishType  `json:"type" gorm:"type:varchar(20);not null;index"`
	Category  string    `json:"category" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for this struct type.
func (Dish) TableName() string {
	return "dishes"
}
