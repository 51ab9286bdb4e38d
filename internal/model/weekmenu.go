package model

import (
	"time"

	"github.com/google/uuid"
)

// WeekMenuEntry is one day of the weekly plan, holding one optional dish
// reference per category. Dish ids may dangle after a catalog delete; reads
// join with LEFT JOIN and tolerate missing names.
type WeekMenuEntry struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Day             int       `json:"day" gorm:"not null;uniqueIndex"`
	MeatDishID      *uint     `json:"meat_dish_id" gorm:"index"`
	VegetableDishID *uint     `json:"vegetable_dish_id" gorm:"index"`
	SoupDishID      *uint     `json:"soup_dish_id" gorm:"index"`
	GenerationID    uuid.UUID `json:"generation_id" gorm:"type:char(36);not null"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName sets the table name for this struct type.
func (WeekMenuEntry) TableName() string {
	return "week_menu_entries"
}

// DayPlan is a WeekMenuEntry joined with dish names for display.
type DayPlan struct {
	ID           uint      `json:"id"`
	Day          int       `json:"day"`
	Meat         *DishSlot `json:"meat"`
	Vegetable    *DishSlot `json:"vegetable"`
	Soup         *DishSlot `json:"soup"`
	GenerationID uuid.UUID `json:"generation_id"`
}

// DishSlot is the resolved dish behind one slot of a day plan. Name and
// category are empty when the referenced dish has been deleted.
type DishSlot struct {
	DishID   uint   `json:"dish_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
