package models

import "time"

// TotalCalories on the owning Meal is derived from these rows; every food
// mutation recomputes it from scratch.
type Food struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	MealID    uint      `gorm:"index;not null" json:"meal_id"`
	Name      string    `gorm:"not null" json:"name"`
	Calories  int       `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
