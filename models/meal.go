package models

import "time"

// One logged meal (Breakfast/Lunch/…) for one user on one calendar day.
// Date is a YYYY-MM-DD string; days are compared by exact equality.
type Meal struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	MealName      string    `gorm:"not null" json:"meal_name"`
	Date          string    `gorm:"type:varchar(10);index;not null" json:"date"`
	TotalCalories int       `json:"total_calories"`
	Foods         []Food    `json:"foods"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}
