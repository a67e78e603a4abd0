package models

import "time"

type User struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Email            string    `gorm:"uniqueIndex;not null" json:"email"`
	Password         string    `gorm:"not null" json:"-"`
	DateOfBirth      string    `gorm:"type:varchar(10)" json:"date_of_birth"`
	DailyCalorieGoal int       `json:"daily_calorie_goal"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}
