// services/summary_service.go
package services

import (
	"gorm.io/gorm"
)

type DailySummary struct {
	Date     string  `json:"date"`
	Consumed int     `json:"consumed"`
	Goal     int     `json:"goal"`
	Percent  float64 `json:"percent"`
	Meals    int     `json:"meals"`
}

// Summarize totals one user's day against their calorie goal. It rides on
// ListMealsForDate, so these numbers reflect reconciled totals.
func Summarize(db *gorm.DB, userID uint, date string) (*DailySummary, error) {
	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}

	meals, err := NewMealService(db).ListMealsForDate(userID, date)
	if err != nil {
		return nil, err
	}

	consumed := 0
	for _, m := range meals {
		consumed += m.TotalCalories
	}

	pct := func(consumed, goal int) float64 {
		if goal <= 0 {
			return 0
		}
		p := float64(consumed) / float64(goal)
		if p > 1 {
			return 1
		}
		return p
	}

	return &DailySummary{
		Date:     date,
		Consumed: consumed,
		Goal:     user.DailyCalorieGoal,
		Percent:  pct(consumed, user.DailyCalorieGoal),
		Meals:    len(meals),
	}, nil
}
