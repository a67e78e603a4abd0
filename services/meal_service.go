// services/meal_service.go
package services

import (
	"errors"

	"github.com/RidgwayA/cal-tracker/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

func (s *MealService) CreateMeal(userID uint, mealName, date string) (*models.Meal, error) {
	if userID == 0 || mealName == "" || date == "" {
		return nil, ErrValidation
	}

	meal := &models.Meal{
		UserID:        userID,
		MealName:      mealName,
		Date:          date,
		TotalCalories: 0,
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}
	meal.Foods = []models.Food{}

	EmitChange(userID, ChangeEvent{Kind: "meal.created", MealID: meal.ID, Date: date})
	return meal, nil
}

// ListMealsForDate returns every meal for the (user, date) pair, each with
// its foods. The stored total is checked against the sum of the foods'
// calories; if they disagree the computed value wins and the store is
// corrected in place. A failed correction is logged and the read still
// returns the computed value, so a caller never sees a stale total.
func (s *MealService) ListMealsForDate(userID uint, date string) ([]models.Meal, error) {
	meals := []models.Meal{}
	err := s.db.
		Preload("Foods").
		Where("user_id = ? AND date = ?", userID, date).
		Order("id ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	for i := range meals {
		computed := 0
		for _, f := range meals[i].Foods {
			computed += f.Calories
		}
		if computed != meals[i].TotalCalories {
			if err := s.db.Model(&models.Meal{}).
				Where("id = ?", meals[i].ID).
				Update("total_calories", computed).Error; err != nil {
				zap.L().Warn("total_calories correction failed",
					zap.Uint("meal_id", meals[i].ID),
					zap.Error(err))
			}
			meals[i].TotalCalories = computed
		}
		if meals[i].Foods == nil {
			meals[i].Foods = []models.Food{}
		}
	}
	return meals, nil
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Preload("Foods").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal removes the meal and every food it owns in one transaction,
// so a crash cannot strand orphaned foods.
func (s *MealService) DeleteMeal(userID, mealID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		if err := tx.Where("id = ? AND user_id = ?", mealID, userID).
			First(&meal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("meal_id = ?", mealID).
			Delete(&models.Food{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meal).Error
	})
	if err != nil {
		return err
	}

	EmitChange(userID, ChangeEvent{Kind: "meal.deleted", MealID: mealID})
	return nil
}
