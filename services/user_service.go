package services

import (
	"errors"

	"github.com/RidgwayA/cal-tracker/config"
	"github.com/RidgwayA/cal-tracker/models"
	"github.com/RidgwayA/cal-tracker/utils"

	"gorm.io/gorm"
)

// PreferencesInput carries a partial profile update. Pointers distinguish
// "not supplied" from zero values so only supplied fields are touched.
type PreferencesInput struct {
	Name             *string `json:"name"`
	Email            *string `json:"email"`
	DateOfBirth      *string `json:"date_of_birth"`
	DailyCalorieGoal *int    `json:"daily_calorie_goal"`
}

func (p PreferencesInput) empty() bool {
	return p.Name == nil && p.Email == nil && p.DateOfBirth == nil && p.DailyCalorieGoal == nil
}

func GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func UpdateUserPreferences(userID uint, input PreferencesInput) error {
	if input.empty() {
		return ErrValidation
	}
	if input.DateOfBirth != nil && !utils.ValidDate(*input.DateOfBirth) {
		return ErrValidation
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = *input.DateOfBirth
	}
	if input.DailyCalorieGoal != nil {
		user.DailyCalorieGoal = *input.DailyCalorieGoal
	}

	return config.DB.Save(&user).Error
}
