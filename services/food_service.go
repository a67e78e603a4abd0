package services

import (
	"errors"

	"github.com/RidgwayA/cal-tracker/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
}

type FoodInput struct {
	Name     string  `json:"name" binding:"required"`
	Calories int     `json:"calories" binding:"min=0"`
	Protein  float64 `json:"protein" binding:"min=0"`
	Carbs    float64 `json:"carbs" binding:"min=0"`
	Fat      float64 `json:"fat" binding:"min=0"`
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// recomputeMealTotal rewrites the owning meal's cached total from a fresh
// SUM over its foods. Always full recompute, never an incremental delta.
func recomputeMealTotal(tx *gorm.DB, mealID uint) error {
	var total int64
	err := tx.Model(&models.Food{}).
		Where("meal_id = ?", mealID).
		Select("COALESCE(SUM(calories), 0)").
		Scan(&total).Error
	if err != nil {
		return err
	}
	return tx.Model(&models.Meal{}).
		Where("id = ?", mealID).
		Update("total_calories", total).Error
}

// ownedMeal resolves the meal and checks it belongs to userID. Cross-user
// ids come back as ErrNotFound so existence is not leaked.
func (s *FoodService) ownedMeal(tx *gorm.DB, userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	if err := tx.Where("id = ? AND user_id = ?", mealID, userID).First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (s *FoodService) AddFood(userID, mealID uint, in FoodInput) (*models.Food, error) {
	food := &models.Food{
		MealID:   mealID,
		Name:     in.Name,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.ownedMeal(tx, userID, mealID); err != nil {
			return err
		}
		if err := tx.Create(food).Error; err != nil {
			return err
		}
		return recomputeMealTotal(tx, mealID)
	})
	if err != nil {
		return nil, err
	}

	EmitChange(userID, ChangeEvent{Kind: "food.created", MealID: mealID, FoodID: food.ID})
	return food, nil
}

func (s *FoodService) ListFoods(userID, mealID uint) ([]models.Food, error) {
	if _, err := s.ownedMeal(s.db, userID, mealID); err != nil {
		return nil, err
	}
	foods := []models.Food{}
	err := s.db.Where("meal_id = ?", mealID).Order("id ASC").Find(&foods).Error
	return foods, err
}

// UpdateFood replaces all five mutable fields, then recomputes the owning
// meal's total.
func (s *FoodService) UpdateFood(userID, foodID uint, in FoodInput) (*models.Food, error) {
	var food models.Food

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&food, foodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if _, err := s.ownedMeal(tx, userID, food.MealID); err != nil {
			return err
		}

		food.Name = in.Name
		food.Calories = in.Calories
		food.Protein = in.Protein
		food.Carbs = in.Carbs
		food.Fat = in.Fat
		if err := tx.Save(&food).Error; err != nil {
			return err
		}
		return recomputeMealTotal(tx, food.MealID)
	})
	if err != nil {
		return nil, err
	}

	EmitChange(userID, ChangeEvent{Kind: "food.updated", MealID: food.MealID, FoodID: food.ID})
	return &food, nil
}

func (s *FoodService) DeleteFood(userID, foodID uint) error {
	var mealID uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var food models.Food
		if err := tx.First(&food, foodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if _, err := s.ownedMeal(tx, userID, food.MealID); err != nil {
			return err
		}
		mealID = food.MealID

		if err := tx.Delete(&food).Error; err != nil {
			return err
		}
		return recomputeMealTotal(tx, mealID)
	})
	if err != nil {
		return err
	}

	EmitChange(userID, ChangeEvent{Kind: "food.deleted", MealID: mealID, FoodID: foodID})
	return nil
}
