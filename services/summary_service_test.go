package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, "u@example.com") // goal 2000

	ms := NewMealService(db)
	fs := NewFoodService(db)

	breakfast, err := ms.CreateMeal(user.ID, "Breakfast", "2024-01-01")
	require.NoError(t, err)
	lunch, err := ms.CreateMeal(user.ID, "Lunch", "2024-01-01")
	require.NoError(t, err)
	_, err = fs.AddFood(user.ID, breakfast.ID, FoodInput{Name: "Oats", Calories: 300})
	require.NoError(t, err)
	_, err = fs.AddFood(user.ID, lunch.ID, FoodInput{Name: "Rice", Calories: 700})
	require.NoError(t, err)

	sum, err := Summarize(db, user.ID, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 1000, sum.Consumed)
	assert.Equal(t, 2000, sum.Goal)
	assert.InDelta(t, 0.5, sum.Percent, 1e-9)
	assert.Equal(t, 2, sum.Meals)
}

func TestSummarizePercentClamped(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, "u@example.com")

	ms := NewMealService(db)
	fs := NewFoodService(db)

	meal, err := ms.CreateMeal(user.ID, "Feast", "2024-01-01")
	require.NoError(t, err)
	_, err = fs.AddFood(user.ID, meal.ID, FoodInput{Name: "Everything", Calories: 9000})
	require.NoError(t, err)

	sum, err := Summarize(db, user.ID, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 9000, sum.Consumed)
	assert.Equal(t, 1.0, sum.Percent)
}

func TestSummarizeUnknownUser(t *testing.T) {
	db := setupTestDB(t)

	_, err := Summarize(db, 4242, "2024-01-01")
	assert.ErrorIs(t, err, ErrNotFound)
}
