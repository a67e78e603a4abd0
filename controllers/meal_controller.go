package controllers

import (
	"net/http"
	"strconv"

	"github.com/RidgwayA/cal-tracker/config"
	"github.com/RidgwayA/cal-tracker/services"
	"github.com/RidgwayA/cal-tracker/utils"

	"github.com/gin-gonic/gin"
)

type AddMealInput struct {
	UserID   uint   `json:"user_id"`
	MealName string `json:"meal_name" binding:"required"`
	Date     string `json:"date"`
}

func AddMeal(c *gin.Context) {
	var input AddMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields in request body"})
		return
	}

	tokenID, _ := userIDFromCtx(c)
	if input.UserID != 0 && input.UserID != tokenID {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot create meals for another user"})
		return
	}

	// The ledger takes an explicit date; "today" is decided here.
	if input.Date == "" {
		input.Date = utils.Today()
	}
	if !utils.ValidDate(input.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	meal, err := services.NewMealService(config.DB).CreateMeal(tokenID, input.MealName, input.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// GET /meals/:userId/:date
func ListMealsForDate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	tokenID, ok := userIDFromCtx(c)
	if !ok || tokenID != uint(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	date := c.Param("date")
	if !utils.ValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	meals, err := services.NewMealService(config.DB).ListMealsForDate(tokenID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func DeleteMeal(c *gin.Context) {
	mealID, err := strconv.ParseUint(c.Param("mealId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}
	tokenID, _ := userIDFromCtx(c)

	if err := services.NewMealService(config.DB).DeleteMeal(tokenID, uint(mealID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal and associated foods deleted successfully"})
}
