package controllers

import (
	"net/http"
	"strconv"

	"github.com/RidgwayA/cal-tracker/config"
	"github.com/RidgwayA/cal-tracker/services"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// POST /foods/:mealId
func AddFood(c *gin.Context) {
	mealID, ok := pathID(c, "mealId")
	if !ok {
		return
	}
	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tokenID, _ := userIDFromCtx(c)

	food, err := services.NewFoodService(config.DB).AddFood(tokenID, mealID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

// GET /foods/:mealId
func ListFoods(c *gin.Context) {
	mealID, ok := pathID(c, "mealId")
	if !ok {
		return
	}
	tokenID, _ := userIDFromCtx(c)

	foods, err := services.NewFoodService(config.DB).ListFoods(tokenID, mealID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// PUT /foods/:foodId
func UpdateFood(c *gin.Context) {
	foodID, ok := pathID(c, "foodId")
	if !ok {
		return
	}
	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tokenID, _ := userIDFromCtx(c)

	food, err := services.NewFoodService(config.DB).UpdateFood(tokenID, foodID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// DELETE /foods/:foodId
func DeleteFood(c *gin.Context) {
	foodID, ok := pathID(c, "foodId")
	if !ok {
		return
	}
	tokenID, _ := userIDFromCtx(c)

	if err := services.NewFoodService(config.DB).DeleteFood(tokenID, foodID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted successfully"})
}
