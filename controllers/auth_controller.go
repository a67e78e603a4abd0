package controllers

import (
	"net/http"

	"github.com/RidgwayA/cal-tracker/config"
	"github.com/RidgwayA/cal-tracker/services"
	"github.com/RidgwayA/cal-tracker/utils"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required"`
	DateOfBirth      string `json:"date_of_birth" binding:"required"`
	DailyCalorieGoal int    `json:"daily_calorie_goal"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !utils.ValidDate(input.DateOfBirth) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be YYYY-MM-DD"})
		return
	}
	if input.DailyCalorieGoal <= 0 {
		input.DailyCalorieGoal = config.Load().DefaultCalorieGoal
	}

	user, err := services.RegisterUser(input.Name, input.Email, input.Password,
		input.DateOfBirth, input.DailyCalorieGoal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered",
		"userId":  user.ID,
		"name":    user.Name,
	})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
