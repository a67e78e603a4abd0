package controllers

import (
	"net/http"
	"strconv"

	"github.com/RidgwayA/cal-tracker/config"
	"github.com/RidgwayA/cal-tracker/services"
	"github.com/RidgwayA/cal-tracker/utils"

	"github.com/gin-gonic/gin"
)

// pathUserID parses :id and checks it against the token subject. Foreign
// ids answer as not-found so user ids cannot be enumerated.
func pathUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}
	tokenID, ok := userIDFromCtx(c)
	if !ok || tokenID != uint(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return 0, false
	}
	return uint(id), true
}

func GetUser(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	user, err := services.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func UpdateUserPreferences(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	var input services.PreferencesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateUserPreferences(userID, input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func GetDailySummary(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	date := c.Param("date")
	if !utils.ValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	summary, err := services.Summarize(config.DB, userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
