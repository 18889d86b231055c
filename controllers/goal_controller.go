package controllers

import (
	"errors"
	"net/http"

	"fitness-backend/config"
	"fitness-backend/middlewares"
	"fitness-backend/services"

	"github.com/gin-gonic/gin"
)

// UpdateGoals applies a partial update of the user's targets: only fields
// present in the body are persisted.
func UpdateGoals(c *gin.Context) {
	session := middlewares.SessionFrom(c)

	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false, "message": "invalid request body",
		})
		return
	}

	svc := services.NewGoalService(config.DB)
	if err := svc.UpdateGoals(session.UserID, input); err != nil {
		if errors.Is(err, services.ErrNoGoalFields) || errors.Is(err, services.ErrInvalidGoalValue) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false, "message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "failed to update goals",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true, "message": "goals updated",
	})
}
