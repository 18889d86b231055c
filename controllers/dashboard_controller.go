package controllers

import (
	"errors"
	"net/http"
	"time"

	"fitness-backend/config"
	"fitness-backend/middlewares"
	"fitness-backend/models"
	"fitness-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// The dashboard handlers fetch raw listings and hand them to the pure
// aggregation functions; nothing here computes totals itself.

func MealsByDay(c *gin.Context) {
	session := middlewares.SessionFrom(c)

	svc := services.NewRecordService(config.DB)
	entries, err := svc.ListMeals(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "failed to load meal entries",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "ok",
		"data":    services.GroupMealsByDate(entries),
	})
}

func WeightTrend(c *gin.Context) {
	session := middlewares.SessionFrom(c)

	user, ok := loadUser(c, session.UserID)
	if !ok {
		return
	}

	svc := services.NewRecordService(config.DB)
	records, err := svc.ListWeights(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "failed to load weight records",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "ok",
		"data":    services.WeightTrendSeries(records, user.TargetWeight),
	})
}

func CalorieSurplus(c *gin.Context) {
	session := middlewares.SessionFrom(c)

	user, ok := loadUser(c, session.UserID)
	if !ok {
		return
	}

	svc := services.NewRecordService(config.DB)
	entries, err := svc.ListMeals(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "failed to load meal entries",
		})
		return
	}

	groups := services.GroupMealsByDate(entries)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "ok",
		"data":    services.CalorieSurplusSeries(groups, user.TargetKcal),
	})
}

func TodaySummary(c *gin.Context) {
	session := middlewares.SessionFrom(c)

	svc := services.NewRecordService(config.DB)
	entries, err := svc.ListMeals(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "failed to load meal entries",
		})
		return
	}

	today := time.Now().Format("2006-01-02")
	groups := services.GroupMealsByDate(entries)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "ok",
		"data":    services.TodaySummary(groups, today),
	})
}

func loadUser(c *gin.Context, userID uint) (*models.User, bool) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "user not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false, "message": "failed to load user",
			})
		}
		return nil, false
	}
	return &user, true
}
