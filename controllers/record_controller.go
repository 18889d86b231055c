package controllers

import (
	"errors"
	"net/http"

	"fitness-backend/config"
	"fitness-backend/middlewares"
	"fitness-backend/models"
	"fitness-backend/services"

	"github.com/gin-gonic/gin"
)

type WeightInput struct {
	RecordDate string  `json:"record_date" binding:"required"`
	Weight     float64 `json:"weight" binding:"required"`
}

// RecordWeight upserts the weight for a day; resubmitting the same day
// overwrites the earlier value.
func RecordWeight(c *gin.Context) {
	session := middlewares.SessionFrom(c)

	var input WeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false, "message": "record_date and weight are required",
		})
		return
	}

	svc := services.NewRecordService(config.DB)
	if err := svc.RecordWeight(session.UserID, input.RecordDate, input.Weight); err != nil {
		status, msg := recordErrorStatus(err)
		c.JSON(status, gin.H{"success": false, "message": msg})
		return
	}

	services.Refresh.RecordsChanged(session.UserID, "weight")
	c.JSON(http.StatusCreated, gin.H{
		"success": true, "message": "weight recorded",
	})
}

func ListWeights(c *gin.Context) {
	session := middlewares.SessionFrom(c)

	svc := services.NewRecordService(config.DB)
	records, err := svc.ListWeights(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "failed to list weight records",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true, "message": "ok", "data": records,
	})
}

type MealInput struct {
	MealType        models.MealType `json:"meal_type" binding:"required"`
	FoodDescription string          `json:"food_description" binding:"required"`
	Date            string          `json:"date" binding:"required"`
	CaloriesKcal    float64         `json:"calories_kcal"`
	ProteinG        float64         `json:"protein_g"`
	FatG            float64         `json:"fat_g"`
	CarbsG          float64         `json:"carbs_g"`
	ServingSizeG    float64         `json:"serving_size_g"`
}

// RecordMeal inserts a meal entry; calories and protein are user-supplied
// and default to zero when omitted.
func RecordMeal(c *gin.Context) {
	session := middlewares.SessionFrom(c)

	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false, "message": "meal_type, food_description and date are required",
		})
		return
	}
	if input.CaloriesKcal < 0 || input.ProteinG < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false, "message": "calories and protein cannot be negative",
		})
		return
	}

	svc := services.NewRecordService(config.DB)
	entry, err := svc.RecordMeal(session.UserID, models.MealEntry{
		MealType:        input.MealType,
		FoodDescription: input.FoodDescription,
		Date:            input.Date,
		CaloriesKcal:    input.CaloriesKcal,
		ProteinG:        input.ProteinG,
		FatG:            input.FatG,
		CarbsG:          input.CarbsG,
		ServingSizeG:    input.ServingSizeG,
	})
	if err != nil {
		status, msg := recordErrorStatus(err)
		c.JSON(status, gin.H{"success": false, "message": msg})
		return
	}

	services.Refresh.RecordsChanged(session.UserID, "meal")
	c.JSON(http.StatusCreated, gin.H{
		"success": true, "message": "meal recorded", "data": entry,
	})
}

func ListMeals(c *gin.Context) {
	session := middlewares.SessionFrom(c)

	svc := services.NewRecordService(config.DB)
	entries, err := svc.ListMeals(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "failed to list meal entries",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true, "message": "ok", "data": entries,
	})
}

type DeleteInput struct {
	Type string `json:"type" binding:"required"`
	ID   uint   `json:"id" binding:"required"`
}

// DeleteRecord removes one weight record or meal entry owned by the
// session user. Missing and not-owned records are reported identically.
func DeleteRecord(c *gin.Context) {
	session := middlewares.SessionFrom(c)

	var input DeleteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false, "message": "type and id are required",
		})
		return
	}

	svc := services.NewRecordService(config.DB)
	if err := svc.DeleteRecord(session.UserID, input.Type, input.ID); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRecordKind):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false, "message": "invalid record type",
			})
		case errors.Is(err, services.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false, "message": "record not found or not deletable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false, "message": "failed to delete record",
			})
		}
		return
	}

	services.Refresh.RecordsChanged(session.UserID, input.Type)
	c.JSON(http.StatusOK, gin.H{
		"success": true, "message": "record deleted",
	})
}

func recordErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidWeight),
		errors.Is(err, services.ErrInvalidMealType):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "failed to save record"
	}
}
