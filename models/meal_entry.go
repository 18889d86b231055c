package models

import (
	"gorm.io/gorm"
)

// MealType is the fixed set of meal slots an entry can be logged under.
type MealType string

const (
	MealTypeBreakfast   MealType = "breakfast"
	MealTypeLunch       MealType = "lunch"
	MealTypeDinner      MealType = "dinner"
	MealTypeSnack       MealType = "snack"
	MealTypePreWorkout  MealType = "pre-workout"
	MealTypePostWorkout MealType = "post-workout"
)

// ValidMealType reports whether t is one of the enumerated meal slots.
func ValidMealType(t MealType) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner,
		MealTypeSnack, MealTypePreWorkout, MealTypePostWorkout:
		return true
	}
	return false
}

// MealEntry is a single logged food item. Calories and protein are
// user-supplied, never looked up. Multiple entries per day (even for the
// same meal type) are expected; there is no per-day dedup for meals.
type MealEntry struct {
	gorm.Model
	UserID          uint     `gorm:"not null;index" json:"user_id"`
	MealType        MealType `gorm:"size:20;not null" json:"meal_type"`
	FoodDescription string   `json:"food_description"`
	ServingSizeG    float64  `json:"serving_size_g"`
	CaloriesKcal    float64  `json:"calories_kcal"`
	ProteinG        float64  `json:"protein_g"`
	FatG            float64  `json:"fat_g"`
	CarbsG          float64  `json:"carbs_g"`
	Date            string   `gorm:"type:varchar(10);not null;index" json:"date"`
}

func (MealEntry) TableName() string {
	return "meal_entries"
}
