package models

import (
	"gorm.io/gorm"
)

// Default targets assigned at registration; users tune them later
// through the goals endpoint.
const (
	DefaultTargetKcal    = 2000
	DefaultTargetProtein = 150.0
)

type User struct {
	gorm.Model
	Username      string  `gorm:"uniqueIndex;not null" json:"username"`
	Password      string  `gorm:"not null" json:"-"`
	TargetKcal    int     `gorm:"not null;default:2000" json:"target_kcal"`
	TargetProtein float64 `gorm:"not null;default:150" json:"target_protein"`
	// TargetWeight stays nil until the user sets one; a nil target
	// suppresses the trend target line instead of drawing it at zero.
	TargetWeight *float64 `json:"target_weight"`
}
