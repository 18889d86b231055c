package models

import (
	"gorm.io/gorm"
)

// WeightRecord holds one weight reading per user per calendar day.
// The composite unique index is what makes recording weight an upsert:
// a second submission for the same day overwrites, never duplicates.
type WeightRecord struct {
	gorm.Model
	UserID   uint    `gorm:"not null;uniqueIndex:idx_weight_user_date" json:"user_id"`
	Date     string  `gorm:"type:varchar(10);not null;uniqueIndex:idx_weight_user_date" json:"record_date"`
	WeightKg float64 `gorm:"not null" json:"weight"`
}

func (WeightRecord) TableName() string {
	return "daily_records"
}
