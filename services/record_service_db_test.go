package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-backend/models"
)

func TestRecordWeight_SameDayOverwrites(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecordService(db)

	require.NoError(t, svc.RecordWeight(1, "2024-06-01", 82.5))
	require.NoError(t, svc.RecordWeight(1, "2024-06-01", 81.9))

	var records []models.WeightRecord
	require.NoError(t, db.Where("user_id = ?", 1).Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-06-01", records[0].Date)
	assert.Equal(t, 81.9, records[0].WeightKg)
}

func TestRecordWeight_PerUserPerDay(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecordService(db)

	require.NoError(t, svc.RecordWeight(1, "2024-06-01", 82.5))
	require.NoError(t, svc.RecordWeight(1, "2024-06-02", 82.1))
	require.NoError(t, svc.RecordWeight(2, "2024-06-01", 95.0))

	var count int64
	require.NoError(t, db.Model(&models.WeightRecord{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestRecordMeal_SameDayNeverMerges(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecordService(db)

	entry := models.MealEntry{
		FoodDescription: "oatmeal", MealType: models.MealTypeBreakfast,
		Date: "2024-06-01", CaloriesKcal: 350, ProteinG: 12,
	}
	_, err := svc.RecordMeal(1, entry)
	require.NoError(t, err)
	_, err = svc.RecordMeal(1, entry)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.MealEntry{}).
		Where("user_id = ? AND date = ?", 1, "2024-06-01").Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

// Deleting someone else's record must fail exactly like deleting a
// record that never existed, and must leave the row in place.
func TestDeleteRecord_OtherUsersRecordLooksMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecordService(db)

	require.NoError(t, svc.RecordWeight(1, "2024-06-01", 82.5))
	var rec models.WeightRecord
	require.NoError(t, db.Where("user_id = ?", 1).First(&rec).Error)

	err := svc.DeleteRecord(2, "weight", rec.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&models.WeightRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "foreign delete must not remove the row")

	missingErr := svc.DeleteRecord(2, "weight", rec.ID+1000)
	assert.Equal(t, err, missingErr, "not-owned and missing must be indistinguishable")
}

func TestDeleteRecord_OwnerRemovesRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecordService(db)

	entry, err := svc.RecordMeal(1, models.MealEntry{
		FoodDescription: "salad", MealType: models.MealTypeLunch,
		Date: "2024-06-01", CaloriesKcal: 200, ProteinG: 5,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecord(1, "meal", entry.ID))

	var count int64
	require.NoError(t, db.Model(&models.MealEntry{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	assert.ErrorIs(t, svc.DeleteRecord(1, "meal", entry.ID), ErrRecordNotFound)
}
