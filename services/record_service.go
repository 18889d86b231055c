package services

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitness-backend/models"
)

type RecordService struct {
	db *gorm.DB
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{db: db}
}

// ValidateDate checks the YYYY-MM-DD calendar-day format the frontend
// submits. The stored string is also the grouping identity downstream, so
// nothing beyond format is normalized here (no timezone handling).
func ValidateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// RecordWeight upserts the weight for (user, date): the composite unique
// index turns a second submission for the same day into an overwrite.
// Concurrent submissions for one day are order-independent; last write wins.
func (s *RecordService) RecordWeight(userID uint, date string, weightKg float64) error {
	if err := ValidateDate(date); err != nil {
		return err
	}
	if weightKg <= 0 {
		return ErrInvalidWeight
	}

	rec := models.WeightRecord{UserID: userID, Date: date, WeightKg: weightKg}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"weight_kg", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("failed to record weight")
	}
	return err
}

// ListWeights returns the user's weight records, most recent day first.
func (s *RecordService) ListWeights(userID uint) ([]models.WeightRecord, error) {
	var records []models.WeightRecord
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

// RecordMeal always inserts; duplicate (user, date, meal type) entries are
// expected and never merged.
func (s *RecordService) RecordMeal(userID uint, entry models.MealEntry) (*models.MealEntry, error) {
	if err := ValidateDate(entry.Date); err != nil {
		return nil, err
	}
	if !models.ValidMealType(entry.MealType) {
		return nil, ErrInvalidMealType
	}

	entry.UserID = userID
	if err := s.db.Create(&entry).Error; err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("failed to record meal")
		return nil, err
	}
	return &entry, nil
}

// ListMeals returns the user's meal entries, most recent first; entries on
// the same day come back in reverse insertion order.
func (s *RecordService) ListMeals(userID uint) ([]models.MealEntry, error) {
	var entries []models.MealEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

// deletionTarget binds a delete kind to the model (and therefore table)
// it operates on.
type deletionTarget struct {
	model interface{}
}

var deletionTargets = map[string]deletionTarget{
	"weight": {model: &models.WeightRecord{}},
	"meal":   {model: &models.MealEntry{}},
}

// ResolveDeletion maps a client-supplied kind to its table binding.
func ResolveDeletion(kind string) (deletionTarget, error) {
	t, ok := deletionTargets[kind]
	if !ok {
		return deletionTarget{}, ErrInvalidRecordKind
	}
	return t, nil
}

// DeleteRecord removes one record of the given kind, scoped to its owner.
// A missing id and an id owned by someone else both come back as
// ErrRecordNotFound; the single DELETE statement never reveals which.
func (s *RecordService) DeleteRecord(userID uint, kind string, id uint) error {
	target, err := ResolveDeletion(kind)
	if err != nil {
		return err
	}

	res := s.db.Unscoped().
		Where("id = ? AND user_id = ?", id, userID).
		Delete(target.model)
	if res.Error != nil {
		logrus.WithError(res.Error).WithFields(logrus.Fields{
			"user_id": userID, "kind": kind, "id": id,
		}).Error("failed to delete record")
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
