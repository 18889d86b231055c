package services

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fitness-backend/models"
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// GoalInput carries the three independently optional targets. Pointer
// fields distinguish "absent" from "zero" so a partial update never
// clobbers targets the client didn't send.
type GoalInput struct {
	TargetKcal    *float64 `json:"target_kcal"`
	TargetProtein *float64 `json:"target_protein"`
	TargetWeight  *float64 `json:"target_weight"`
}

// buildGoalUpdates maps only the provided fields to their columns.
// target_kcal truncates to an integer; the others keep fractional
// precision. An empty input is a client error, not a silent no-op, and
// every provided target must be positive: a zero target_weight in
// particular would otherwise persist and draw a target line at zero on
// the weight chart instead of suppressing it.
func buildGoalUpdates(in GoalInput) (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if in.TargetKcal != nil {
		if *in.TargetKcal <= 0 {
			return nil, ErrInvalidGoalValue
		}
		updates["target_kcal"] = int(*in.TargetKcal)
	}
	if in.TargetProtein != nil {
		if *in.TargetProtein <= 0 {
			return nil, ErrInvalidGoalValue
		}
		updates["target_protein"] = *in.TargetProtein
	}
	if in.TargetWeight != nil {
		if *in.TargetWeight <= 0 {
			return nil, ErrInvalidGoalValue
		}
		updates["target_weight"] = *in.TargetWeight
	}
	if len(updates) == 0 {
		return nil, ErrNoGoalFields
	}
	return updates, nil
}

// UpdateGoals persists the provided targets for the user; fields not in
// the input retain their prior values.
func (s *GoalService) UpdateGoals(userID uint, in GoalInput) error {
	updates, err := buildGoalUpdates(in)
	if err != nil {
		return err
	}

	if err := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error; err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("failed to update goals")
		return err
	}
	return nil
}
