package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-backend/models"
)

func f64(v float64) *float64 { return &v }

func TestBuildGoalUpdates_NoFields(t *testing.T) {
	_, err := buildGoalUpdates(GoalInput{})
	assert.ErrorIs(t, err, ErrNoGoalFields)
}

func TestBuildGoalUpdates_RejectsNonPositiveValues(t *testing.T) {
	tests := []struct {
		name  string
		input GoalInput
	}{
		{"zero weight", GoalInput{TargetWeight: f64(0)}},
		{"negative weight", GoalInput{TargetWeight: f64(-5)}},
		{"zero kcal", GoalInput{TargetKcal: f64(0)}},
		{"negative protein", GoalInput{TargetProtein: f64(-1)}},
		{"one bad field poisons the update", GoalInput{TargetKcal: f64(1800), TargetWeight: f64(0)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := buildGoalUpdates(tc.input)
			assert.ErrorIs(t, err, ErrInvalidGoalValue)
		})
	}
}

// A zero target weight must never reach the user row: stored as a
// non-NULL zero it would feed the weight chart a flat target line at 0.
func TestUpdateGoals_ZeroTargetWeightNeverPersisted(t *testing.T) {
	db := newTestDB(t)
	user := models.User{Username: "lena", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	svc := NewGoalService(db)
	err := svc.UpdateGoals(user.ID, GoalInput{TargetWeight: f64(0)})
	assert.ErrorIs(t, err, ErrInvalidGoalValue)

	var got models.User
	require.NoError(t, db.First(&got, user.ID).Error)
	assert.Nil(t, got.TargetWeight)
}

func TestBuildGoalUpdates_KcalTruncates(t *testing.T) {
	updates, err := buildGoalUpdates(GoalInput{TargetKcal: f64(2500.9)})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"target_kcal": 2500}, updates)
}

func TestBuildGoalUpdates_OnlyProvidedFields(t *testing.T) {
	tests := []struct {
		name     string
		input    GoalInput
		wantKeys []string
	}{
		{"only weight", GoalInput{TargetWeight: f64(70.5)}, []string{"target_weight"}},
		{"only protein", GoalInput{TargetProtein: f64(160.5)}, []string{"target_protein"}},
		{"kcal and protein", GoalInput{TargetKcal: f64(1800), TargetProtein: f64(140)},
			[]string{"target_kcal", "target_protein"}},
		{"all three", GoalInput{TargetKcal: f64(1800), TargetProtein: f64(140), TargetWeight: f64(72)},
			[]string{"target_kcal", "target_protein", "target_weight"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			updates, err := buildGoalUpdates(tc.input)
			require.NoError(t, err)
			assert.Len(t, updates, len(tc.wantKeys))
			for _, k := range tc.wantKeys {
				assert.Contains(t, updates, k)
			}
		})
	}
}

func TestBuildGoalUpdates_KeepsFractions(t *testing.T) {
	updates, err := buildGoalUpdates(GoalInput{
		TargetProtein: f64(155.5),
		TargetWeight:  f64(71.3),
	})
	require.NoError(t, err)
	assert.Equal(t, 155.5, updates["target_protein"])
	assert.Equal(t, 71.3, updates["target_weight"])
}
