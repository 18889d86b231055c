package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-backend/models"
)

func TestResolveDeletion(t *testing.T) {
	t.Run("weight binds to weight records", func(t *testing.T) {
		target, err := ResolveDeletion("weight")
		require.NoError(t, err)
		_, ok := target.model.(*models.WeightRecord)
		assert.True(t, ok)
	})

	t.Run("meal binds to meal entries", func(t *testing.T) {
		target, err := ResolveDeletion("meal")
		require.NoError(t, err)
		_, ok := target.model.(*models.MealEntry)
		assert.True(t, ok)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		_, err := ResolveDeletion("workout")
		assert.ErrorIs(t, err, ErrInvalidRecordKind)
	})
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		date    string
		wantErr bool
	}{
		{"2024-01-31", false},
		{"2024-02-29", false},
		{"2023-02-29", true},
		{"2024-13-01", true},
		{"01-02-2024", true},
		{"yesterday", true},
		{"", true},
	}
	for _, tc := range tests {
		t.Run(tc.date, func(t *testing.T) {
			err := ValidateDate(tc.date)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
