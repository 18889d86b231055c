package services

import (
	"errors"

	"fitness-backend/models"
	"fitness-backend/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates a user with the default targets. Duplicate usernames
// are detected from the insert itself (unique constraint), not a
// pre-check, so two concurrent registrations cannot race past each other.
func (s *AuthService) Register(username, password string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		logrus.WithError(err).Error("failed to hash password during registration")
		return nil, err
	}

	user := models.User{
		Username:      username,
		Password:      hashed,
		TargetKcal:    models.DefaultTargetKcal,
		TargetProtein: models.DefaultTargetProtein,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logrus.WithField("username", username).Warn("registration failed: username taken")
			return nil, ErrDuplicateUsername
		}
		logrus.WithError(err).Error("database error creating user")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "username": username}).
		Info("user registered")
	return &user, nil
}

// Authenticate verifies a username/password pair and returns the user with
// their current targets. Unknown user and wrong password collapse into the
// same error so login responses don't reveal which usernames exist.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithField("username", username).Warn("login failed: user not found")
			return nil, ErrInvalidCredentials
		}
		logrus.WithError(err).Error("database error looking up user")
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		logrus.WithField("username", username).Warn("login failed: bad password")
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
