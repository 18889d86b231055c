package services

import "errors"

var (
	// ErrDuplicateUsername is returned when registration hits the unique
	// constraint on usernames.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrInvalidCredentials covers both unknown username and wrong
	// password; callers get no further detail.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrNoGoalFields is returned when a goal update carries none of the
	// three target fields.
	ErrNoGoalFields = errors.New("no goal fields provided")
	// ErrInvalidGoalValue is returned when a provided target is zero or
	// negative.
	ErrInvalidGoalValue = errors.New("goal values must be greater than zero")
	// ErrRecordNotFound covers both "no such record" and "record owned by
	// another user"; the two cases are indistinguishable to the caller.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidRecordKind is returned for delete kinds outside weight/meal.
	ErrInvalidRecordKind = errors.New("invalid record kind")
	// ErrInvalidDate is returned for dates that are not YYYY-MM-DD.
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
	// ErrInvalidWeight is returned for non-positive weight values.
	ErrInvalidWeight = errors.New("weight must be greater than zero")
	// ErrInvalidMealType is returned for meal types outside the fixed set.
	ErrInvalidMealType = errors.New("invalid meal type")
)
