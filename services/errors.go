package services

import "errors"

// Business-logic failures surface as one of these sentinels so controllers
// can pick a status code with errors.Is. Messages are what clients see.
// Ownership misses deliberately read as not-found rather than forbidden, so
// another user's rows are indistinguishable from nonexistent ones.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidReference   = errors.New("invalid ID format")

	ErrDuplicateEmail   = errors.New("user already exists")
	ErrDuplicateProfile = errors.New("profile already exists for this user")
	ErrDuplicateTitle   = errors.New("meal with this title already exists")

	ErrProfileNotFound  = errors.New("profile not found for this user")
	ErrBMILogNotFound   = errors.New("BMI log not found")
	ErrMealNotFound     = errors.New("meal not found")
	ErrDietPlanNotFound = errors.New("diet plan not found")
	ErrDietLogNotFound  = errors.New("diet log not found")
)
