package util

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailRegistered    = errors.New("an account with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrPageNotFound       = errors.New("page not found")
	ErrNoChallengeToday   = errors.New("no challenge found for today")
	ErrAlreadySubmitted   = errors.New("already submitted this challenge today")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrValidation         = errors.New("validation failed")
	ErrConfirmRequired    = errors.New("confirmation required")
)
