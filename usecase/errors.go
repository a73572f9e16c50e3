package usecase

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrIncorrectPassword   = errors.New("incorrect current password")
	ErrEventNotFound       = errors.New("event not found")
	ErrScheduleConflict    = errors.New("schedule conflict")
	ErrParticipantNotFound = errors.New("event not found for this user")
)
