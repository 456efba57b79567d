package profile

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrPhoneTaken    = errors.New("phone already registered")
	ErrLicenseTaken  = errors.New("drivers license already registered")
	ErrInvalidAmount = errors.New("amount must be positive")
)
